package memory

import (
	"context"
	"sync"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// RecipesMemoryStorage implements recipes.Storage
type RecipesMemoryStorage struct {
	mu      sync.RWMutex
	recipes map[string]domain.Recipe
	order   []string
}

// NewRecipesMemoryStorage creates a new in-memory recipes storage
func NewRecipesMemoryStorage() *RecipesMemoryStorage {
	return &RecipesMemoryStorage{recipes: make(map[string]domain.Recipe)}
}

func (s *RecipesMemoryStorage) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Recipe, 0, len(s.order))
	for _, id := range s.order {
		result = append(result, s.recipes[id])
	}
	return result, nil
}

func (s *RecipesMemoryStorage) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, exists := s.recipes[id]
	if !exists {
		return nil, nil
	}
	return &r, nil
}

func (s *RecipesMemoryStorage) CountRecipes(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.recipes), nil
}

// BulkInsertRecipes inserts recipes, silently skipping ids that already
// exist so concurrent seeding stays idempotent.
func (s *RecipesMemoryStorage) BulkInsertRecipes(ctx context.Context, recipes []domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range recipes {
		if _, exists := s.recipes[r.ID]; exists {
			continue
		}
		s.recipes[r.ID] = r
		s.order = append(s.order, r.ID)
	}
	return nil
}
