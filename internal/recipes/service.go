package recipes

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

var (
	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidGoal     = errors.New("invalid health goal")
)

// Storage defines the interface for recipe catalog operations
type Storage interface {
	// ListRecipes returns the full catalog
	ListRecipes(ctx context.Context) ([]domain.Recipe, error)

	// GetRecipe retrieves a recipe by ID
	GetRecipe(ctx context.Context, id string) (*domain.Recipe, error)

	// CountRecipes returns the catalog size
	CountRecipes(ctx context.Context) (int, error)

	// BulkInsertRecipes inserts recipes, skipping ids that already exist
	BulkInsertRecipes(ctx context.Context, recipes []domain.Recipe) error
}

// ListFilter narrows a catalog listing. Zero values mean "no constraint".
type ListFilter struct {
	MealType        domain.MealType
	Goal            domain.HealthGoal
	MaxTotalMinutes int
}

// Service handles recipe catalog business logic
type Service struct {
	storage Storage
}

// NewService creates a new recipe service
func NewService(storage Storage) *Service {
	return &Service{storage: storage}
}

// EnsureSeeded populates the catalog with the starter dataset when the
// store is empty. Safe to call on every startup: inserts use the recipes'
// stable ids and skip rows that already exist, so concurrent or repeated
// runs converge on the same catalog.
func (s *Service) EnsureSeeded(ctx context.Context) error {
	count, err := s.storage.CountRecipes(ctx)
	if err != nil {
		return fmt.Errorf("count recipes: %w", err)
	}
	if count > 0 {
		return nil
	}

	catalog := seedCatalog()
	if err := s.storage.BulkInsertRecipes(ctx, catalog); err != nil {
		return fmt.Errorf("seed recipes: %w", err)
	}
	log.Printf("recipes: seeded catalog with %d recipes", len(catalog))
	return nil
}

// ListRecipes returns catalog entries matching the filter.
func (s *Service) ListRecipes(ctx context.Context, filter ListFilter) ([]domain.Recipe, error) {
	if filter.MealType != "" && !filter.MealType.Valid() {
		return nil, ErrInvalidMealType
	}
	if filter.Goal != "" && !filter.Goal.Valid() {
		return nil, ErrInvalidGoal
	}

	all, err := s.storage.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]domain.Recipe, 0, len(all))
	for _, r := range all {
		if filter.MealType != "" && r.MealType != filter.MealType {
			continue
		}
		if filter.Goal != "" && !r.MatchesGoal(filter.Goal) {
			continue
		}
		if filter.MaxTotalMinutes > 0 && r.TotalTimeMinutes() > filter.MaxTotalMinutes {
			continue
		}
		matched = append(matched, r)
	}
	return matched, nil
}

// GetRecipe retrieves a single recipe by ID.
func (s *Service) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	if id == "" {
		return nil, ErrRecipeNotFound
	}
	recipe, err := s.storage.GetRecipe(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe == nil {
		return nil, ErrRecipeNotFound
	}
	return recipe, nil
}
