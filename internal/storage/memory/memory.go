package memory

import (
	"context"
	"sync"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// MemoryStorage is the in-memory backend. It backs local development and
// tests; everything is lost on restart.
type MemoryStorage struct {
	mu       sync.RWMutex
	profiles map[string]domain.UserProfile

	recipes  *RecipesMemoryStorage
	checkins *CheckinsMemoryStorage
	wellness *WellnessMemoryStorage
	progress *ProgressMemoryStorage
}

// New creates an empty MemoryStorage
func New() *MemoryStorage {
	return &MemoryStorage{
		profiles: make(map[string]domain.UserProfile),
		recipes:  NewRecipesMemoryStorage(),
		checkins: NewCheckinsMemoryStorage(),
		wellness: NewWellnessMemoryStorage(),
		progress: NewProgressMemoryStorage(),
	}
}

func (m *MemoryStorage) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.profiles[userID]
	if !exists {
		return nil, nil
	}
	return &p, nil
}

func (m *MemoryStorage) UpsertUserProfile(ctx context.Context, p *domain.UserProfile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles[p.UserID] = *p
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

// GetRecipesStorage returns the recipes storage
func (m *MemoryStorage) GetRecipesStorage() *RecipesMemoryStorage {
	return m.recipes
}

// GetCheckinsStorage returns the check-ins storage
func (m *MemoryStorage) GetCheckinsStorage() *CheckinsMemoryStorage {
	return m.checkins
}

// GetWellnessStorage returns the wellness storage
func (m *MemoryStorage) GetWellnessStorage() *WellnessMemoryStorage {
	return m.wellness
}

// GetProgressStorage returns the progress storage
func (m *MemoryStorage) GetProgressStorage() *ProgressMemoryStorage {
	return m.progress
}
