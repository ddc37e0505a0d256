package memory

import (
	"context"
	"sync"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// ProgressMemoryStorage implements progress.Storage
type ProgressMemoryStorage struct {
	mu       sync.RWMutex
	progress map[string]domain.UserProgress
}

// NewProgressMemoryStorage creates a new in-memory progress storage
func NewProgressMemoryStorage() *ProgressMemoryStorage {
	return &ProgressMemoryStorage{progress: make(map[string]domain.UserProgress)}
}

func (s *ProgressMemoryStorage) GetProgress(ctx context.Context, userID string) (*domain.UserProgress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, exists := s.progress[userID]
	if !exists {
		return nil, nil
	}
	return &p, nil
}

func (s *ProgressMemoryStorage) UpsertProgress(ctx context.Context, p *domain.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress[p.UserID] = *p
	return nil
}
