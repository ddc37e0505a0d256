package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// WellnessMemoryStorage implements wellness.Storage
type WellnessMemoryStorage struct {
	mu      sync.RWMutex
	entries map[string]map[int]domain.WellnessCheckIn // userID -> week -> entry
}

// NewWellnessMemoryStorage creates a new in-memory wellness storage
func NewWellnessMemoryStorage() *WellnessMemoryStorage {
	return &WellnessMemoryStorage{entries: make(map[string]map[int]domain.WellnessCheckIn)}
}

// UpsertWellness replaces any existing entry for the same (user, week).
func (s *WellnessMemoryStorage) UpsertWellness(ctx context.Context, c *domain.WellnessCheckIn) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	weeks, exists := s.entries[c.UserID]
	if !exists {
		weeks = make(map[int]domain.WellnessCheckIn)
		s.entries[c.UserID] = weeks
	}
	weeks[c.WeekNumber] = *c
	return nil
}

func (s *WellnessMemoryStorage) ListWellness(ctx context.Context, userID string) ([]domain.WellnessCheckIn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.WellnessCheckIn
	for _, c := range s.entries[userID] {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].WeekNumber < result[j].WeekNumber })
	return result, nil
}
