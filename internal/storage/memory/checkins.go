package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/mealplanhq/mealplan-hub/internal/checkins"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// CheckinsMemoryStorage implements checkins.Storage
type CheckinsMemoryStorage struct {
	mu       sync.RWMutex
	checkins []domain.MealCheckIn
}

// NewCheckinsMemoryStorage creates a new in-memory check-ins storage
func NewCheckinsMemoryStorage() *CheckinsMemoryStorage {
	return &CheckinsMemoryStorage{}
}

// InsertCheckin stores the check-in. The first-of-day answer comes from the
// same critical section as the append, so two concurrent first check-ins
// can never both report true.
func (s *CheckinsMemoryStorage) InsertCheckin(ctx context.Context, c *domain.MealCheckIn) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	first := true
	for _, existing := range s.checkins {
		if existing.UserID == c.UserID && existing.Date == c.Date {
			first = false
			break
		}
	}
	s.checkins = append(s.checkins, *c)
	return first, nil
}

func (s *CheckinsMemoryStorage) ListCheckinsByDate(ctx context.Context, userID, date string) ([]domain.MealCheckIn, error) {
	return s.listWhere(func(c domain.MealCheckIn) bool {
		return c.UserID == userID && c.Date == date
	}), nil
}

func (s *CheckinsMemoryStorage) ListCheckinsInRange(ctx context.Context, userID, from, to string) ([]domain.MealCheckIn, error) {
	return s.listWhere(func(c domain.MealCheckIn) bool {
		return c.UserID == userID && c.Date >= from && c.Date <= to
	}), nil
}

func (s *CheckinsMemoryStorage) listWhere(match func(domain.MealCheckIn) bool) []domain.MealCheckIn {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var result []domain.MealCheckIn
	for _, c := range s.checkins {
		if match(c) {
			result = append(result, c)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Date != result[j].Date {
			return result[i].Date < result[j].Date
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result
}

func (s *CheckinsMemoryStorage) CountDistinctDates(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dates := make(map[string]bool)
	for _, c := range s.checkins {
		if c.UserID == userID {
			dates[c.Date] = true
		}
	}
	return len(dates), nil
}

func (s *CheckinsMemoryStorage) CountCheckins(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, c := range s.checkins {
		if c.UserID == userID {
			n++
		}
	}
	return n, nil
}

func (s *CheckinsMemoryStorage) SetCheckinPhoto(ctx context.Context, userID string, id uuid.UUID, photoKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.checkins {
		if s.checkins[i].UserID == userID && s.checkins[i].ID == id {
			key := photoKey
			s.checkins[i].PhotoKey = &key
			return nil
		}
	}
	return checkins.ErrCheckinNotFound
}
