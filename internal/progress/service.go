package progress

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// Storage defines the interface for progress aggregate persistence
type Storage interface {
	// GetProgress returns the aggregate, or nil when the user has none yet
	GetProgress(ctx context.Context, userID string) (*domain.UserProgress, error)

	// UpsertProgress creates or replaces the aggregate
	UpsertProgress(ctx context.Context, p *domain.UserProgress) error
}

// Service maintains the per-user engagement counters and streaks. All
// mutations for one user run under that user's lock, so counter updates
// from concurrent check-ins never interleave.
type Service struct {
	storage Storage
	now     func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewService creates a new progress service
func NewService(storage Storage) *Service {
	return &Service{
		storage: storage,
		now:     time.Now,
		locks:   make(map[string]*sync.Mutex),
	}
}

func (s *Service) userLock(userID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[userID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[userID] = l
	}
	return l
}

func (s *Service) today() string {
	return s.now().Format(domain.DateLayout)
}

// load returns the stored aggregate, lazily initializing it on first use
// with the journey anchored to today.
func (s *Service) load(ctx context.Context, userID string) (*domain.UserProgress, error) {
	p, err := s.storage.GetProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	if p != nil {
		return p, nil
	}
	fresh := domain.NewUserProgress(userID, s.today())
	fresh.UpdatedAt = s.now()
	if err := s.storage.UpsertProgress(ctx, &fresh); err != nil {
		return nil, fmt.Errorf("init progress: %w", err)
	}
	return &fresh, nil
}

// Get returns the user's progress, creating the zeroed aggregate when the
// user has never checked in.
func (s *Service) Get(ctx context.Context, userID string) (domain.UserProgress, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return domain.UserProgress{}, err
	}
	return *p, nil
}

// RecordCheckIn applies one meal check-in to the aggregate. Every check-in
// bumps the total and refreshes the activity date; only the first check-in
// of a calendar day (firstOfDay) counts as a healthy day and moves the
// streak. A consecutive-day check-in extends the streak, anything later
// restarts it at 1.
func (s *Service) RecordCheckIn(ctx context.Context, userID string, firstOfDay bool) (domain.UserProgress, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return domain.UserProgress{}, err
	}

	today := s.today()
	if firstOfDay {
		p.TotalHealthyDays++
		if isSameOrNextDay(p.LastActiveDate, today) {
			p.CurrentStreak++
		} else {
			p.CurrentStreak = 1
		}
		if p.CurrentStreak > p.LongestStreak {
			p.LongestStreak = p.CurrentStreak
		}
	}
	p.TotalCheckIns++
	p.LastActiveDate = today
	p.UpdatedAt = s.now()

	if err := s.storage.UpsertProgress(ctx, p); err != nil {
		return domain.UserProgress{}, fmt.Errorf("save progress: %w", err)
	}
	return *p, nil
}

// RecordRecipeCompleted bumps the completed-recipe counter. It does not
// touch streaks or activity dates.
func (s *Service) RecordRecipeCompleted(ctx context.Context, userID string) (domain.UserProgress, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	p, err := s.load(ctx, userID)
	if err != nil {
		return domain.UserProgress{}, err
	}

	p.RecipesCompleted++
	p.UpdatedAt = s.now()
	if err := s.storage.UpsertProgress(ctx, p); err != nil {
		return domain.UserProgress{}, fmt.Errorf("save progress: %w", err)
	}
	return *p, nil
}

// isSameOrNextDay reports whether today equals lastActive or the calendar
// day right after it.
func isSameOrNextDay(lastActive, today string) bool {
	if lastActive == today {
		return true
	}
	last, err := time.Parse(domain.DateLayout, lastActive)
	if err != nil {
		return false
	}
	return last.AddDate(0, 0, 1).Format(domain.DateLayout) == today
}
