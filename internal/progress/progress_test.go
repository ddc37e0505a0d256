package progress

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// mockStorage implements Storage for testing
type mockStorage struct {
	mu       sync.Mutex
	progress map[string]domain.UserProgress
}

func newMockStorage() *mockStorage {
	return &mockStorage{progress: make(map[string]domain.UserProgress)}
}

func (m *mockStorage) GetProgress(ctx context.Context, userID string) (*domain.UserProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, exists := m.progress[userID]
	if !exists {
		return nil, nil
	}
	return &p, nil
}

func (m *mockStorage) UpsertProgress(ctx context.Context, p *domain.UserProgress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress[p.UserID] = *p
	return nil
}

func serviceAt(storage Storage, date string) *Service {
	s := NewService(storage)
	day, _ := time.Parse(domain.DateLayout, date)
	s.now = func() time.Time { return day.Add(9 * time.Hour) }
	return s
}

func TestGetLazilyInitializes(t *testing.T) {
	storage := newMockStorage()
	service := serviceAt(storage, "2024-01-10")

	p, err := service.Get(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if p.JourneyStartDate != "2024-01-10" || p.LastActiveDate != "2024-01-10" {
		t.Errorf("journey=%s lastActive=%s, want both 2024-01-10", p.JourneyStartDate, p.LastActiveDate)
	}
	if p.TotalHealthyDays != 0 || p.TotalCheckIns != 0 || p.CurrentStreak != 0 {
		t.Errorf("fresh aggregate should have zero counters: %+v", p)
	}
	if _, exists := storage.progress["u1"]; !exists {
		t.Error("lazy init should persist the aggregate")
	}
}

func TestFirstQualifyingCheckInStartsStreak(t *testing.T) {
	service := serviceAt(newMockStorage(), "2024-01-10")

	p, err := service.RecordCheckIn(context.Background(), "u1", true)
	if err != nil {
		t.Fatalf("RecordCheckIn: %v", err)
	}
	if p.TotalHealthyDays != 1 || p.TotalCheckIns != 1 {
		t.Errorf("healthyDays=%d checkIns=%d, want 1/1", p.TotalHealthyDays, p.TotalCheckIns)
	}
	if p.CurrentStreak != 1 || p.LongestStreak != 1 {
		t.Errorf("streak=%d longest=%d, want 1/1", p.CurrentStreak, p.LongestStreak)
	}
}

func TestStreakExtendsAndResets(t *testing.T) {
	storage := newMockStorage()

	// consecutive days extend
	if _, err := serviceAt(storage, "2024-01-10").RecordCheckIn(context.Background(), "u1", true); err != nil {
		t.Fatal(err)
	}
	p, err := serviceAt(storage, "2024-01-11").RecordCheckIn(context.Background(), "u1", true)
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentStreak != 2 || p.LongestStreak != 2 {
		t.Fatalf("after consecutive days streak=%d longest=%d, want 2/2", p.CurrentStreak, p.LongestStreak)
	}

	// a skipped day resets the current streak but not the longest
	p, err = serviceAt(storage, "2024-01-13").RecordCheckIn(context.Background(), "u1", true)
	if err != nil {
		t.Fatal(err)
	}
	if p.CurrentStreak != 1 {
		t.Errorf("after gap streak=%d, want 1", p.CurrentStreak)
	}
	if p.LongestStreak != 2 {
		t.Errorf("longest=%d, want 2 preserved across the reset", p.LongestStreak)
	}
	if p.TotalHealthyDays != 3 {
		t.Errorf("healthyDays=%d, want 3", p.TotalHealthyDays)
	}
}

func TestNonQualifyingCheckInLeavesStreakAlone(t *testing.T) {
	storage := newMockStorage()
	service := serviceAt(storage, "2024-01-10")

	if _, err := service.RecordCheckIn(context.Background(), "u1", true); err != nil {
		t.Fatal(err)
	}
	p, err := service.RecordCheckIn(context.Background(), "u1", false)
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalCheckIns != 2 {
		t.Errorf("checkIns=%d, want 2", p.TotalCheckIns)
	}
	if p.TotalHealthyDays != 1 || p.CurrentStreak != 1 {
		t.Errorf("second same-day check-in must not move healthy days or streak: %+v", p)
	}
}

func TestRecordRecipeCompleted(t *testing.T) {
	storage := newMockStorage()
	service := serviceAt(storage, "2024-01-10")

	p, err := service.RecordRecipeCompleted(context.Background(), "u1")
	if err != nil {
		t.Fatalf("RecordRecipeCompleted: %v", err)
	}
	if p.RecipesCompleted != 1 {
		t.Errorf("recipesCompleted=%d, want 1", p.RecipesCompleted)
	}
	if p.CurrentStreak != 0 || p.TotalCheckIns != 0 {
		t.Errorf("recipe completion must not touch streak or check-in counters: %+v", p)
	}
}

func TestConcurrentCheckInsAreSerialized(t *testing.T) {
	storage := newMockStorage()
	service := serviceAt(storage, "2024-01-10")

	const n = 20
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if _, err := service.RecordCheckIn(context.Background(), "u1", false); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	p, err := service.Get(context.Background(), "u1")
	if err != nil {
		t.Fatal(err)
	}
	if p.TotalCheckIns != n {
		t.Errorf("checkIns=%d after %d concurrent check-ins", p.TotalCheckIns, n)
	}
}
