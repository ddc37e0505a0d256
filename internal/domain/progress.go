package domain

import "time"

// UserProgress is the per-user aggregate of engagement counters. All
// counters except CurrentStreak are monotonic non-decreasing; the aggregate
// lives for the lifetime of the account.
type UserProgress struct {
	UserID           string    `json:"user_id"`
	TotalHealthyDays int       `json:"total_healthy_days"`
	TotalCheckIns    int       `json:"total_check_ins"`
	RecipesCompleted int       `json:"recipes_completed"`
	CurrentStreak    int       `json:"current_streak"`
	LongestStreak    int       `json:"longest_streak"`
	JourneyStartDate string    `json:"journey_start_date"` // YYYY-MM-DD
	LastActiveDate   string    `json:"last_active_date"`   // YYYY-MM-DD
	UpdatedAt        time.Time `json:"updated_at"`
}

// NewUserProgress initializes the aggregate on the user's first activity.
func NewUserProgress(userID, today string) UserProgress {
	return UserProgress{
		UserID:           userID,
		JourneyStartDate: today,
		LastActiveDate:   today,
	}
}
