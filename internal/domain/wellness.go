package domain

import (
	"time"

	"github.com/google/uuid"
)

// Score bounds for the 1-5 wellness scales.
const (
	MinWellnessScore = 1
	MaxWellnessScore = 5
)

// WellnessCheckIn is the weekly self-assessment. At most one entry exists
// per (user, week); a resubmission replaces the previous one.
type WellnessCheckIn struct {
	ID                  uuid.UUID       `json:"id"`
	UserID              string          `json:"user_id"`
	WeekNumber          int             `json:"week_number"`
	Date                string          `json:"date"` // YYYY-MM-DD
	EnergyLevel         int             `json:"energy_level"`  // 1-5
	DigestionQuality    TrendRating     `json:"digestion_quality"`
	PostMealFeeling     PostMealFeeling `json:"post_meal_feeling"`
	SleepQuality        int             `json:"sleep_quality"` // 1-5
	ReceivedCompliments bool            `json:"received_compliments"`
	ComplimentNote      *string         `json:"compliment_note,omitempty"`
	OverallMood         int             `json:"overall_mood"` // 1-5
	CreatedAt           time.Time       `json:"created_at"`
}
