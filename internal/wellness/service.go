package wellness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

var (
	ErrInvalidScore   = errors.New("score must be between 1 and 5")
	ErrInvalidWeek    = errors.New("week number must be positive")
	ErrInvalidDate    = errors.New("invalid date format")
	ErrInvalidTrend   = errors.New("invalid trend rating")
	ErrInvalidFeeling = errors.New("invalid post-meal feeling")
)

// Storage defines the interface for wellness check-in persistence
type Storage interface {
	// UpsertWellness stores a check-in, replacing any previous entry for
	// the same (user, week)
	UpsertWellness(ctx context.Context, c *domain.WellnessCheckIn) error

	// ListWellness returns a user's check-ins ordered by week number
	ListWellness(ctx context.Context, userID string) ([]domain.WellnessCheckIn, error)
}

// SubmitRequest is the request body for a weekly wellness check-in
type SubmitRequest struct {
	WeekNumber          int                    `json:"week_number"`
	Date                string                 `json:"date"`
	EnergyLevel         int                    `json:"energy_level"`
	DigestionQuality    domain.TrendRating     `json:"digestion_quality"`
	PostMealFeeling     domain.PostMealFeeling `json:"post_meal_feeling"`
	SleepQuality        int                    `json:"sleep_quality"`
	ReceivedCompliments bool                   `json:"received_compliments"`
	ComplimentNote      *string                `json:"compliment_note,omitempty"`
	OverallMood         int                    `json:"overall_mood"`
}

// Summary aggregates the wellness history. Averages are nil when there are
// no entries, never zero or NaN.
type Summary struct {
	Entries       int                     `json:"entries"`
	AverageEnergy *float64                `json:"average_energy,omitempty"`
	AverageMood   *float64                `json:"average_mood,omitempty"`
	Latest        *domain.WellnessCheckIn `json:"latest,omitempty"`
}

// Service handles wellness check-in business logic
type Service struct {
	storage Storage
	now     func() time.Time
}

// NewService creates a new wellness service
func NewService(storage Storage) *Service {
	return &Service{storage: storage, now: time.Now}
}

// Submit validates and stores a weekly check-in. Resubmitting for the same
// week replaces the earlier entry.
func (s *Service) Submit(ctx context.Context, userID string, req SubmitRequest) (*domain.WellnessCheckIn, error) {
	if req.WeekNumber < 1 {
		return nil, ErrInvalidWeek
	}
	if _, err := time.Parse(domain.DateLayout, req.Date); err != nil {
		return nil, ErrInvalidDate
	}
	for _, score := range []int{req.EnergyLevel, req.SleepQuality, req.OverallMood} {
		if score < domain.MinWellnessScore || score > domain.MaxWellnessScore {
			return nil, ErrInvalidScore
		}
	}
	if !req.DigestionQuality.Valid() {
		return nil, ErrInvalidTrend
	}
	if !req.PostMealFeeling.Valid() {
		return nil, ErrInvalidFeeling
	}

	checkin := &domain.WellnessCheckIn{
		ID:                  uuid.New(),
		UserID:              userID,
		WeekNumber:          req.WeekNumber,
		Date:                req.Date,
		EnergyLevel:         req.EnergyLevel,
		DigestionQuality:    req.DigestionQuality,
		PostMealFeeling:     req.PostMealFeeling,
		SleepQuality:        req.SleepQuality,
		ReceivedCompliments: req.ReceivedCompliments,
		ComplimentNote:      req.ComplimentNote,
		OverallMood:         req.OverallMood,
		CreatedAt:           s.now(),
	}
	if err := s.storage.UpsertWellness(ctx, checkin); err != nil {
		return nil, fmt.Errorf("upsert wellness: %w", err)
	}
	return checkin, nil
}

// List returns the user's wellness history ordered by week.
func (s *Service) List(ctx context.Context, userID string) ([]domain.WellnessCheckIn, error) {
	return s.storage.ListWellness(ctx, userID)
}

// Summarize computes entry count, averages, and the most recent entry.
func (s *Service) Summarize(ctx context.Context, userID string) (*Summary, error) {
	entries, err := s.storage.ListWellness(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Entries: len(entries)}
	if len(entries) == 0 {
		return summary, nil
	}

	var energy, mood float64
	latest := entries[0]
	for _, e := range entries {
		energy += float64(e.EnergyLevel)
		mood += float64(e.OverallMood)
		if e.WeekNumber > latest.WeekNumber {
			latest = e
		}
	}
	avgEnergy := energy / float64(len(entries))
	avgMood := mood / float64(len(entries))
	summary.AverageEnergy = &avgEnergy
	summary.AverageMood = &avgMood
	summary.Latest = &latest
	return summary, nil
}
