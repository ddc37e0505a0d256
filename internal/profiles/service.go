package profiles

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

var (
	ErrInvalidGoal      = errors.New("invalid health goal")
	ErrInvalidSkill     = errors.New("invalid cooking skill")
	ErrInvalidBudget    = errors.New("invalid budget preference")
	ErrInvalidDiet      = errors.New("invalid dietary restriction")
	ErrInvalidHousehold = errors.New("household size must be positive")
)

// Storage defines the interface for profile persistence
type Storage interface {
	// GetUserProfile returns the profile, or nil when the user has none
	GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error)

	// UpsertUserProfile creates or replaces the profile
	UpsertUserProfile(ctx context.Context, p *domain.UserProfile) error
}

// ProgressInitializer sets up the progress aggregate when onboarding
// completes
type ProgressInitializer interface {
	Get(ctx context.Context, userID string) (domain.UserProgress, error)
}

// Syncer pushes profile snapshots to a remote mirror. Implementations are
// best-effort: they log failures and never surface them.
type Syncer interface {
	SyncProfile(ctx context.Context, p domain.UserProfile)
}

// UpdateProfileRequest is the request body for replacing a profile
type UpdateProfileRequest struct {
	Email               string                      `json:"email,omitempty"`
	DisplayName         string                      `json:"display_name,omitempty"`
	HealthGoal          domain.HealthGoal           `json:"health_goal"`
	DietaryRestrictions []domain.DietaryRestriction `json:"dietary_restrictions"`
	CookingSkill        domain.CookingSkill         `json:"cooking_skill"`
	MealPrepDays        []time.Weekday              `json:"meal_prep_days"`
	HouseholdSize       int                         `json:"household_size"`
	BudgetPreference    domain.BudgetPreference     `json:"budget_preference"`
}

// Service handles profile business logic. A user without a stored profile
// gets sensible defaults rather than an error, so the rest of the system
// can always plan against something.
type Service struct {
	storage  Storage
	progress ProgressInitializer
	syncer   Syncer
	now      func() time.Time
}

// NewService creates a new profile service. progress and syncer may be nil.
func NewService(storage Storage, progress ProgressInitializer, syncer Syncer) *Service {
	return &Service{
		storage:  storage,
		progress: progress,
		syncer:   syncer,
		now:      time.Now,
	}
}

// GetOrDefault returns the stored profile or the provisional default.
func (s *Service) GetOrDefault(ctx context.Context, userID string) (domain.UserProfile, error) {
	p, err := s.storage.GetUserProfile(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("get profile: %w", err)
	}
	if p == nil {
		return domain.DefaultProfile(userID), nil
	}
	return *p, nil
}

// Upsert validates and replaces the user's profile, keeping the onboarding
// flag and creation time from any existing row.
func (s *Service) Upsert(ctx context.Context, userID string, req UpdateProfileRequest) (domain.UserProfile, error) {
	if err := validate(req); err != nil {
		return domain.UserProfile{}, err
	}

	current, err := s.GetOrDefault(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}

	updated := current
	updated.Email = req.Email
	updated.DisplayName = req.DisplayName
	updated.HealthGoal = req.HealthGoal
	updated.DietaryRestrictions = req.DietaryRestrictions
	updated.CookingSkill = req.CookingSkill
	updated.MealPrepDays = req.MealPrepDays
	updated.HouseholdSize = req.HouseholdSize
	updated.BudgetPreference = req.BudgetPreference
	if updated.CreatedAt.IsZero() {
		updated.CreatedAt = s.now()
	}
	updated.UpdatedAt = s.now()

	if err := s.storage.UpsertUserProfile(ctx, &updated); err != nil {
		return domain.UserProfile{}, fmt.Errorf("upsert profile: %w", err)
	}
	s.sync(ctx, updated)
	return updated, nil
}

// CompleteOnboarding marks the profile onboarded and anchors the progress
// aggregate so the journey starts today.
func (s *Service) CompleteOnboarding(ctx context.Context, userID string) (domain.UserProfile, error) {
	p, err := s.GetOrDefault(ctx, userID)
	if err != nil {
		return domain.UserProfile{}, err
	}

	p.OnboardingCompleted = true
	if p.CreatedAt.IsZero() {
		p.CreatedAt = s.now()
	}
	p.UpdatedAt = s.now()
	if err := s.storage.UpsertUserProfile(ctx, &p); err != nil {
		return domain.UserProfile{}, fmt.Errorf("complete onboarding: %w", err)
	}

	if s.progress != nil {
		if _, err := s.progress.Get(ctx, userID); err != nil {
			return domain.UserProfile{}, fmt.Errorf("init progress: %w", err)
		}
	}
	s.sync(ctx, p)
	return p, nil
}

func (s *Service) sync(ctx context.Context, p domain.UserProfile) {
	if s.syncer != nil {
		s.syncer.SyncProfile(ctx, p)
	}
}

func validate(req UpdateProfileRequest) error {
	if !req.HealthGoal.Valid() {
		return ErrInvalidGoal
	}
	if !req.CookingSkill.Valid() {
		return ErrInvalidSkill
	}
	if !req.BudgetPreference.Valid() {
		return ErrInvalidBudget
	}
	for _, d := range req.DietaryRestrictions {
		if !d.Valid() {
			return ErrInvalidDiet
		}
	}
	if req.HouseholdSize < 1 {
		return ErrInvalidHousehold
	}
	return nil
}
