package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// PostgresStorage is the Postgres backend, one sub-storage per feature
// sharing a single pgx pool.
type PostgresStorage struct {
	pool     *pgxpool.Pool
	recipes  *PostgresRecipesStorage
	checkins *PostgresCheckinsStorage
	wellness *PostgresWellnessStorage
	progress *PostgresProgressStorage
}

// New connects to databaseURL and verifies the connection
func New(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, err
	}

	return &PostgresStorage{
		pool:     pool,
		recipes:  NewPostgresRecipesStorage(pool),
		checkins: NewPostgresCheckinsStorage(pool),
		wellness: NewPostgresWellnessStorage(pool),
		progress: NewPostgresProgressStorage(pool),
	}, nil
}

func (p *PostgresStorage) GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error) {
	query := `
		SELECT user_id, email, display_name, health_goal, dietary_restrictions,
		       cooking_skill, meal_prep_days, household_size, budget_preference,
		       onboarding_completed, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`

	var prof domain.UserProfile
	var restrictionsJSON, prepDaysJSON []byte
	err := p.pool.QueryRow(ctx, query, userID).Scan(
		&prof.UserID,
		&prof.Email,
		&prof.DisplayName,
		&prof.HealthGoal,
		&restrictionsJSON,
		&prof.CookingSkill,
		&prepDaysJSON,
		&prof.HouseholdSize,
		&prof.BudgetPreference,
		&prof.OnboardingCompleted,
		&prof.CreatedAt,
		&prof.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if len(restrictionsJSON) > 0 {
		if err := json.Unmarshal(restrictionsJSON, &prof.DietaryRestrictions); err != nil {
			return nil, err
		}
	}
	if len(prepDaysJSON) > 0 {
		if err := json.Unmarshal(prepDaysJSON, &prof.MealPrepDays); err != nil {
			return nil, err
		}
	}
	return &prof, nil
}

func (p *PostgresStorage) UpsertUserProfile(ctx context.Context, prof *domain.UserProfile) error {
	restrictionsJSON, err := json.Marshal(prof.DietaryRestrictions)
	if err != nil {
		return err
	}
	prepDaysJSON, err := json.Marshal(prof.MealPrepDays)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_profiles (
			user_id, email, display_name, health_goal, dietary_restrictions,
			cooking_skill, meal_prep_days, household_size, budget_preference,
			onboarding_completed, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id) DO UPDATE SET
			email = EXCLUDED.email,
			display_name = EXCLUDED.display_name,
			health_goal = EXCLUDED.health_goal,
			dietary_restrictions = EXCLUDED.dietary_restrictions,
			cooking_skill = EXCLUDED.cooking_skill,
			meal_prep_days = EXCLUDED.meal_prep_days,
			household_size = EXCLUDED.household_size,
			budget_preference = EXCLUDED.budget_preference,
			onboarding_completed = EXCLUDED.onboarding_completed,
			updated_at = EXCLUDED.updated_at
	`

	createdAt := prof.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err = p.pool.Exec(ctx, query,
		prof.UserID,
		prof.Email,
		prof.DisplayName,
		prof.HealthGoal,
		restrictionsJSON,
		prof.CookingSkill,
		prepDaysJSON,
		prof.HouseholdSize,
		prof.BudgetPreference,
		prof.OnboardingCompleted,
		createdAt,
		prof.UpdatedAt,
	)
	return err
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}

// GetRecipesStorage returns the recipes storage
func (p *PostgresStorage) GetRecipesStorage() *PostgresRecipesStorage {
	return p.recipes
}

// GetCheckinsStorage returns the check-ins storage
func (p *PostgresStorage) GetCheckinsStorage() *PostgresCheckinsStorage {
	return p.checkins
}

// GetWellnessStorage returns the wellness storage
func (p *PostgresStorage) GetWellnessStorage() *PostgresWellnessStorage {
	return p.wellness
}

// GetProgressStorage returns the progress storage
func (p *PostgresStorage) GetProgressStorage() *PostgresProgressStorage {
	return p.progress
}
