package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// PostgresProgressStorage implements progress.Storage
type PostgresProgressStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresProgressStorage creates a new Postgres progress storage
func NewPostgresProgressStorage(pool *pgxpool.Pool) *PostgresProgressStorage {
	return &PostgresProgressStorage{pool: pool}
}

func (s *PostgresProgressStorage) GetProgress(ctx context.Context, userID string) (*domain.UserProgress, error) {
	query := `
		SELECT user_id, total_healthy_days, total_check_ins, recipes_completed,
		       current_streak, longest_streak, journey_start_date,
		       last_active_date, updated_at
		FROM user_progress
		WHERE user_id = $1
	`

	var p domain.UserProgress
	err := s.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID,
		&p.TotalHealthyDays,
		&p.TotalCheckIns,
		&p.RecipesCompleted,
		&p.CurrentStreak,
		&p.LongestStreak,
		&p.JourneyStartDate,
		&p.LastActiveDate,
		&p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PostgresProgressStorage) UpsertProgress(ctx context.Context, p *domain.UserProgress) error {
	query := `
		INSERT INTO user_progress (
			user_id, total_healthy_days, total_check_ins, recipes_completed,
			current_streak, longest_streak, journey_start_date,
			last_active_date, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id) DO UPDATE SET
			total_healthy_days = EXCLUDED.total_healthy_days,
			total_check_ins = EXCLUDED.total_check_ins,
			recipes_completed = EXCLUDED.recipes_completed,
			current_streak = EXCLUDED.current_streak,
			longest_streak = EXCLUDED.longest_streak,
			journey_start_date = EXCLUDED.journey_start_date,
			last_active_date = EXCLUDED.last_active_date,
			updated_at = EXCLUDED.updated_at
	`

	_, err := s.pool.Exec(ctx, query,
		p.UserID,
		p.TotalHealthyDays,
		p.TotalCheckIns,
		p.RecipesCompleted,
		p.CurrentStreak,
		p.LongestStreak,
		p.JourneyStartDate,
		p.LastActiveDate,
		p.UpdatedAt,
	)
	return err
}
