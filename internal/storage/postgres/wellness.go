package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// PostgresWellnessStorage implements wellness.Storage
type PostgresWellnessStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresWellnessStorage creates a new Postgres wellness storage
func NewPostgresWellnessStorage(pool *pgxpool.Pool) *PostgresWellnessStorage {
	return &PostgresWellnessStorage{pool: pool}
}

// UpsertWellness replaces the entire row for (user, week); a resubmission
// overwrites every field including id and date.
func (s *PostgresWellnessStorage) UpsertWellness(ctx context.Context, c *domain.WellnessCheckIn) error {
	query := `
		INSERT INTO wellness_checkins (
			id, user_id, week_number, date, energy_level, digestion_quality,
			post_meal_feeling, sleep_quality, received_compliments,
			compliment_note, overall_mood, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (user_id, week_number) DO UPDATE SET
			id = EXCLUDED.id,
			date = EXCLUDED.date,
			energy_level = EXCLUDED.energy_level,
			digestion_quality = EXCLUDED.digestion_quality,
			post_meal_feeling = EXCLUDED.post_meal_feeling,
			sleep_quality = EXCLUDED.sleep_quality,
			received_compliments = EXCLUDED.received_compliments,
			compliment_note = EXCLUDED.compliment_note,
			overall_mood = EXCLUDED.overall_mood,
			created_at = EXCLUDED.created_at
	`

	_, err := s.pool.Exec(ctx, query,
		c.ID,
		c.UserID,
		c.WeekNumber,
		c.Date,
		c.EnergyLevel,
		c.DigestionQuality,
		c.PostMealFeeling,
		c.SleepQuality,
		c.ReceivedCompliments,
		c.ComplimentNote,
		c.OverallMood,
		c.CreatedAt,
	)
	return err
}

func (s *PostgresWellnessStorage) ListWellness(ctx context.Context, userID string) ([]domain.WellnessCheckIn, error) {
	query := `
		SELECT id, user_id, week_number, date, energy_level, digestion_quality,
		       post_meal_feeling, sleep_quality, received_compliments,
		       compliment_note, overall_mood, created_at
		FROM wellness_checkins
		WHERE user_id = $1
		ORDER BY week_number
	`

	rows, err := s.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.WellnessCheckIn
	for rows.Next() {
		var c domain.WellnessCheckIn
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.WeekNumber,
			&c.Date,
			&c.EnergyLevel,
			&c.DigestionQuality,
			&c.PostMealFeeling,
			&c.SleepQuality,
			&c.ReceivedCompliments,
			&c.ComplimentNote,
			&c.OverallMood,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
