package postgres

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mealplanhq/mealplan-hub/internal/checkins"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// PostgresCheckinsStorage implements checkins.Storage
type PostgresCheckinsStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresCheckinsStorage creates a new Postgres check-ins storage
func NewPostgresCheckinsStorage(pool *pgxpool.Pool) *PostgresCheckinsStorage {
	return &PostgresCheckinsStorage{pool: pool}
}

// InsertCheckin stores the check-in and counts the user's rows for that day
// inside the same transaction. A count of one means this insert was the
// first. Racing inserts for the same (user, date) are serialized by an
// advisory lock held until commit; without it, READ COMMITTED would let
// both transactions count only their own row and both report first-of-day.
func (s *PostgresCheckinsStorage) InsertCheckin(ctx context.Context, c *domain.MealCheckIn) (bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`,
		c.UserID+"|"+c.Date,
	)
	if err != nil {
		return false, err
	}

	var nutritionJSON []byte
	if c.AnalyzedNutrition != nil {
		nutritionJSON, err = json.Marshal(c.AnalyzedNutrition)
		if err != nil {
			return false, err
		}
	}

	insert := `
		INSERT INTO meal_checkins (
			id, user_id, date, meal_type, status,
			planned_recipe_id, photo_key, analyzed_nutrition, notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.Exec(ctx, insert,
		c.ID,
		c.UserID,
		c.Date,
		c.MealType,
		c.Status,
		c.PlannedRecipeID,
		c.PhotoKey,
		nutritionJSON,
		c.Notes,
		c.CreatedAt,
	)
	if err != nil {
		return false, err
	}

	var count int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM meal_checkins WHERE user_id = $1 AND date = $2`,
		c.UserID, c.Date,
	).Scan(&count)
	if err != nil {
		return false, err
	}

	if err := tx.Commit(ctx); err != nil {
		return false, err
	}
	return count == 1, nil
}

const checkinColumns = `
	id, user_id, date, meal_type, status,
	planned_recipe_id, photo_key, analyzed_nutrition, notes, created_at
`

func (s *PostgresCheckinsStorage) ListCheckinsByDate(ctx context.Context, userID, date string) ([]domain.MealCheckIn, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+checkinColumns+` FROM meal_checkins WHERE user_id = $1 AND date = $2 ORDER BY created_at`,
		userID, date,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckins(rows)
}

func (s *PostgresCheckinsStorage) ListCheckinsInRange(ctx context.Context, userID, from, to string) ([]domain.MealCheckIn, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+checkinColumns+` FROM meal_checkins WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date, created_at`,
		userID, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckins(rows)
}

func (s *PostgresCheckinsStorage) CountDistinctDates(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT date) FROM meal_checkins WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, err
}

func (s *PostgresCheckinsStorage) CountCheckins(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM meal_checkins WHERE user_id = $1`, userID,
	).Scan(&count)
	return count, err
}

func (s *PostgresCheckinsStorage) SetCheckinPhoto(ctx context.Context, userID string, id uuid.UUID, photoKey string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE meal_checkins SET photo_key = $1 WHERE id = $2 AND user_id = $3`,
		photoKey, id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return checkins.ErrCheckinNotFound
	}
	return nil
}

func collectCheckins(rows pgx.Rows) ([]domain.MealCheckIn, error) {
	var result []domain.MealCheckIn
	for rows.Next() {
		var c domain.MealCheckIn
		var nutritionJSON []byte
		err := rows.Scan(
			&c.ID,
			&c.UserID,
			&c.Date,
			&c.MealType,
			&c.Status,
			&c.PlannedRecipeID,
			&c.PhotoKey,
			&nutritionJSON,
			&c.Notes,
			&c.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		if len(nutritionJSON) > 0 {
			if err := json.Unmarshal(nutritionJSON, &c.AnalyzedNutrition); err != nil {
				return nil, err
			}
		}
		result = append(result, c)
	}
	return result, rows.Err()
}
