package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// PostgresRecipesStorage implements recipes.Storage
type PostgresRecipesStorage struct {
	pool *pgxpool.Pool
}

// NewPostgresRecipesStorage creates a new Postgres recipes storage
func NewPostgresRecipesStorage(pool *pgxpool.Pool) *PostgresRecipesStorage {
	return &PostgresRecipesStorage{pool: pool}
}

const recipeColumns = `
	id, name, description, ingredients, instructions,
	prep_time_minutes, cook_time_minutes, servings, nutrition, tags,
	difficulty, health_goals, dietary_info, meal_type, substitutions
`

func (s *PostgresRecipesStorage) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+recipeColumns+` FROM recipes ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *r)
	}
	return result, rows.Err()
}

func (s *PostgresRecipesStorage) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+recipeColumns+` FROM recipes WHERE id = $1`, id)
	r, err := scanRecipe(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (s *PostgresRecipesStorage) CountRecipes(ctx context.Context) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM recipes`).Scan(&count)
	return count, err
}

// BulkInsertRecipes inserts recipes in one transaction; rows whose id
// already exists are skipped, which keeps concurrent seeding idempotent.
func (s *PostgresRecipesStorage) BulkInsertRecipes(ctx context.Context, recipes []domain.Recipe) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO recipes (` + recipeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO NOTHING
	`
	for _, r := range recipes {
		ingredientsJSON, err := json.Marshal(r.Ingredients)
		if err != nil {
			return err
		}
		instructionsJSON, err := json.Marshal(r.Instructions)
		if err != nil {
			return err
		}
		nutritionJSON, err := json.Marshal(r.Nutrition)
		if err != nil {
			return err
		}
		tagsJSON, err := json.Marshal(r.Tags)
		if err != nil {
			return err
		}
		goalsJSON, err := json.Marshal(r.HealthGoals)
		if err != nil {
			return err
		}
		dietJSON, err := json.Marshal(r.DietaryInfo)
		if err != nil {
			return err
		}
		subsJSON, err := json.Marshal(r.Substitutions)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, query,
			r.ID,
			r.Name,
			r.Description,
			ingredientsJSON,
			instructionsJSON,
			r.PrepTimeMinutes,
			r.CookTimeMinutes,
			r.Servings,
			nutritionJSON,
			tagsJSON,
			r.Difficulty,
			goalsJSON,
			dietJSON,
			r.MealType,
			subsJSON,
		)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var r domain.Recipe
	var ingredientsJSON, instructionsJSON, nutritionJSON, tagsJSON, goalsJSON, dietJSON, subsJSON []byte

	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Description,
		&ingredientsJSON,
		&instructionsJSON,
		&r.PrepTimeMinutes,
		&r.CookTimeMinutes,
		&r.Servings,
		&nutritionJSON,
		&tagsJSON,
		&r.Difficulty,
		&goalsJSON,
		&dietJSON,
		&r.MealType,
		&subsJSON,
	)
	if err != nil {
		return nil, err
	}

	for _, col := range []struct {
		data []byte
		dst  any
	}{
		{ingredientsJSON, &r.Ingredients},
		{instructionsJSON, &r.Instructions},
		{nutritionJSON, &r.Nutrition},
		{tagsJSON, &r.Tags},
		{goalsJSON, &r.HealthGoals},
		{dietJSON, &r.DietaryInfo},
		{subsJSON, &r.Substitutions},
	} {
		if len(col.data) > 0 {
			if err := json.Unmarshal(col.data, col.dst); err != nil {
				return nil, err
			}
		}
	}
	return &r, nil
}
