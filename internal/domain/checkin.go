package domain

import (
	"time"

	"github.com/google/uuid"
)

// MealCheckIn is one logged meal. Date is a calendar day (YYYY-MM-DD),
// never a timestamp; streak arithmetic depends on that.
type MealCheckIn struct {
	ID               uuid.UUID      `json:"id"`
	UserID           string         `json:"user_id"`
	Date             string         `json:"date"` // YYYY-MM-DD
	MealType         MealType       `json:"meal_type"`
	Status           CheckInStatus  `json:"status"`
	PlannedRecipeID  *string        `json:"planned_recipe_id,omitempty"`
	PhotoKey         *string        `json:"photo_key,omitempty"`
	AnalyzedNutrition *NutritionInfo `json:"analyzed_nutrition,omitempty"`
	Notes            *string        `json:"notes,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
}

// DateLayout is the wire/storage format for calendar days.
const DateLayout = "2006-01-02"
