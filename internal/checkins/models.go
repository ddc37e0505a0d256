package checkins

import "github.com/mealplanhq/mealplan-hub/internal/domain"

// CreateCheckInRequest is the request body for logging a meal
type CreateCheckInRequest struct {
	Date            string               `json:"date"`
	MealType        domain.MealType      `json:"meal_type"`
	Status          domain.CheckInStatus `json:"status"`
	PlannedRecipeID *string              `json:"planned_recipe_id,omitempty"`
	Notes           *string              `json:"notes,omitempty"`
}

// CheckInsResponse is the response for listing check-ins
type CheckInsResponse struct {
	CheckIns []domain.MealCheckIn `json:"check_ins"`
}

// WeekResponse is the response for the week view: seven days of check-ins
// keyed by date, including empty days.
type WeekResponse struct {
	StartDate string                          `json:"start_date"`
	Days      map[string][]domain.MealCheckIn `json:"days"`
}

// StatsResponse summarizes the check-in ledger
type StatsResponse struct {
	TotalCheckIns  int  `json:"total_check_ins"`
	DaysLogged     int  `json:"days_logged"`
	CheckedInToday bool `json:"checked_in_today"`
}

// PhotoUploadResponse is the response after storing a meal photo
type PhotoUploadResponse struct {
	PhotoKey string `json:"photo_key"`
	URL      string `json:"url,omitempty"`
}
