package domain

import (
	"time"

	"github.com/google/uuid"
)

// WeeklyMealPlan is a generated 7-day plan. It is a derived, regenerable
// view, not a system of record.
type WeeklyMealPlan struct {
	ID            uuid.UUID       `json:"id"`
	UserID        string          `json:"user_id"`
	WeekStartDate string          `json:"week_start_date"` // YYYY-MM-DD
	Days          []DailyMealPlan `json:"days"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// DailyMealPlan holds one day's slot assignments. Any slot may be empty
// when the eligible catalog has no recipe of that meal type.
type DailyMealPlan struct {
	Date      string   `json:"date"` // YYYY-MM-DD
	Breakfast *Recipe  `json:"breakfast,omitempty"`
	Lunch     *Recipe  `json:"lunch,omitempty"`
	Dinner    *Recipe  `json:"dinner,omitempty"`
	Snacks    []Recipe `json:"snacks"`
}

// SlotAssignment pairs a slot with its (possibly absent) recipe.
type SlotAssignment struct {
	MealType MealType
	Recipe   *Recipe
}

// AllMeals lists the day's slots in display order: the three main meals
// followed by snacks.
func (d DailyMealPlan) AllMeals() []SlotAssignment {
	meals := []SlotAssignment{
		{MealBreakfast, d.Breakfast},
		{MealLunch, d.Lunch},
		{MealDinner, d.Dinner},
	}
	for i := range d.Snacks {
		meals = append(meals, SlotAssignment{MealSnack, &d.Snacks[i]})
	}
	return meals
}

// CompletedMeals counts the filled slots.
func (d DailyMealPlan) CompletedMeals() int {
	n := len(d.Snacks)
	for _, r := range []*Recipe{d.Breakfast, d.Lunch, d.Dinner} {
		if r != nil {
			n++
		}
	}
	return n
}
