package domain

import "time"

// UserProfile holds the dietary profile collected during onboarding.
// A profile with OnboardingCompleted=false is provisional: plan generation
// still runs against its defaults.
type UserProfile struct {
	UserID              string               `json:"user_id"`
	Email               string               `json:"email"`
	DisplayName         string               `json:"display_name"`
	HealthGoal          HealthGoal           `json:"health_goal"`
	DietaryRestrictions []DietaryRestriction `json:"dietary_restrictions"`
	CookingSkill        CookingSkill         `json:"cooking_skill"`
	MealPrepDays        []time.Weekday       `json:"meal_prep_days"`
	HouseholdSize       int                  `json:"household_size"`
	BudgetPreference    BudgetPreference     `json:"budget_preference"`
	OnboardingCompleted bool                 `json:"onboarding_completed"`
	CreatedAt           time.Time            `json:"created_at"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

// DefaultProfile returns the provisional profile used before onboarding
// finishes: general wellness, no restrictions, beginner skill.
func DefaultProfile(userID string) UserProfile {
	return UserProfile{
		UserID:           userID,
		HealthGoal:       GoalGeneralWellness,
		CookingSkill:     SkillBeginner,
		HouseholdSize:    1,
		BudgetPreference: BudgetModerate,
	}
}

// HasDietaryRestrictions reports whether the profile carries any effective
// restriction, ignoring the None sentinel.
func (p UserProfile) HasDietaryRestrictions() bool {
	for _, d := range p.DietaryRestrictions {
		if d != DietNone {
			return true
		}
	}
	return false
}
