package planner

import "github.com/mealplanhq/mealplan-hub/internal/domain"

// skillAllows reports whether a cook at the given skill level can take on a
// recipe of the given difficulty. Beginners see only beginner recipes,
// intermediates everything below advanced, advanced cooks everything.
func skillAllows(skill domain.CookingSkill, difficulty domain.CookingSkill) bool {
	switch skill {
	case domain.SkillBeginner:
		return difficulty == domain.SkillBeginner
	case domain.SkillIntermediate:
		return difficulty != domain.SkillAdvanced
	case domain.SkillAdvanced:
		return true
	default:
		return false
	}
}

// satisfiesAllRestrictions requires the recipe to satisfy every restriction
// on the profile. The "none" sentinel is always satisfied, so a profile that
// only carries the sentinel (or none at all) passes every recipe.
func satisfiesAllRestrictions(r domain.Recipe, restrictions []domain.DietaryRestriction) bool {
	for _, restriction := range restrictions {
		if !r.SatisfiesDiet(restriction) {
			return false
		}
	}
	return true
}

// FilterEligible returns the recipes a user can actually be planned: every
// dietary restriction satisfied, difficulty within the user's skill, and the
// recipe serving the user's health goal (general-wellness recipes serve any
// goal). The input slice is never mutated.
func FilterEligible(catalog []domain.Recipe, profile domain.UserProfile) []domain.Recipe {
	eligible := make([]domain.Recipe, 0, len(catalog))
	for _, r := range catalog {
		if !satisfiesAllRestrictions(r, profile.DietaryRestrictions) {
			continue
		}
		if !skillAllows(profile.CookingSkill, r.Difficulty) {
			continue
		}
		if !r.MatchesGoal(profile.HealthGoal) {
			continue
		}
		eligible = append(eligible, r)
	}
	return eligible
}
