package domain

// QuickMealMaxMinutes is the total-time ceiling for a meal to count as quick.
const QuickMealMaxMinutes = 30

// EasyMealMaxIngredients caps the ingredient count of an "easy" recipe.
const EasyMealMaxIngredients = 8

// Ingredient is one line of a recipe's ingredient list.
type Ingredient struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// NutritionInfo holds per-serving nutrition facts.
type NutritionInfo struct {
	Calories     int     `json:"calories"`
	ProteinGrams float64 `json:"protein_grams"`
	CarbsGrams   float64 `json:"carbs_grams"`
	FatGrams     float64 `json:"fat_grams"`
	FiberGrams   float64 `json:"fiber_grams"`
	SodiumMg     float64 `json:"sodium_mg"`
}

// Recipe is an immutable catalog entry.
type Recipe struct {
	ID              string               `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Ingredients     []Ingredient         `json:"ingredients"`
	Instructions    []string             `json:"instructions"`
	PrepTimeMinutes int                  `json:"prep_time_minutes"`
	CookTimeMinutes int                  `json:"cook_time_minutes"`
	Servings        int                  `json:"servings"`
	Nutrition       NutritionInfo        `json:"nutrition"`
	Tags            []string             `json:"tags"`
	Difficulty      CookingSkill         `json:"difficulty"`
	HealthGoals     []HealthGoal         `json:"health_goals"`
	DietaryInfo     []DietaryRestriction `json:"dietary_info"`
	MealType        MealType             `json:"meal_type"`
	Substitutions   map[string]string    `json:"substitutions,omitempty"` // ingredient -> substitute
}

// TotalTimeMinutes is prep plus cook time.
func (r Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.CookTimeMinutes
}

// IsQuickMeal reports whether the recipe fits in 30 minutes end to end.
func (r Recipe) IsQuickMeal() bool {
	return r.TotalTimeMinutes() <= QuickMealMaxMinutes
}

// IsEasyMeal reports whether the recipe is a beginner recipe with a short
// ingredient list.
func (r Recipe) IsEasyMeal() bool {
	return r.Difficulty == SkillBeginner && len(r.Ingredients) <= EasyMealMaxIngredients
}

// SatisfiesDiet reports whether the recipe's dietary info covers the
// restriction. The None sentinel is satisfied by every recipe.
func (r Recipe) SatisfiesDiet(restriction DietaryRestriction) bool {
	if restriction == DietNone {
		return true
	}
	for _, d := range r.DietaryInfo {
		if d == restriction {
			return true
		}
	}
	return false
}

// MatchesGoal reports whether the recipe targets the goal, treating
// general wellness as a wildcard.
func (r Recipe) MatchesGoal(goal HealthGoal) bool {
	for _, g := range r.HealthGoals {
		if g == goal || g == GoalGeneralWellness {
			return true
		}
	}
	return false
}
