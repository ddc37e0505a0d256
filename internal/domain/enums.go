package domain

// HealthGoal is the single goal a user picks at onboarding.
type HealthGoal string

const (
	GoalLoseFat         HealthGoal = "lose_fat"
	GoalBuildMuscle     HealthGoal = "build_muscle"
	GoalHeartHealth     HealthGoal = "heart_health"
	GoalMoreEnergy      HealthGoal = "more_energy"
	GoalGeneralWellness HealthGoal = "general_wellness"
)

// HealthGoals lists every valid goal.
var HealthGoals = []HealthGoal{
	GoalLoseFat, GoalBuildMuscle, GoalHeartHealth, GoalMoreEnergy, GoalGeneralWellness,
}

func (g HealthGoal) Valid() bool {
	for _, v := range HealthGoals {
		if g == v {
			return true
		}
	}
	return false
}

// DietaryRestriction is a dietary constraint a recipe can satisfy.
type DietaryRestriction string

const (
	DietNone       DietaryRestriction = "none"
	DietVegetarian DietaryRestriction = "vegetarian"
	DietVegan      DietaryRestriction = "vegan"
	DietGlutenFree DietaryRestriction = "gluten_free"
	DietDairyFree  DietaryRestriction = "dairy_free"
	DietNutAllergy DietaryRestriction = "nut_allergy"
	DietHalal      DietaryRestriction = "halal"
	DietKosher     DietaryRestriction = "kosher"
)

var DietaryRestrictions = []DietaryRestriction{
	DietNone, DietVegetarian, DietVegan, DietGlutenFree,
	DietDairyFree, DietNutAllergy, DietHalal, DietKosher,
}

func (d DietaryRestriction) Valid() bool {
	for _, v := range DietaryRestrictions {
		if d == v {
			return true
		}
	}
	return false
}

// CookingSkill orders beginner < intermediate < advanced.
type CookingSkill string

const (
	SkillBeginner     CookingSkill = "beginner"
	SkillIntermediate CookingSkill = "intermediate"
	SkillAdvanced     CookingSkill = "advanced"
)

var CookingSkills = []CookingSkill{SkillBeginner, SkillIntermediate, SkillAdvanced}

func (s CookingSkill) Valid() bool {
	for _, v := range CookingSkills {
		if s == v {
			return true
		}
	}
	return false
}

// BudgetPreference reflects how much the user wants to spend on ingredients.
type BudgetPreference string

const (
	BudgetFriendly BudgetPreference = "budget"
	BudgetModerate BudgetPreference = "moderate"
	BudgetPremium  BudgetPreference = "premium"
)

func (b BudgetPreference) Valid() bool {
	return b == BudgetFriendly || b == BudgetModerate || b == BudgetPremium
}

// MealType is one of the four daily meal slots.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
	MealSnack     MealType = "snack"
)

var MealTypes = []MealType{MealBreakfast, MealLunch, MealDinner, MealSnack}

func (m MealType) Valid() bool {
	for _, v := range MealTypes {
		if m == v {
			return true
		}
	}
	return false
}

// CheckInStatus records how the user logged a meal.
type CheckInStatus string

const (
	StatusFollowedPlan    CheckInStatus = "followed_plan"
	StatusLoggedWithPhoto CheckInStatus = "logged_with_photo"
	StatusSkipped         CheckInStatus = "skipped"
)

func (s CheckInStatus) Valid() bool {
	return s == StatusFollowedPlan || s == StatusLoggedWithPhoto || s == StatusSkipped
}

// TrendRating is a better/same/worse self-assessment.
type TrendRating string

const (
	TrendBetter TrendRating = "better"
	TrendSame   TrendRating = "same"
	TrendWorse  TrendRating = "worse"
)

func (t TrendRating) Valid() bool {
	return t == TrendBetter || t == TrendSame || t == TrendWorse
}

// PostMealFeeling is how the user feels after meals.
type PostMealFeeling string

const (
	FeelingLightSatisfied PostMealFeeling = "light_satisfied"
	FeelingBloated        PostMealFeeling = "bloated"
	FeelingStillHungry    PostMealFeeling = "still_hungry"
)

func (f PostMealFeeling) Valid() bool {
	return f == FeelingLightSatisfied || f == FeelingBloated || f == FeelingStillHungry
}
