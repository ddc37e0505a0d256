package domain

import "testing"

func TestRecipeDerivedFields(t *testing.T) {
	r := Recipe{
		PrepTimeMinutes: 10,
		CookTimeMinutes: 20,
		Difficulty:      SkillBeginner,
		Ingredients: []Ingredient{
			{Name: "eggs", Amount: 2},
			{Name: "spinach", Amount: 1, Unit: "cup"},
		},
	}

	if got := r.TotalTimeMinutes(); got != 30 {
		t.Errorf("TotalTimeMinutes = %d, want 30", got)
	}
	if !r.IsQuickMeal() {
		t.Error("30-minute recipe should be a quick meal")
	}
	if !r.IsEasyMeal() {
		t.Error("beginner recipe with 2 ingredients should be easy")
	}

	r.CookTimeMinutes = 21
	if r.IsQuickMeal() {
		t.Error("31-minute recipe should not be a quick meal")
	}

	r.Difficulty = SkillIntermediate
	if r.IsEasyMeal() {
		t.Error("intermediate recipe should not be easy")
	}
}

func TestRecipeSatisfiesDiet(t *testing.T) {
	r := Recipe{DietaryInfo: []DietaryRestriction{DietVegetarian, DietGlutenFree}}

	if !r.SatisfiesDiet(DietVegetarian) {
		t.Error("expected vegetarian to be satisfied")
	}
	if r.SatisfiesDiet(DietVegan) {
		t.Error("vegan is not in the recipe's dietary info")
	}
	if !r.SatisfiesDiet(DietNone) {
		t.Error("the none sentinel must always be satisfied")
	}
}

func TestRecipeMatchesGoal(t *testing.T) {
	targeted := Recipe{HealthGoals: []HealthGoal{GoalLoseFat}}
	if !targeted.MatchesGoal(GoalLoseFat) {
		t.Error("expected direct goal match")
	}
	if targeted.MatchesGoal(GoalBuildMuscle) {
		t.Error("unrelated goal must not match")
	}

	wildcard := Recipe{HealthGoals: []HealthGoal{GoalGeneralWellness}}
	for _, g := range HealthGoals {
		if !wildcard.MatchesGoal(g) {
			t.Errorf("general wellness recipe should match goal %s", g)
		}
	}
}

func TestDefaultProfile(t *testing.T) {
	p := DefaultProfile("u1")

	if p.UserID != "u1" {
		t.Errorf("UserID = %q", p.UserID)
	}
	if p.HealthGoal != GoalGeneralWellness || p.CookingSkill != SkillBeginner {
		t.Errorf("unexpected defaults: goal=%s skill=%s", p.HealthGoal, p.CookingSkill)
	}
	if p.OnboardingCompleted {
		t.Error("default profile must be provisional")
	}
}

func TestHasDietaryRestrictions(t *testing.T) {
	cases := []struct {
		name string
		diet []DietaryRestriction
		want bool
	}{
		{"empty", nil, false},
		{"only none sentinel", []DietaryRestriction{DietNone}, false},
		{"real restriction", []DietaryRestriction{DietVegan}, true},
		{"none plus real", []DietaryRestriction{DietNone, DietHalal}, true},
	}

	for _, tc := range cases {
		p := UserProfile{DietaryRestrictions: tc.diet}
		if got := p.HasDietaryRestrictions(); got != tc.want {
			t.Errorf("%s: HasDietaryRestrictions = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestDailyMealPlanHelpers(t *testing.T) {
	breakfast := Recipe{ID: "b1", MealType: MealBreakfast}
	snack := Recipe{ID: "s1", MealType: MealSnack}

	day := DailyMealPlan{
		Date:      "2024-01-10",
		Breakfast: &breakfast,
		Snacks:    []Recipe{snack},
	}

	if got := day.CompletedMeals(); got != 2 {
		t.Errorf("CompletedMeals = %d, want 2", got)
	}

	meals := day.AllMeals()
	if len(meals) != 4 {
		t.Fatalf("AllMeals returned %d entries, want 4", len(meals))
	}
	if meals[0].MealType != MealBreakfast || meals[0].Recipe == nil {
		t.Error("first slot should be the filled breakfast")
	}
	if meals[1].Recipe != nil || meals[2].Recipe != nil {
		t.Error("lunch and dinner should be empty")
	}
	if meals[3].MealType != MealSnack || meals[3].Recipe.ID != "s1" {
		t.Error("last slot should be the snack")
	}
}

func TestEnumValidity(t *testing.T) {
	if !GoalLoseFat.Valid() || HealthGoal("cardio").Valid() {
		t.Error("HealthGoal validity broken")
	}
	if !DietKosher.Valid() || DietaryRestriction("paleo").Valid() {
		t.Error("DietaryRestriction validity broken")
	}
	if !SkillAdvanced.Valid() || CookingSkill("expert").Valid() {
		t.Error("CookingSkill validity broken")
	}
	if !MealDinner.Valid() || MealType("brunch").Valid() {
		t.Error("MealType validity broken")
	}
	if !StatusSkipped.Valid() || CheckInStatus("ate").Valid() {
		t.Error("CheckInStatus validity broken")
	}
	if !TrendBetter.Valid() || TrendRating("unknown").Valid() {
		t.Error("TrendRating validity broken")
	}
	if !FeelingBloated.Valid() || PostMealFeeling("fine").Valid() {
		t.Error("PostMealFeeling validity broken")
	}
}
