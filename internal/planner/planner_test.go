package planner

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// mockRecipeSource implements RecipeSource for testing
type mockRecipeSource struct {
	recipes []domain.Recipe
}

func (m *mockRecipeSource) AllRecipes(ctx context.Context) ([]domain.Recipe, error) {
	return m.recipes, nil
}

// mockProfileSource implements ProfileSource for testing
type mockProfileSource struct {
	profile domain.UserProfile
}

func (m *mockProfileSource) ProfileFor(ctx context.Context, userID string) (domain.UserProfile, error) {
	return m.profile, nil
}

func recipe(id string, meal domain.MealType, difficulty domain.CookingSkill, goals []domain.HealthGoal, diet []domain.DietaryRestriction, totalMinutes int) domain.Recipe {
	return domain.Recipe{
		ID:              id,
		Name:            id,
		MealType:        meal,
		Difficulty:      difficulty,
		HealthGoals:     goals,
		DietaryInfo:     diet,
		PrepTimeMinutes: totalMinutes,
	}
}

func newTestService(recipes []domain.Recipe, profile domain.UserProfile, strict bool) *Service {
	s := NewService(&mockRecipeSource{recipes: recipes}, &mockProfileSource{profile: profile}, strict)
	s.rng = rand.New(rand.NewSource(42))
	s.now = func() time.Time { return time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestFilterEligibleDietIsConjunctive(t *testing.T) {
	veganGF := recipe("r1", domain.MealLunch, domain.SkillBeginner,
		[]domain.HealthGoal{domain.GoalGeneralWellness},
		[]domain.DietaryRestriction{domain.DietVegan, domain.DietGlutenFree}, 10)
	veganOnly := recipe("r2", domain.MealLunch, domain.SkillBeginner,
		[]domain.HealthGoal{domain.GoalGeneralWellness},
		[]domain.DietaryRestriction{domain.DietVegan}, 10)

	profile := domain.DefaultProfile("u1")
	profile.DietaryRestrictions = []domain.DietaryRestriction{domain.DietVegan, domain.DietGlutenFree}

	eligible := FilterEligible([]domain.Recipe{veganGF, veganOnly}, profile)
	if len(eligible) != 1 || eligible[0].ID != "r1" {
		t.Fatalf("expected only the vegan+gluten-free recipe, got %v", ids(eligible))
	}
}

func TestFilterEligibleNoneSentinelPassesEverything(t *testing.T) {
	plain := recipe("r1", domain.MealDinner, domain.SkillBeginner,
		[]domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10)

	profile := domain.DefaultProfile("u1")
	profile.DietaryRestrictions = []domain.DietaryRestriction{domain.DietNone}

	if got := FilterEligible([]domain.Recipe{plain}, profile); len(got) != 1 {
		t.Fatalf("none sentinel should not exclude anything, got %v", ids(got))
	}
}

func TestFilterEligibleSkillGateIsMonotonic(t *testing.T) {
	catalog := []domain.Recipe{
		recipe("easy", domain.MealDinner, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10),
		recipe("mid", domain.MealDinner, domain.SkillIntermediate, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10),
		recipe("hard", domain.MealDinner, domain.SkillAdvanced, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10),
	}

	counts := make(map[domain.CookingSkill]int)
	for _, skill := range domain.CookingSkills {
		profile := domain.DefaultProfile("u1")
		profile.CookingSkill = skill
		counts[skill] = len(FilterEligible(catalog, profile))
	}

	if counts[domain.SkillBeginner] != 1 || counts[domain.SkillIntermediate] != 2 || counts[domain.SkillAdvanced] != 3 {
		t.Errorf("skill gate counts = %v, want beginner:1 intermediate:2 advanced:3", counts)
	}
}

func TestFilterEligibleGoalWildcard(t *testing.T) {
	targeted := recipe("fat", domain.MealLunch, domain.SkillBeginner, []domain.HealthGoal{domain.GoalLoseFat}, nil, 10)
	wildcard := recipe("any", domain.MealLunch, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10)

	profile := domain.DefaultProfile("u1")
	profile.HealthGoal = domain.GoalBuildMuscle

	eligible := FilterEligible([]domain.Recipe{targeted, wildcard}, profile)
	if len(eligible) != 1 || eligible[0].ID != "any" {
		t.Fatalf("expected only the general-wellness recipe, got %v", ids(eligible))
	}
}

func TestGenerateWeeklyPlanShape(t *testing.T) {
	catalog := []domain.Recipe{
		recipe("b1", domain.MealBreakfast, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10),
		recipe("l1", domain.MealLunch, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 15),
		recipe("d1", domain.MealDinner, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 25),
		recipe("s1", domain.MealSnack, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 5),
		recipe("s2", domain.MealSnack, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 5),
	}
	service := newTestService(catalog, domain.DefaultProfile("u1"), false)

	plan, err := service.GenerateWeeklyPlan(context.Background(), "u1", "2024-01-08")
	if err != nil {
		t.Fatalf("GenerateWeeklyPlan: %v", err)
	}

	if plan.UserID != "u1" || plan.WeekStartDate != "2024-01-08" {
		t.Errorf("plan header = %s/%s", plan.UserID, plan.WeekStartDate)
	}
	if len(plan.Days) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan.Days))
	}

	start, _ := time.Parse(domain.DateLayout, "2024-01-08")
	for i, day := range plan.Days {
		wantDate := start.AddDate(0, 0, i).Format(domain.DateLayout)
		if day.Date != wantDate {
			t.Errorf("day %d date = %s, want %s", i, day.Date, wantDate)
		}
		if day.Breakfast == nil || day.Breakfast.MealType != domain.MealBreakfast {
			t.Errorf("day %d breakfast slot wrong", i)
		}
		if day.Lunch == nil || day.Lunch.MealType != domain.MealLunch {
			t.Errorf("day %d lunch slot wrong", i)
		}
		if day.Dinner == nil || day.Dinner.MealType != domain.MealDinner {
			t.Errorf("day %d dinner slot wrong", i)
		}
		if len(day.Snacks) != 1 || day.Snacks[0].MealType != domain.MealSnack {
			t.Errorf("day %d should carry exactly one snack", i)
		}
	}
}

func TestGenerateWeeklyPlanDrawsFromEligiblePoolOnly(t *testing.T) {
	catalog := []domain.Recipe{
		recipe("easy1", domain.MealBreakfast, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10),
		recipe("easy2", domain.MealBreakfast, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10),
		recipe("hard", domain.MealBreakfast, domain.SkillAdvanced, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10),
	}
	service := newTestService(catalog, domain.DefaultProfile("u1"), false)

	plan, err := service.GenerateWeeklyPlan(context.Background(), "u1", "2024-01-08")
	if err != nil {
		t.Fatalf("GenerateWeeklyPlan: %v", err)
	}
	for i, day := range plan.Days {
		if day.Breakfast == nil {
			t.Fatalf("day %d breakfast empty with two eligible recipes", i)
		}
		if id := day.Breakfast.ID; id != "easy1" && id != "easy2" {
			t.Errorf("day %d breakfast = %s, want one of the beginner recipes", i, id)
		}
	}
}

func TestGenerateWeeklyPlanToleratesSparseCatalog(t *testing.T) {
	catalog := []domain.Recipe{
		recipe("l1", domain.MealLunch, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 15),
	}
	service := newTestService(catalog, domain.DefaultProfile("u1"), false)

	plan, err := service.GenerateWeeklyPlan(context.Background(), "u1", "2024-01-08")
	if err != nil {
		t.Fatalf("sparse catalog must not error: %v", err)
	}
	for i, day := range plan.Days {
		if day.Breakfast != nil || day.Dinner != nil {
			t.Errorf("day %d has recipes for empty buckets", i)
		}
		if day.Lunch == nil {
			t.Errorf("day %d lunch missing", i)
		}
		if len(day.Snacks) != 0 {
			t.Errorf("day %d has snacks from an empty bucket", i)
		}
	}
}

func TestGenerateWeeklyPlanRejectsBadDate(t *testing.T) {
	service := newTestService(nil, domain.DefaultProfile("u1"), false)
	if _, err := service.GenerateWeeklyPlan(context.Background(), "u1", "Jan 8 2024"); err != ErrInvalidDate {
		t.Errorf("got %v, want ErrInvalidDate", err)
	}
}

func TestGenerateWeeklyPlanDefaultsToToday(t *testing.T) {
	service := newTestService(nil, domain.DefaultProfile("u1"), false)
	plan, err := service.GenerateWeeklyPlan(context.Background(), "u1", "")
	if err != nil {
		t.Fatalf("GenerateWeeklyPlan: %v", err)
	}
	if plan.WeekStartDate != "2024-01-10" {
		t.Errorf("WeekStartDate = %s, want clock date 2024-01-10", plan.WeekStartDate)
	}
}

func TestEasierAlternative(t *testing.T) {
	catalog := []domain.Recipe{
		recipe("slow", domain.MealDinner, domain.SkillIntermediate, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 40),
		recipe("fast", domain.MealDinner, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 20),
		recipe("slower-beginner", domain.MealDinner, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 50),
		recipe("fast-lunch", domain.MealLunch, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 10),
		recipe("fast-advanced", domain.MealDinner, domain.SkillAdvanced, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 15),
	}
	service := newTestService(catalog, domain.DefaultProfile("u1"), false)

	for i := 0; i < 10; i++ {
		alt, err := service.EasierAlternative(context.Background(), "u1", "slow")
		if err != nil {
			t.Fatalf("EasierAlternative: %v", err)
		}
		if alt.ID != "fast" {
			t.Fatalf("alternative = %s, want fast (only valid candidate)", alt.ID)
		}
	}
}

func TestEasierAlternativeNoneAvailable(t *testing.T) {
	catalog := []domain.Recipe{
		recipe("only", domain.MealDinner, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 20),
	}
	service := newTestService(catalog, domain.DefaultProfile("u1"), false)

	if _, err := service.EasierAlternative(context.Background(), "u1", "only"); err != ErrNoAlternative {
		t.Errorf("got %v, want ErrNoAlternative", err)
	}
	if _, err := service.EasierAlternative(context.Background(), "u1", "ghost"); err != ErrRecipeNotFound {
		t.Errorf("got %v, want ErrRecipeNotFound", err)
	}
}

func TestEasierAlternativeStrictRespectsDiet(t *testing.T) {
	catalog := []domain.Recipe{
		recipe("slow", domain.MealDinner, domain.SkillIntermediate, []domain.HealthGoal{domain.GoalGeneralWellness},
			[]domain.DietaryRestriction{domain.DietVegan}, 40),
		recipe("fast-meaty", domain.MealDinner, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness}, nil, 20),
		recipe("fast-vegan", domain.MealDinner, domain.SkillBeginner, []domain.HealthGoal{domain.GoalGeneralWellness},
			[]domain.DietaryRestriction{domain.DietVegan}, 25),
	}
	profile := domain.DefaultProfile("u1")
	profile.DietaryRestrictions = []domain.DietaryRestriction{domain.DietVegan}

	loose := newTestService(catalog, profile, false)
	strict := newTestService(catalog, profile, true)

	sawMeaty := false
	for i := 0; i < 20; i++ {
		alt, err := loose.EasierAlternative(context.Background(), "u1", "slow")
		if err != nil {
			t.Fatalf("loose EasierAlternative: %v", err)
		}
		if alt.ID == "fast-meaty" {
			sawMeaty = true
		}
	}
	if !sawMeaty {
		t.Error("loose mode should allow diet-violating candidates")
	}

	for i := 0; i < 20; i++ {
		alt, err := strict.EasierAlternative(context.Background(), "u1", "slow")
		if err != nil {
			t.Fatalf("strict EasierAlternative: %v", err)
		}
		if alt.ID != "fast-vegan" {
			t.Fatalf("strict alternative = %s, want fast-vegan", alt.ID)
		}
	}
}

func ids(recipes []domain.Recipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}
