package planner

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

const (
	planDays     = 7
	snacksPerDay = 1
)

var (
	ErrInvalidDate    = errors.New("invalid date format")
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrNoAlternative  = errors.New("no easier alternative available")
)

// RecipeSource provides the recipe catalog
type RecipeSource interface {
	AllRecipes(ctx context.Context) ([]domain.Recipe, error)
}

// ProfileSource provides user profiles, defaulted when absent
type ProfileSource interface {
	ProfileFor(ctx context.Context, userID string) (domain.UserProfile, error)
}

// Service generates weekly meal plans and finds easier substitutes
type Service struct {
	recipes  RecipeSource
	profiles ProfileSource

	// strictSwap re-applies the eligibility filter to swap candidates, so
	// an alternative never violates the user's dietary restrictions.
	strictSwap bool

	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewService creates a new planner service
func NewService(recipes RecipeSource, profiles ProfileSource, strictSwap bool) *Service {
	return &Service{
		recipes:    recipes,
		profiles:   profiles,
		strictSwap: strictSwap,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
}

func (s *Service) shuffle(n int, swap func(i, j int)) {
	s.mu.Lock()
	s.rng.Shuffle(n, swap)
	s.mu.Unlock()
}

func (s *Service) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// GenerateWeeklyPlan builds a 7-day plan starting at weekStart (YYYY-MM-DD,
// defaults to today). Sparse catalogs are not an error: slots the eligible
// pool cannot fill stay empty.
func (s *Service) GenerateWeeklyPlan(ctx context.Context, userID, weekStart string) (*domain.WeeklyMealPlan, error) {
	if weekStart == "" {
		weekStart = s.now().Format(domain.DateLayout)
	}
	start, err := time.Parse(domain.DateLayout, weekStart)
	if err != nil {
		return nil, ErrInvalidDate
	}

	profile, err := s.profiles.ProfileFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.recipes.AllRecipes(ctx)
	if err != nil {
		return nil, err
	}

	eligible := FilterEligible(catalog, profile)
	buckets := bucketByMealType(eligible)

	plan := &domain.WeeklyMealPlan{
		ID:            uuid.New(),
		UserID:        userID,
		WeekStartDate: weekStart,
		Days:          make([]domain.DailyMealPlan, 0, planDays),
		GeneratedAt:   s.now(),
	}

	for i := 0; i < planDays; i++ {
		day := domain.DailyMealPlan{
			Date:   start.AddDate(0, 0, i).Format(domain.DateLayout),
			Snacks: []domain.Recipe{},
		}
		day.Breakfast = s.pickOne(buckets[domain.MealBreakfast])
		day.Lunch = s.pickOne(buckets[domain.MealLunch])
		day.Dinner = s.pickOne(buckets[domain.MealDinner])
		day.Snacks = s.pickN(buckets[domain.MealSnack], snacksPerDay)
		plan.Days = append(plan.Days, day)
	}
	return plan, nil
}

// pickOne shuffles a copy of the bucket and takes the first recipe. Each
// call reshuffles independently, so consecutive days vary.
func (s *Service) pickOne(bucket []domain.Recipe) *domain.Recipe {
	picked := s.pickN(bucket, 1)
	if len(picked) == 0 {
		return nil
	}
	return &picked[0]
}

func (s *Service) pickN(bucket []domain.Recipe, n int) []domain.Recipe {
	if len(bucket) == 0 {
		return []domain.Recipe{}
	}
	shuffled := make([]domain.Recipe, len(bucket))
	copy(shuffled, bucket)
	s.shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if n > len(shuffled) {
		n = len(shuffled)
	}
	return shuffled[:n:n]
}

func bucketByMealType(recipes []domain.Recipe) map[domain.MealType][]domain.Recipe {
	buckets := make(map[domain.MealType][]domain.Recipe, len(domain.MealTypes))
	for _, r := range recipes {
		buckets[r.MealType] = append(buckets[r.MealType], r)
	}
	return buckets
}

// EasierAlternative finds a simpler stand-in for the given recipe: same meal
// type, beginner difficulty, strictly faster to make. Picks uniformly at
// random among the candidates.
func (s *Service) EasierAlternative(ctx context.Context, userID, recipeID string) (*domain.Recipe, error) {
	catalog, err := s.recipes.AllRecipes(ctx)
	if err != nil {
		return nil, err
	}

	var current *domain.Recipe
	for i := range catalog {
		if catalog[i].ID == recipeID {
			current = &catalog[i]
			break
		}
	}
	if current == nil {
		return nil, ErrRecipeNotFound
	}

	pool := catalog
	if s.strictSwap {
		profile, err := s.profiles.ProfileFor(ctx, userID)
		if err != nil {
			return nil, err
		}
		pool = FilterEligible(catalog, profile)
	}

	var candidates []domain.Recipe
	for _, r := range pool {
		if r.MealType != current.MealType || r.ID == current.ID {
			continue
		}
		if r.Difficulty != domain.SkillBeginner {
			continue
		}
		if r.TotalTimeMinutes() >= current.TotalTimeMinutes() {
			continue
		}
		candidates = append(candidates, r)
	}
	if len(candidates) == 0 {
		return nil, ErrNoAlternative
	}

	chosen := candidates[s.intn(len(candidates))]
	return &chosen, nil
}
