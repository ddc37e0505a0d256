package recipes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// mockStorage implements Storage for testing
type mockStorage struct {
	recipes map[string]domain.Recipe
	order   []string

	bulkInsertCalls int
}

func newMockStorage() *mockStorage {
	return &mockStorage{recipes: make(map[string]domain.Recipe)}
}

func (m *mockStorage) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	result := make([]domain.Recipe, 0, len(m.order))
	for _, id := range m.order {
		result = append(result, m.recipes[id])
	}
	return result, nil
}

func (m *mockStorage) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	r, exists := m.recipes[id]
	if !exists {
		return nil, ErrRecipeNotFound
	}
	return &r, nil
}

func (m *mockStorage) CountRecipes(ctx context.Context) (int, error) {
	return len(m.recipes), nil
}

func (m *mockStorage) BulkInsertRecipes(ctx context.Context, recipes []domain.Recipe) error {
	m.bulkInsertCalls++
	for _, r := range recipes {
		if _, exists := m.recipes[r.ID]; exists {
			continue
		}
		m.recipes[r.ID] = r
		m.order = append(m.order, r.ID)
	}
	return nil
}

func TestEnsureSeededPopulatesEmptyStore(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	if err := service.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}
	if len(storage.recipes) != 36 {
		t.Errorf("seeded %d recipes, want 36", len(storage.recipes))
	}
}

func TestEnsureSeededIsIdempotent(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	for i := 0; i < 3; i++ {
		if err := service.EnsureSeeded(context.Background()); err != nil {
			t.Fatalf("EnsureSeeded run %d: %v", i, err)
		}
	}
	if storage.bulkInsertCalls != 1 {
		t.Errorf("BulkInsertRecipes called %d times, want 1", storage.bulkInsertCalls)
	}
	if len(storage.recipes) != 36 {
		t.Errorf("catalog has %d recipes after repeated seeding, want 36", len(storage.recipes))
	}
}

func TestSeedCatalogIntegrity(t *testing.T) {
	catalog := seedCatalog()
	if len(catalog) != 36 {
		t.Fatalf("seed catalog has %d recipes, want 36", len(catalog))
	}

	seen := make(map[string]bool)
	byMealType := make(map[domain.MealType]int)
	for _, r := range catalog {
		if r.ID == "" || r.Name == "" {
			t.Errorf("recipe %q missing id or name", r.ID)
		}
		if seen[r.ID] {
			t.Errorf("duplicate recipe id %q", r.ID)
		}
		seen[r.ID] = true
		if !r.MealType.Valid() {
			t.Errorf("recipe %s has invalid meal type %q", r.ID, r.MealType)
		}
		if !r.Difficulty.Valid() {
			t.Errorf("recipe %s has invalid difficulty %q", r.ID, r.Difficulty)
		}
		if len(r.HealthGoals) == 0 {
			t.Errorf("recipe %s has no health goals", r.ID)
		}
		if len(r.Ingredients) == 0 || len(r.Instructions) == 0 {
			t.Errorf("recipe %s missing ingredients or instructions", r.ID)
		}
		byMealType[r.MealType]++
	}

	for _, mt := range domain.MealTypes {
		if byMealType[mt] == 0 {
			t.Errorf("seed catalog has no %s recipes", mt)
		}
	}
}

func TestListRecipesFilters(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)
	if err := service.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}

	breakfasts, err := service.ListRecipes(context.Background(), ListFilter{MealType: domain.MealBreakfast})
	if err != nil {
		t.Fatalf("ListRecipes by meal type: %v", err)
	}
	if len(breakfasts) == 0 {
		t.Fatal("expected breakfast recipes")
	}
	for _, r := range breakfasts {
		if r.MealType != domain.MealBreakfast {
			t.Errorf("recipe %s has meal type %s, want breakfast", r.ID, r.MealType)
		}
	}

	quick, err := service.ListRecipes(context.Background(), ListFilter{MaxTotalMinutes: 15})
	if err != nil {
		t.Fatalf("ListRecipes by time: %v", err)
	}
	for _, r := range quick {
		if r.TotalTimeMinutes() > 15 {
			t.Errorf("recipe %s takes %d minutes, want <= 15", r.ID, r.TotalTimeMinutes())
		}
	}

	hearty, err := service.ListRecipes(context.Background(), ListFilter{Goal: domain.GoalHeartHealth})
	if err != nil {
		t.Fatalf("ListRecipes by goal: %v", err)
	}
	for _, r := range hearty {
		if !r.MatchesGoal(domain.GoalHeartHealth) {
			t.Errorf("recipe %s does not serve heart health", r.ID)
		}
	}

	if _, err := service.ListRecipes(context.Background(), ListFilter{MealType: "brunch"}); err != ErrInvalidMealType {
		t.Errorf("ListRecipes with bad meal type: got %v, want ErrInvalidMealType", err)
	}
}

func TestHandleListAndGet(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)
	if err := service.EnsureSeeded(context.Background()); err != nil {
		t.Fatalf("EnsureSeeded: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes?meal_type=snack", nil)
	rec := httptest.NewRecorder()
	HandleList(service)(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", rec.Code)
	}
	var listResp RecipesResponse
	if err := json.NewDecoder(rec.Body).Decode(&listResp); err != nil {
		t.Fatalf("decode list response: %v", err)
	}
	if len(listResp.Recipes) == 0 {
		t.Fatal("expected snack recipes in response")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/recipes/{id}", HandleGet(service))

	getReq := httptest.NewRequest(http.MethodGet, "/v1/recipes/"+listResp.Recipes[0].ID, nil)
	getRec := httptest.NewRecorder()
	mux.ServeHTTP(getRec, getReq)
	if getRec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", getRec.Code)
	}

	missingReq := httptest.NewRequest(http.MethodGet, "/v1/recipes/nope", nil)
	missingRec := httptest.NewRecorder()
	mux.ServeHTTP(missingRec, missingReq)
	if missingRec.Code != http.StatusNotFound {
		t.Errorf("missing recipe status = %d, want 404", missingRec.Code)
	}
}

func TestHandleListRejectsBadParams(t *testing.T) {
	service := NewService(newMockStorage())

	req := httptest.NewRequest(http.MethodGet, "/v1/recipes?max_total_minutes=abc", nil)
	rec := httptest.NewRecorder()
	HandleList(service)(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad max_total_minutes status = %d, want 400", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/v1/recipes?goal=cardio", nil)
	rec = httptest.NewRecorder()
	HandleList(service)(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad goal status = %d, want 400", rec.Code)
	}
}
