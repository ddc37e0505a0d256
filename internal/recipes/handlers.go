package recipes

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// RecipesResponse is the response for listing recipes
type RecipesResponse struct {
	Recipes []domain.Recipe `json:"recipes"`
}

// HandleList handles GET /v1/recipes?meal_type=&goal=&max_total_minutes=
func HandleList(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := ListFilter{
			MealType: domain.MealType(r.URL.Query().Get("meal_type")),
			Goal:     domain.HealthGoal(r.URL.Query().Get("goal")),
		}
		if raw := r.URL.Query().Get("max_total_minutes"); raw != "" {
			minutes, err := strconv.Atoi(raw)
			if err != nil || minutes < 0 {
				writeError(w, http.StatusBadRequest, "invalid_max_total_minutes", "max_total_minutes must be a non-negative integer")
				return
			}
			filter.MaxTotalMinutes = minutes
		}

		recipes, err := service.ListRecipes(r.Context(), filter)
		if err != nil {
			if errors.Is(err, ErrInvalidMealType) {
				writeError(w, http.StatusBadRequest, "invalid_meal_type", err.Error())
				return
			}
			if errors.Is(err, ErrInvalidGoal) {
				writeError(w, http.StatusBadRequest, "invalid_goal", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(RecipesResponse{Recipes: recipes})
	}
}

// HandleGet handles GET /v1/recipes/{id}
func HandleGet(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		if id == "" {
			writeError(w, http.StatusBadRequest, "missing_id", "recipe id is required")
			return
		}

		recipe, err := service.GetRecipe(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrRecipeNotFound) {
				writeError(w, http.StatusNotFound, "recipe_not_found", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(recipe)
	}
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
