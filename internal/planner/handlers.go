package planner

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
	"github.com/mealplanhq/mealplan-hub/internal/userctx"
)

// GeneratePlanRequest is the request body for generating a weekly plan
type GeneratePlanRequest struct {
	WeekStartDate string `json:"week_start_date,omitempty"`
}

// SwapRequest is the request body for finding an easier alternative
type SwapRequest struct {
	RecipeID string `json:"recipe_id"`
}

// SwapResponse wraps the chosen alternative
type SwapResponse struct {
	Alternative domain.Recipe `json:"alternative"`
}

// HandleGeneratePlan handles POST /v1/plan/weekly
func HandleGeneratePlan(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		var req GeneratePlanRequest
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
				return
			}
		}

		plan, err := service.GenerateWeeklyPlan(r.Context(), userID, req.WeekStartDate)
		if err != nil {
			if errors.Is(err, ErrInvalidDate) {
				writeError(w, http.StatusBadRequest, "invalid_date", "week_start_date must be YYYY-MM-DD")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(plan)
	}
}

// HandleSwap handles POST /v1/plan/swap
func HandleSwap(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		var req SwapRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}
		if req.RecipeID == "" {
			writeError(w, http.StatusBadRequest, "missing_recipe_id", "recipe_id is required")
			return
		}

		alternative, err := service.EasierAlternative(r.Context(), userID, req.RecipeID)
		if err != nil {
			if errors.Is(err, ErrRecipeNotFound) {
				writeError(w, http.StatusNotFound, "recipe_not_found", err.Error())
				return
			}
			if errors.Is(err, ErrNoAlternative) {
				writeError(w, http.StatusNotFound, "no_easier_alternative", err.Error())
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SwapResponse{Alternative: *alternative})
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
