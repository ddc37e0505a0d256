package profiles

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mealplanhq/mealplan-hub/internal/userctx"
)

// HandleGet handles GET /v1/profile
func HandleGet(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		profile, err := service.GetOrDefault(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// HandlePut handles PUT /v1/profile
func HandlePut(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}

		profile, err := service.Upsert(r.Context(), userID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidGoal):
				writeError(w, http.StatusBadRequest, "invalid_goal", err.Error())
			case errors.Is(err, ErrInvalidSkill):
				writeError(w, http.StatusBadRequest, "invalid_skill", err.Error())
			case errors.Is(err, ErrInvalidBudget):
				writeError(w, http.StatusBadRequest, "invalid_budget", err.Error())
			case errors.Is(err, ErrInvalidDiet):
				writeError(w, http.StatusBadRequest, "invalid_diet", err.Error())
			case errors.Is(err, ErrInvalidHousehold):
				writeError(w, http.StatusBadRequest, "invalid_household", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
	}
}

// HandleCompleteOnboarding handles POST /v1/profile/onboarding/complete
func HandleCompleteOnboarding(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		profile, err := service.CompleteOnboarding(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(profile)
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
