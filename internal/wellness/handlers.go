package wellness

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
	"github.com/mealplanhq/mealplan-hub/internal/userctx"
)

// WellnessResponse is the response for listing wellness check-ins
type WellnessResponse struct {
	CheckIns []domain.WellnessCheckIn `json:"check_ins"`
}

// HandleSubmit handles PUT /v1/wellness
func HandleSubmit(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		var req SubmitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}

		checkin, err := service.Submit(r.Context(), userID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidWeek):
				writeError(w, http.StatusBadRequest, "invalid_week", err.Error())
			case errors.Is(err, ErrInvalidDate):
				writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			case errors.Is(err, ErrInvalidScore):
				writeError(w, http.StatusBadRequest, "invalid_score", err.Error())
			case errors.Is(err, ErrInvalidTrend):
				writeError(w, http.StatusBadRequest, "invalid_trend", err.Error())
			case errors.Is(err, ErrInvalidFeeling):
				writeError(w, http.StatusBadRequest, "invalid_feeling", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(checkin)
	}
}

// HandleList handles GET /v1/wellness
func HandleList(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		checkins, err := service.List(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		if checkins == nil {
			checkins = []domain.WellnessCheckIn{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(WellnessResponse{CheckIns: checkins})
	}
}

// HandleSummary handles GET /v1/wellness/summary
func HandleSummary(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		summary, err := service.Summarize(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(summary)
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
