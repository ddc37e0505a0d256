package checkins

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
	"github.com/mealplanhq/mealplan-hub/internal/userctx"
)

// HandleCreate handles POST /v1/checkins
func HandleCreate(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		var req CreateCheckInRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_json", "invalid request body")
			return
		}

		checkin, err := service.Create(r.Context(), userID, req)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidDate):
				writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
			case errors.Is(err, ErrInvalidMealType):
				writeError(w, http.StatusBadRequest, "invalid_meal_type", err.Error())
			case errors.Is(err, ErrInvalidStatus):
				writeError(w, http.StatusBadRequest, "invalid_status", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(checkin)
	}
}

// HandleListByDate handles GET /v1/checkins?date=
func HandleListByDate(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		date := r.URL.Query().Get("date")
		if date == "" {
			writeError(w, http.StatusBadRequest, "missing_date", "date is required")
			return
		}

		checkins, err := service.ListByDate(r.Context(), userID, date)
		if err != nil {
			if errors.Is(err, ErrInvalidDate) {
				writeError(w, http.StatusBadRequest, "invalid_date", "date must be YYYY-MM-DD")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}
		if checkins == nil {
			checkins = []domain.MealCheckIn{}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CheckInsResponse{CheckIns: checkins})
	}
}

// HandleWeek handles GET /v1/checkins/week?start=
func HandleWeek(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		start := r.URL.Query().Get("start")
		if start == "" {
			writeError(w, http.StatusBadRequest, "missing_start", "start is required")
			return
		}

		week, err := service.Week(r.Context(), userID, start)
		if err != nil {
			if errors.Is(err, ErrInvalidDate) {
				writeError(w, http.StatusBadRequest, "invalid_date", "start must be YYYY-MM-DD")
				return
			}
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(week)
	}
}

// HandleStats handles GET /v1/checkins/stats
func HandleStats(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		stats, err := service.Stats(r.Context(), userID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(stats)
	}
}

// HandlePhotoUpload handles POST /v1/checkins/photo?checkin_id=
func HandlePhotoUpload(service *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userctx.GetUserID(r.Context())
		if !ok || strings.TrimSpace(userID) == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Unauthorized")
			return
		}

		checkinID, err := uuid.Parse(r.URL.Query().Get("checkin_id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_checkin_id", "checkin_id must be a valid id")
			return
		}

		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			contentType = "application/octet-stream"
		}

		resp, err := service.AttachPhoto(r.Context(), userID, checkinID, r.Body, contentType)
		if err != nil {
			switch {
			case errors.Is(err, ErrCheckinNotFound):
				writeError(w, http.StatusNotFound, "checkin_not_found", err.Error())
			case errors.Is(err, ErrPhotoTooLarge):
				writeError(w, http.StatusRequestEntityTooLarge, "photo_too_large", err.Error())
			default:
				writeError(w, http.StatusInternalServerError, "internal_error", err.Error())
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
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
