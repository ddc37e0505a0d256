package reports

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mealplanhq/mealplan-hub/internal/blob"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
	"github.com/mealplanhq/mealplan-hub/internal/userctx"
)

type mockCheckinsSource struct {
	checkins []domain.MealCheckIn
}

func (m *mockCheckinsSource) ListCheckinsInRange(ctx context.Context, userID, from, to string) ([]domain.MealCheckIn, error) {
	var out []domain.MealCheckIn
	for _, c := range m.checkins {
		if c.UserID == userID && c.Date >= from && c.Date <= to {
			out = append(out, c)
		}
	}
	return out, nil
}

type mockWellnessSource struct {
	entries []domain.WellnessCheckIn
}

func (m *mockWellnessSource) ListWellness(ctx context.Context, userID string) ([]domain.WellnessCheckIn, error) {
	return m.entries, nil
}

type mockProgressSource struct {
	progress domain.UserProgress
}

func (m *mockProgressSource) Get(ctx context.Context, userID string) (domain.UserProgress, error) {
	return m.progress, nil
}

func str(s string) *string { return &s }

func newTestService() *Service {
	checkins := &mockCheckinsSource{
		checkins: []domain.MealCheckIn{
			{
				ID:              uuid.New(),
				UserID:          "u1",
				Date:            "2024-01-10",
				MealType:        domain.MealBreakfast,
				Status:          domain.StatusFollowedPlan,
				PlannedRecipeID: str("b1"),
				CreatedAt:       time.Now(),
			},
			{
				ID:        uuid.New(),
				UserID:    "u1",
				Date:      "2024-01-11",
				MealType:  domain.MealLunch,
				Status:    domain.StatusSkipped,
				CreatedAt: time.Now(),
			},
		},
	}
	wellness := &mockWellnessSource{
		entries: []domain.WellnessCheckIn{
			{
				ID:          uuid.New(),
				UserID:      "u1",
				WeekNumber:  1,
				Date:        "2024-01-10",
				EnergyLevel: 4,
				OverallMood: 3,
			},
		},
	}
	progress := &mockProgressSource{
		progress: domain.UserProgress{
			UserID:           "u1",
			TotalHealthyDays: 2,
			TotalCheckIns:    2,
			CurrentStreak:    2,
			LongestStreak:    2,
		},
	}
	return NewService(checkins, wellness, progress, blob.NewLocalStore(), 90, 900)
}

func TestCreateReportCSV(t *testing.T) {
	service := newTestService()

	report, err := service.CreateReport(context.Background(), "u1", CreateReportRequest{
		From:   "2024-01-01",
		To:     "2024-01-31",
		Format: FormatCSV,
	})
	if err != nil {
		t.Fatal(err)
	}

	data, contentType, err := service.GetReportData(context.Background(), "u1", report.ObjectKey)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "text/csv" {
		t.Errorf("expected text/csv, got %s", contentType)
	}

	body := string(data)
	if !strings.Contains(body, "date,meal_type,status,planned_recipe_id,notes") {
		t.Errorf("missing CSV header: %q", body)
	}
	if !strings.Contains(body, "2024-01-10,breakfast,followed_plan,b1,") {
		t.Errorf("missing check-in row: %q", body)
	}
	if !strings.Contains(body, "2024-01-11,lunch,skipped,,") {
		t.Errorf("missing skipped row: %q", body)
	}
}

func TestCreateReportPDF(t *testing.T) {
	service := newTestService()

	report, err := service.CreateReport(context.Background(), "u1", CreateReportRequest{
		From:   "2024-01-01",
		To:     "2024-01-31",
		Format: FormatPDF,
	})
	if err != nil {
		t.Fatal(err)
	}

	data, contentType, err := service.GetReportData(context.Background(), "u1", report.ObjectKey)
	if err != nil {
		t.Fatal(err)
	}
	if contentType != "application/pdf" {
		t.Errorf("expected application/pdf, got %s", contentType)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("expected PDF magic bytes, got %q", data[:min(8, len(data))])
	}
}

func TestCreateReportValidation(t *testing.T) {
	service := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateReportRequest
		want error
	}{
		{"bad format", CreateReportRequest{From: "2024-01-01", To: "2024-01-02", Format: "xlsx"}, ErrInvalidFormat},
		{"bad date", CreateReportRequest{From: "not-a-date", To: "2024-01-02", Format: FormatCSV}, ErrInvalidDate},
		{"inverted range", CreateReportRequest{From: "2024-02-01", To: "2024-01-01", Format: FormatCSV}, ErrInvalidDateRange},
		{"too large", CreateReportRequest{From: "2023-01-01", To: "2024-01-01", Format: FormatCSV}, ErrRangeTooLarge},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := service.CreateReport(ctx, "u1", tc.req); err != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestGetReportDataForeignKey(t *testing.T) {
	service := newTestService()

	report, err := service.CreateReport(context.Background(), "u1", CreateReportRequest{
		From:   "2024-01-01",
		To:     "2024-01-31",
		Format: FormatCSV,
	})
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := service.GetReportData(context.Background(), "u2", report.ObjectKey); err != ErrReportNotFound {
		t.Fatalf("expected ErrReportNotFound for foreign key, got %v", err)
	}
}

func TestHandleCreateAndDownload(t *testing.T) {
	service := newTestService()
	handlers := NewHandlers(service)

	body, _ := json.Marshal(CreateReportRequest{From: "2024-01-01", To: "2024-01-31", Format: FormatCSV})
	req := httptest.NewRequest("POST", "/v1/reports", bytes.NewReader(body))
	req = req.WithContext(userctx.WithUserID(req.Context(), "u1"))
	w := httptest.NewRecorder()

	handlers.HandleCreate(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d. Body: %s", w.Code, w.Body.String())
	}

	var dto ReportDTO
	if err := json.NewDecoder(w.Body).Decode(&dto); err != nil {
		t.Fatal(err)
	}
	if dto.DownloadURL == "" {
		t.Error("expected a download URL")
	}
	if !strings.Contains(dto.DownloadURL, "/v1/reports/download?key=") {
		t.Errorf("expected local download URL, got %s", dto.DownloadURL)
	}

	dlReq := httptest.NewRequest("GET", "/v1/reports/download?key="+dto.ObjectKey, nil)
	dlReq = dlReq.WithContext(userctx.WithUserID(dlReq.Context(), "u1"))
	dlW := httptest.NewRecorder()

	handlers.HandleDownload(dlW, dlReq)

	if dlW.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", dlW.Code)
	}
	if ct := dlW.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("expected text/csv, got %s", ct)
	}
}

func TestHandleCreateUnauthorized(t *testing.T) {
	handlers := NewHandlers(newTestService())

	body, _ := json.Marshal(CreateReportRequest{From: "2024-01-01", To: "2024-01-31", Format: FormatCSV})
	req := httptest.NewRequest("POST", "/v1/reports", bytes.NewReader(body))
	w := httptest.NewRecorder()

	handlers.HandleCreate(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
