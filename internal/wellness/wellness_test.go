package wellness

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
	"github.com/mealplanhq/mealplan-hub/internal/userctx"
)

// mockStorage implements Storage for testing
type mockStorage struct {
	entries map[string]map[int]domain.WellnessCheckIn
}

func newMockStorage() *mockStorage {
	return &mockStorage{entries: make(map[string]map[int]domain.WellnessCheckIn)}
}

func (m *mockStorage) UpsertWellness(ctx context.Context, c *domain.WellnessCheckIn) error {
	weeks, exists := m.entries[c.UserID]
	if !exists {
		weeks = make(map[int]domain.WellnessCheckIn)
		m.entries[c.UserID] = weeks
	}
	weeks[c.WeekNumber] = *c
	return nil
}

func (m *mockStorage) ListWellness(ctx context.Context, userID string) ([]domain.WellnessCheckIn, error) {
	var result []domain.WellnessCheckIn
	for _, c := range m.entries[userID] {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].WeekNumber < result[j].WeekNumber })
	return result, nil
}

func validSubmit(week int) SubmitRequest {
	return SubmitRequest{
		WeekNumber:       week,
		Date:             "2024-01-10",
		EnergyLevel:      4,
		DigestionQuality: domain.TrendBetter,
		PostMealFeeling:  domain.FeelingLightSatisfied,
		SleepQuality:     3,
		OverallMood:      5,
	}
}

func TestSubmitReplacesSameWeek(t *testing.T) {
	storage := newMockStorage()
	service := NewService(storage)

	if _, err := service.Submit(context.Background(), "u1", validSubmit(1)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	updated := validSubmit(1)
	updated.EnergyLevel = 2
	if _, err := service.Submit(context.Background(), "u1", updated); err != nil {
		t.Fatalf("Submit update: %v", err)
	}

	entries, _ := service.List(context.Background(), "u1")
	if len(entries) != 1 {
		t.Fatalf("got %d entries after resubmit, want 1", len(entries))
	}
	if entries[0].EnergyLevel != 2 {
		t.Errorf("energy=%d, want the replacement value 2", entries[0].EnergyLevel)
	}
}

func TestSubmitValidation(t *testing.T) {
	service := NewService(newMockStorage())

	cases := []struct {
		name    string
		mutate  func(*SubmitRequest)
		wantErr error
	}{
		{"week zero", func(r *SubmitRequest) { r.WeekNumber = 0 }, ErrInvalidWeek},
		{"bad date", func(r *SubmitRequest) { r.Date = "next tuesday" }, ErrInvalidDate},
		{"energy too high", func(r *SubmitRequest) { r.EnergyLevel = 6 }, ErrInvalidScore},
		{"mood too low", func(r *SubmitRequest) { r.OverallMood = 0 }, ErrInvalidScore},
		{"bad trend", func(r *SubmitRequest) { r.DigestionQuality = "meh" }, ErrInvalidTrend},
		{"bad feeling", func(r *SubmitRequest) { r.PostMealFeeling = "stuffed" }, ErrInvalidFeeling},
	}
	for _, tc := range cases {
		req := validSubmit(1)
		tc.mutate(&req)
		if _, err := service.Submit(context.Background(), "u1", req); err != tc.wantErr {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.wantErr)
		}
	}
}

func TestSummarize(t *testing.T) {
	service := NewService(newMockStorage())

	// empty history: averages stay nil
	summary, err := service.Summarize(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Summarize empty: %v", err)
	}
	if summary.Entries != 0 || summary.AverageEnergy != nil || summary.AverageMood != nil || summary.Latest != nil {
		t.Errorf("empty summary should be all-nil: %+v", summary)
	}

	week1 := validSubmit(1)
	week1.EnergyLevel = 2
	week1.OverallMood = 3
	week2 := validSubmit(2)
	week2.EnergyLevel = 4
	week2.OverallMood = 5
	for _, req := range []SubmitRequest{week1, week2} {
		if _, err := service.Submit(context.Background(), "u1", req); err != nil {
			t.Fatal(err)
		}
	}

	summary, err = service.Summarize(context.Background(), "u1")
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if summary.Entries != 2 {
		t.Errorf("entries=%d, want 2", summary.Entries)
	}
	if summary.AverageEnergy == nil || *summary.AverageEnergy != 3 {
		t.Errorf("average energy = %v, want 3", summary.AverageEnergy)
	}
	if summary.AverageMood == nil || *summary.AverageMood != 4 {
		t.Errorf("average mood = %v, want 4", summary.AverageMood)
	}
	if summary.Latest == nil || summary.Latest.WeekNumber != 2 {
		t.Errorf("latest should be week 2: %+v", summary.Latest)
	}
}

func TestHandleSubmitAndSummary(t *testing.T) {
	service := NewService(newMockStorage())

	body, _ := json.Marshal(validSubmit(1))
	req := httptest.NewRequest(http.MethodPut, "/v1/wellness", bytes.NewReader(body))
	req = req.WithContext(userctx.WithUserID(req.Context(), "u1"))
	rec := httptest.NewRecorder()
	HandleSubmit(service)(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("submit status = %d: %s", rec.Code, rec.Body.String())
	}

	sumReq := httptest.NewRequest(http.MethodGet, "/v1/wellness/summary", nil)
	sumReq = sumReq.WithContext(userctx.WithUserID(sumReq.Context(), "u1"))
	sumRec := httptest.NewRecorder()
	HandleSummary(service)(sumRec, sumReq)
	if sumRec.Code != http.StatusOK {
		t.Fatalf("summary status = %d", sumRec.Code)
	}
	var summary Summary
	if err := json.NewDecoder(sumRec.Body).Decode(&summary); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if summary.Entries != 1 {
		t.Errorf("entries=%d, want 1", summary.Entries)
	}

	badBody, _ := json.Marshal(SubmitRequest{WeekNumber: 1, Date: "2024-01-10", EnergyLevel: 9})
	badReq := httptest.NewRequest(http.MethodPut, "/v1/wellness", bytes.NewReader(badBody))
	badReq = badReq.WithContext(userctx.WithUserID(badReq.Context(), "u1"))
	badRec := httptest.NewRecorder()
	HandleSubmit(service)(badRec, badReq)
	if badRec.Code != http.StatusBadRequest {
		t.Errorf("invalid submit status = %d, want 400", badRec.Code)
	}
}
