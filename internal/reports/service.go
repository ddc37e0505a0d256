package reports

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mealplanhq/mealplan-hub/internal/blob"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

var (
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidDate      = errors.New("invalid date format")
	ErrInvalidDateRange = errors.New("from date must be before to date")
	ErrRangeTooLarge    = errors.New("date range too large")
	ErrReportNotFound   = errors.New("report not found")
)

// CheckinsSource provides meal check-ins for a date range
type CheckinsSource interface {
	ListCheckinsInRange(ctx context.Context, userID, from, to string) ([]domain.MealCheckIn, error)
}

// WellnessSource provides the weekly wellness ledger
type WellnessSource interface {
	ListWellness(ctx context.Context, userID string) ([]domain.WellnessCheckIn, error)
}

// ProgressSource provides the cumulative progress counters
type ProgressSource interface {
	Get(ctx context.Context, userID string) (domain.UserProgress, error)
}

// Service generates progress reports and stores them in blob storage.
// Reports are stateless: the object key is the only handle.
type Service struct {
	checkins     CheckinsSource
	wellness     WellnessSource
	progress     ProgressSource
	generator    *Generator
	blobStore    blob.Store
	maxRangeDays int
	presignTTL   int
	now          func() time.Time
}

// NewService creates a new reports service
func NewService(checkins CheckinsSource, wellness WellnessSource, progress ProgressSource, blobStore blob.Store, maxRangeDays, presignTTL int) *Service {
	return &Service{
		checkins:     checkins,
		wellness:     wellness,
		progress:     progress,
		generator:    NewGenerator(),
		blobStore:    blobStore,
		maxRangeDays: maxRangeDays,
		presignTTL:   presignTTL,
		now:          time.Now,
	}
}

// CreateReport generates a report for the range and uploads it
func (s *Service) CreateReport(ctx context.Context, userID string, req CreateReportRequest) (*Report, error) {
	if req.Format != FormatPDF && req.Format != FormatCSV {
		return nil, ErrInvalidFormat
	}

	fromDate, err := time.Parse(domain.DateLayout, req.From)
	if err != nil {
		return nil, ErrInvalidDate
	}
	toDate, err := time.Parse(domain.DateLayout, req.To)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if fromDate.After(toDate) {
		return nil, ErrInvalidDateRange
	}
	if int(toDate.Sub(fromDate).Hours()/24) > s.maxRangeDays {
		return nil, ErrRangeTooLarge
	}

	checkins, err := s.checkins.ListCheckinsInRange(ctx, userID, req.From, req.To)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch checkins: %w", err)
	}

	allWellness, err := s.wellness.ListWellness(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wellness entries: %w", err)
	}
	wellness := filterWellnessByDate(allWellness, req.From, req.To)

	progress, err := s.progress.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch progress: %w", err)
	}

	data, err := s.generator.Generate(req, checkins, wellness, progress)
	if err != nil {
		return nil, fmt.Errorf("failed to generate report: %w", err)
	}

	objectKey := fmt.Sprintf("reports/%s/%s_%s_%s.%s", userID, req.From, req.To, uuid.New().String(), req.Format)
	if _, err := s.blobStore.PutObject(ctx, objectKey, data, contentTypeFor(req.Format)); err != nil {
		return nil, fmt.Errorf("failed to upload report: %w", err)
	}

	return &Report{
		ObjectKey: objectKey,
		Format:    req.Format,
		FromDate:  req.From,
		ToDate:    req.To,
		SizeBytes: int64(len(data)),
		CreatedAt: s.now(),
	}, nil
}

// DownloadURL returns a presigned URL for the report, or "" when the store
// cannot presign and the caller should serve the bytes itself.
func (s *Service) DownloadURL(ctx context.Context, objectKey string) (string, error) {
	return s.blobStore.PresignGet(ctx, objectKey, s.presignTTL)
}

// GetReportData fetches the raw report bytes. The key must belong to the
// user; anything else reads as not found.
func (s *Service) GetReportData(ctx context.Context, userID, objectKey string) ([]byte, string, error) {
	if !strings.HasPrefix(objectKey, "reports/"+userID+"/") {
		return nil, "", ErrReportNotFound
	}

	data, err := s.blobStore.GetObject(ctx, objectKey)
	if err != nil {
		return nil, "", ErrReportNotFound
	}

	format := FormatPDF
	if strings.HasSuffix(objectKey, "."+FormatCSV) {
		format = FormatCSV
	}
	return data, contentTypeFor(format), nil
}

func contentTypeFor(format string) string {
	if format == FormatCSV {
		return "text/csv"
	}
	return "application/pdf"
}

func filterWellnessByDate(entries []domain.WellnessCheckIn, from, to string) []domain.WellnessCheckIn {
	out := make([]domain.WellnessCheckIn, 0, len(entries))
	for _, e := range entries {
		if e.Date >= from && e.Date <= to {
			out = append(out, e)
		}
	}
	return out
}
