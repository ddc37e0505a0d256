package checkins

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/mealplanhq/mealplan-hub/internal/blob"
	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

var (
	ErrCheckinNotFound = errors.New("checkin not found")
	ErrInvalidMealType = errors.New("invalid meal type")
	ErrInvalidStatus   = errors.New("invalid checkin status")
	ErrInvalidDate     = errors.New("invalid date format")
	ErrPhotoTooLarge   = errors.New("photo exceeds size limit")
)

// MaxPhotoBytes caps meal photo uploads.
const MaxPhotoBytes = 10 << 20

const photoURLTTLSeconds = 3600

// Storage defines the interface for meal check-in persistence
type Storage interface {
	// InsertCheckin stores a check-in and reports whether it is the first
	// one for its (user, date). The answer must come from the same atomic
	// step as the insert.
	InsertCheckin(ctx context.Context, c *domain.MealCheckIn) (firstOfDay bool, err error)

	// ListCheckinsByDate returns a user's check-ins for one calendar day
	ListCheckinsByDate(ctx context.Context, userID, date string) ([]domain.MealCheckIn, error)

	// ListCheckinsInRange returns check-ins with from <= date <= to
	ListCheckinsInRange(ctx context.Context, userID, from, to string) ([]domain.MealCheckIn, error)

	// CountDistinctDates returns the number of distinct days with at least
	// one check-in
	CountDistinctDates(ctx context.Context, userID string) (int, error)

	// CountCheckins returns the user's total number of check-ins
	CountCheckins(ctx context.Context, userID string) (int, error)

	// SetCheckinPhoto attaches a stored photo key to a check-in
	SetCheckinPhoto(ctx context.Context, userID string, id uuid.UUID, photoKey string) error
}

// ProgressTracker receives the events a check-in generates
type ProgressTracker interface {
	RecordCheckIn(ctx context.Context, userID string, firstOfDay bool) (domain.UserProgress, error)
	RecordRecipeCompleted(ctx context.Context, userID string) (domain.UserProgress, error)
}

// Service handles meal check-in business logic
type Service struct {
	storage Storage
	tracker ProgressTracker
	photos  blob.Store
	now     func() time.Time
}

// NewService creates a new check-in service. photos may be nil when photo
// storage is not configured.
func NewService(storage Storage, tracker ProgressTracker, photos blob.Store) *Service {
	return &Service{
		storage: storage,
		tracker: tracker,
		photos:  photos,
		now:     time.Now,
	}
}

// Create validates and stores a meal check-in, then feeds the progress
// tracker: every check-in counts toward the total, the first of a day also
// counts as a healthy day, and following the plan with a known recipe marks
// that recipe completed.
func (s *Service) Create(ctx context.Context, userID string, req CreateCheckInRequest) (*domain.MealCheckIn, error) {
	if err := validateDate(req.Date); err != nil {
		return nil, err
	}
	if !req.MealType.Valid() {
		return nil, ErrInvalidMealType
	}
	if !req.Status.Valid() {
		return nil, ErrInvalidStatus
	}

	checkin := &domain.MealCheckIn{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            req.Date,
		MealType:        req.MealType,
		Status:          req.Status,
		PlannedRecipeID: req.PlannedRecipeID,
		Notes:           req.Notes,
		CreatedAt:       s.now(),
	}

	firstOfDay, err := s.storage.InsertCheckin(ctx, checkin)
	if err != nil {
		return nil, fmt.Errorf("insert checkin: %w", err)
	}

	if _, err := s.tracker.RecordCheckIn(ctx, userID, firstOfDay); err != nil {
		return nil, fmt.Errorf("record checkin progress: %w", err)
	}
	if req.Status == domain.StatusFollowedPlan && req.PlannedRecipeID != nil && *req.PlannedRecipeID != "" {
		if _, err := s.tracker.RecordRecipeCompleted(ctx, userID); err != nil {
			return nil, fmt.Errorf("record recipe completion: %w", err)
		}
	}
	return checkin, nil
}

// ListByDate returns the user's check-ins for one day.
func (s *Service) ListByDate(ctx context.Context, userID, date string) ([]domain.MealCheckIn, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	return s.storage.ListCheckinsByDate(ctx, userID, date)
}

// Week returns seven days of check-ins starting at start, one entry per
// date even when the day is empty.
func (s *Service) Week(ctx context.Context, userID, start string) (*WeekResponse, error) {
	if err := validateDate(start); err != nil {
		return nil, err
	}
	startDay, _ := time.Parse(domain.DateLayout, start)
	end := startDay.AddDate(0, 0, 6).Format(domain.DateLayout)

	checkins, err := s.storage.ListCheckinsInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	days := make(map[string][]domain.MealCheckIn, 7)
	for i := 0; i < 7; i++ {
		days[startDay.AddDate(0, 0, i).Format(domain.DateLayout)] = []domain.MealCheckIn{}
	}
	for _, c := range checkins {
		days[c.Date] = append(days[c.Date], c)
	}
	return &WeekResponse{StartDate: start, Days: days}, nil
}

// Stats summarizes the ledger: total check-ins, distinct days with at
// least one entry, and whether anything was logged today.
func (s *Service) Stats(ctx context.Context, userID string) (*StatsResponse, error) {
	total, err := s.storage.CountCheckins(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count checkins: %w", err)
	}
	days, err := s.storage.CountDistinctDates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count distinct dates: %w", err)
	}
	today, err := s.HasCheckedIn(ctx, userID, s.now().Format(domain.DateLayout))
	if err != nil {
		return nil, err
	}
	return &StatsResponse{
		TotalCheckIns:  total,
		DaysLogged:     days,
		CheckedInToday: today,
	}, nil
}

// HasCheckedIn reports whether the user logged anything on the given day.
func (s *Service) HasCheckedIn(ctx context.Context, userID, date string) (bool, error) {
	checkins, err := s.ListByDate(ctx, userID, date)
	if err != nil {
		return false, err
	}
	return len(checkins) > 0, nil
}

// AttachPhoto stores a meal photo and links it to the check-in. Returns the
// stored key and, when the store supports it, a presigned URL.
func (s *Service) AttachPhoto(ctx context.Context, userID string, checkinID uuid.UUID, body io.Reader, contentType string) (*PhotoUploadResponse, error) {
	if s.photos == nil {
		return nil, errors.New("photo storage not configured")
	}

	data, err := io.ReadAll(io.LimitReader(body, MaxPhotoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}
	if len(data) > MaxPhotoBytes {
		return nil, ErrPhotoTooLarge
	}

	key := fmt.Sprintf("checkins/%s/%s", userID, checkinID)
	if _, err := s.photos.PutObject(ctx, key, data, contentType); err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}
	if err := s.storage.SetCheckinPhoto(ctx, userID, checkinID, key); err != nil {
		return nil, err
	}

	resp := &PhotoUploadResponse{PhotoKey: key}
	url, err := s.photos.PresignGet(ctx, key, photoURLTTLSeconds)
	if err != nil {
		log.Printf("checkins: presign photo %s: %v", key, err)
	} else {
		resp.URL = url
	}
	return resp, nil
}

func validateDate(date string) error {
	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return ErrInvalidDate
	}
	return nil
}
