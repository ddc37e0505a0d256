package storage

import (
	"context"

	"github.com/mealplanhq/mealplan-hub/internal/domain"
)

// Storage is the top-level persistence handle. Feature-specific storages
// (recipes, check-ins, wellness, progress) hang off the concrete
// implementations; the server selects them by backend type.
type Storage interface {
	// GetUserProfile returns the profile, or nil when the user has none
	GetUserProfile(ctx context.Context, userID string) (*domain.UserProfile, error)

	// UpsertUserProfile creates or replaces the profile
	UpsertUserProfile(ctx context.Context, p *domain.UserProfile) error

	// Close releases the backend (connection pool for Postgres)
	Close() error
}
