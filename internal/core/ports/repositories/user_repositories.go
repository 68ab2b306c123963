package repositories

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// UserRepository defines persistence operations for user data.
type UserRepository interface {
	// SaveUser persists a new user or updates an existing one.
	SaveUser(ctx context.Context, user domain.User) error

	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByDeviceID retrieves the free-tier user registered for a device.
	FindUserByDeviceID(ctx context.Context, deviceID string) (*domain.User, error)

	// ListUsersByScope retrieves users matching the tenant scope, newest first.
	ListUsersByScope(ctx context.Context, scope domain.Scope) ([]domain.User, error)
}
