package services

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/fieldcollect/field_collections_app/internal/dto"
)

// UserSvcFacade defines the operations for managing end users.
type UserSvcFacade interface {
	// CreateUser creates a new end user, organization-bound or free-tier.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// UpdateUser applies a partial update to a user.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest) (*domain.User, error)

	// ListUsersByScope retrieves users matching the tenant scope.
	ListUsersByScope(ctx context.Context, scope domain.Scope) ([]domain.User, error)

	// DeviceLogin resolves a free-tier user by device ID, verifying the PIN
	// when one is registered.
	DeviceLogin(ctx context.Context, deviceID string, pin *string) (*domain.User, error)
}
