package services

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/fieldcollect/field_collections_app/internal/dto"
)

// WorkTypeSvcFacade defines the operations for managing work types.
type WorkTypeSvcFacade interface {
	// CreateWorkType creates a work type owned by exactly one of user/org.
	CreateWorkType(ctx context.Context, req dto.CreateWorkTypeRequest) (*domain.WorkType, error)

	// GetWorkTypeByID retrieves a work type by ID, including soft-deleted ones.
	GetWorkTypeByID(ctx context.Context, workTypeID string) (*domain.WorkType, error)

	// ListWorkTypesByScope retrieves active work types in the scope, sorted.
	ListWorkTypesByScope(ctx context.Context, scope domain.Scope) ([]domain.WorkType, error)

	// UpdateWorkType applies a partial update to a work type.
	UpdateWorkType(ctx context.Context, workTypeID string, req dto.UpdateWorkTypeRequest) (*domain.WorkType, error)

	// DeleteWorkType soft-deletes a work type; it stays retrievable by ID.
	DeleteWorkType(ctx context.Context, workTypeID string) error
}

// SeedSvcFacade defines the idempotent default work type seeding utility.
type SeedSvcFacade interface {
	// EnsureDefaultWorkTypes creates the default work type templates for the
	// owner scope when none exist yet. Safe to call on every login.
	EnsureDefaultWorkTypes(ctx context.Context, userID, orgID *string) error
}
