package repositories

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// WorkTypeRepository defines persistence operations for work type data.
type WorkTypeRepository interface {
	// SaveWorkType persists a new work type or updates an existing one.
	SaveWorkType(ctx context.Context, wt domain.WorkType) error

	// FindWorkTypeByID retrieves a work type by ID regardless of its active
	// flag, so soft-deleted entries remain retrievable.
	FindWorkTypeByID(ctx context.Context, workTypeID string) (*domain.WorkType, error)

	// ListWorkTypesByScope retrieves active work types in the scope, ordered
	// by sort order ascending with creation order breaking ties.
	ListWorkTypesByScope(ctx context.Context, scope domain.Scope) ([]domain.WorkType, error)

	// MarkWorkTypeInactive soft-deletes a work type. The row is kept and the
	// active flag flipped; subsequent listings exclude it.
	MarkWorkTypeInactive(ctx context.Context, workTypeID string) error
}
