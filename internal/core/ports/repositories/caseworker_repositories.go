package repositories

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// CaseworkerRepository defines persistence operations for caseworker data.
type CaseworkerRepository interface {
	// SaveCaseworker persists a new caseworker or updates an existing one.
	SaveCaseworker(ctx context.Context, cw domain.Caseworker) error

	// FindCaseworkerByID retrieves a specific caseworker by their ID.
	FindCaseworkerByID(ctx context.Context, caseworkerID string) (*domain.Caseworker, error)

	// FindCaseworkerByEmail retrieves a caseworker by organization and email.
	FindCaseworkerByEmail(ctx context.Context, orgID, email string) (*domain.Caseworker, error)

	// ListCaseworkersByOrg retrieves the active caseworkers of an organization.
	ListCaseworkersByOrg(ctx context.Context, orgID string) ([]domain.Caseworker, error)
}
