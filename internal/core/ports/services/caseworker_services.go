package services

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/fieldcollect/field_collections_app/internal/dto"
)

// CaseworkerSvcFacade defines the operations for managing and authenticating
// caseworkers.
type CaseworkerSvcFacade interface {
	// CreateCaseworker creates a caseworker under an organization.
	CreateCaseworker(ctx context.Context, req dto.CreateCaseworkerRequest) (*domain.Caseworker, error)

	// GetCaseworkerByID retrieves a caseworker by their ID.
	GetCaseworkerByID(ctx context.Context, caseworkerID string) (*domain.Caseworker, error)

	// ListCaseworkersByOrg retrieves the active caseworkers of an organization.
	ListCaseworkersByOrg(ctx context.Context, orgID string) ([]domain.Caseworker, error)

	// Authenticate verifies caseworker credentials. Unknown email and wrong
	// password are both reported as apperrors.ErrNotFound so credentials
	// cannot be enumerated.
	Authenticate(ctx context.Context, orgID, email, password string) (*domain.Caseworker, error)
}
