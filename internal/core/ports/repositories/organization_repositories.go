package repositories

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// OrganizationReader defines read operations for organization data.
type OrganizationReader interface {
	// FindOrganizationByID retrieves a specific organization by its ID.
	FindOrganizationByID(ctx context.Context, orgID string) (*domain.Organization, error)

	// FindOrganizationBySubdomain retrieves the organization claiming the
	// given white-label subdomain.
	FindOrganizationBySubdomain(ctx context.Context, subdomain string) (*domain.Organization, error)

	// ListOrganizations retrieves all organizations, newest first.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)
}

// OrganizationWriter defines write operations for organization data.
type OrganizationWriter interface {
	// SaveOrganization persists a new organization or updates an existing one.
	SaveOrganization(ctx context.Context, org domain.Organization) error
}

// OrganizationRepository combines all organization repository interfaces.
type OrganizationRepository interface {
	OrganizationReader
	OrganizationWriter
}
