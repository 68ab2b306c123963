package services

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/fieldcollect/field_collections_app/internal/dto"
)

// OrganizationSvcFacade defines the operations for onboarding and managing
// organizations.
type OrganizationSvcFacade interface {
	// CreateOrganization onboards a new organization.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest) (*domain.Organization, error)

	// GetOrganizationByID retrieves an organization by its ID.
	GetOrganizationByID(ctx context.Context, orgID string) (*domain.Organization, error)

	// GetOrganizationBySubdomain retrieves an organization by its white-label
	// subdomain.
	GetOrganizationBySubdomain(ctx context.Context, subdomain string) (*domain.Organization, error)

	// ListOrganizations retrieves all organizations.
	ListOrganizations(ctx context.Context) ([]domain.Organization, error)

	// UpdateOrganization applies a partial update to an organization.
	UpdateOrganization(ctx context.Context, orgID string, req dto.UpdateOrganizationRequest) (*domain.Organization, error)

	// DeactivateOrganization soft-deactivates an organization. Organizations
	// are never hard-deleted.
	DeactivateOrganization(ctx context.Context, orgID string) error
}
