package dto

import (
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// CreateOrganizationRequest defines the data needed to onboard an organization.
// Server-owned fields (id, createdAt, isActive) cannot be supplied.
type CreateOrganizationRequest struct {
	Name      string            `json:"name" binding:"required"`
	Tier      string            `json:"tier" binding:"required,tier"`
	Features  map[string]bool   `json:"features"`
	Subdomain *string           `json:"subdomain"`
	Branding  map[string]string `json:"branding"`
}

// UpdateOrganizationRequest defines the data allowed for updating an
// organization. Pointers differentiate omitted fields from zero values.
type UpdateOrganizationRequest struct {
	Name      *string            `json:"name"`
	Tier      *string            `json:"tier" binding:"omitempty,tier"`
	Features  *map[string]bool   `json:"features"`
	Subdomain *string            `json:"subdomain"`
	Branding  *map[string]string `json:"branding"`
}

// OrganizationResponse is the API representation of an organization.
type OrganizationResponse struct {
	OrgID     string            `json:"orgID"`
	Name      string            `json:"name"`
	Tier      string            `json:"tier"`
	Features  map[string]bool   `json:"features"`
	Subdomain *string           `json:"subdomain"`
	Branding  map[string]string `json:"branding"`
	CreatedAt time.Time         `json:"createdAt"`
	IsActive  bool              `json:"isActive"`
}

// ToOrganizationResponse converts a domain.Organization to its response DTO.
func ToOrganizationResponse(org *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrgID:     org.OrgID,
		Name:      org.Name,
		Tier:      string(org.Tier),
		Features:  org.Features,
		Subdomain: org.Subdomain,
		Branding:  org.Branding,
		CreatedAt: org.CreatedAt,
		IsActive:  org.IsActive,
	}
}
