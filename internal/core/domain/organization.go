package domain

import "time"

// OrganizationTier defines the subscription tier of an organization.
type OrganizationTier string

const (
	TierFree         OrganizationTier = "free"
	TierBasic        OrganizationTier = "basic"
	TierProfessional OrganizationTier = "professional"
	TierEnterprise   OrganizationTier = "enterprise"
)

// Valid reports whether the tier is one of the known values.
func (t OrganizationTier) Valid() bool {
	switch t {
	case TierFree, TierBasic, TierProfessional, TierEnterprise:
		return true
	}
	return false
}

// Organization is the tenant root. Organizations are soft-deactivated, never
// hard-deleted, because caseworkers, users, work types, sessions and
// transactions all reference them.
type Organization struct {
	OrgID     string            `json:"orgID"`     // Primary Key (UUID)
	Name      string            `json:"name"`      // Display name (Not Null)
	Tier      OrganizationTier  `json:"tier"`      // Subscription tier (Not Null)
	Features  map[string]bool   `json:"features"`  // Feature flags
	Subdomain *string           `json:"subdomain"` // Nullable white-label subdomain
	Branding  map[string]string `json:"branding"`  // White-label branding values
	CreatedAt time.Time         `json:"createdAt"` // Set by the store on creation
	IsActive  bool              `json:"isActive"`  // False once deactivated
}
