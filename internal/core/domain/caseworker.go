package domain

import "time"

// CaseworkerRole defines the possible roles a caseworker can have within an
// organization.
type CaseworkerRole string

const (
	RoleAdmin      CaseworkerRole = "admin"
	RoleCaseworker CaseworkerRole = "caseworker"
	RoleReadOnly   CaseworkerRole = "readonly"
)

// Valid reports whether the role is one of the known values.
func (r CaseworkerRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleCaseworker, RoleReadOnly:
		return true
	}
	return false
}

// Caseworker is an organization staff member. A caseworker always belongs to
// exactly one organization and is cascade-deleted with it.
type Caseworker struct {
	CaseworkerID string         `json:"caseworkerID"` // Primary Key (UUID)
	OrgID        string         `json:"orgID"`        // FK -> Organization.orgID (Not Null)
	Email        string         `json:"email"`        // Unique within the organization
	Name         string         `json:"name"`         // Display name
	PasswordHash string         `json:"passwordHash"` // bcrypt hash; response DTOs never expose it
	Role         CaseworkerRole `json:"role"`         // admin, caseworker or readonly
	IsActive     bool           `json:"isActive"`
	CreatedAt    time.Time      `json:"createdAt"`
}
