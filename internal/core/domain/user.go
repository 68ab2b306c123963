package domain

import "time"

// User is an end user collecting donations in the field. OrgID is nil for
// free-tier users running a single anonymous device; such users authenticate
// with a device identifier plus an optional PIN.
type User struct {
	UserID       string    `json:"userID"`       // Primary Key (UUID)
	OrgID        *string   `json:"orgID"`        // Nullable FK -> Organization.orgID; nil = free tier
	CaseworkerID *string   `json:"caseworkerID"` // Nullable FK -> Caseworker.caseworkerID
	Name         string    `json:"name"`
	PINHash      *string   `json:"pinHash"`  // bcrypt hash of the free-tier PIN; response DTOs never expose it
	DeviceID     *string   `json:"deviceID"` // Free-tier device identifier
	CreatedAt    time.Time `json:"createdAt"`
}
