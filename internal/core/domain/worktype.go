package domain

import "time"

// WorkType labels a category of income ("Donations", "Sales", ...). Exactly
// one of UserID/OrgID is the owning scope in practice; both are nullable in
// the schema. Work types are never hard-deleted: delete flips IsActive and
// listings exclude inactive entries, but FindWorkTypeByID still returns them.
type WorkType struct {
	WorkTypeID string    `json:"workTypeID"` // Primary Key (UUID)
	UserID     *string   `json:"userID"`     // Nullable owner scope
	OrgID      *string   `json:"orgID"`      // Nullable owner scope
	Name       string    `json:"name"`       // Not Null
	Icon       *string   `json:"icon"`
	Color      *string   `json:"color"`
	IsDefault  bool      `json:"isDefault"` // True for seeded templates
	SortOrder  int       `json:"sortOrder"` // Listing order, ascending
	IsActive   bool      `json:"isActive"`  // Soft-delete flag
	CreatedAt  time.Time `json:"createdAt"`
}
