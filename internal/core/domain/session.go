package domain

import "time"

// Session is a bounded collection period. Within a (userID, orgID) scope at
// most one session has IsActive=true at any time; the store enforces this in
// StartSessionExclusive. A session starts active and transitions exactly once,
// active -> closed. Closed is terminal.
type Session struct {
	SessionID  string     `json:"sessionID"`  // Primary Key (UUID)
	UserID     *string    `json:"userID"`     // Nullable owner scope
	OrgID      *string    `json:"orgID"`      // Nullable owner scope
	WorkTypeID *string    `json:"workTypeID"` // Nullable FK -> WorkType.workTypeID
	Location   string     `json:"location"`
	StartTime  time.Time  `json:"startTime"` // Set by the store on creation
	EndTime    *time.Time `json:"endTime"`   // Nil until the session is closed
	IsTest     bool       `json:"isTest"`    // Test sessions are excluded from aggregation
	IsActive   bool       `json:"isActive"`
}

// Closed reports whether the session has been stopped.
func (s Session) Closed() bool {
	return !s.IsActive && s.EndTime != nil
}
