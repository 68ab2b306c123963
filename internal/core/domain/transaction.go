package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction records a donation or a
// product sale.
type TransactionType string

const (
	TypeDonation TransactionType = "donation"
	TypeProduct  TransactionType = "product"
)

// Valid reports whether the type is one of the known values.
func (t TransactionType) Valid() bool {
	return t == TypeDonation || t == TypeProduct
}

// Transaction is an immutable monetary event: once created it is never
// updated or deleted. A nil SessionID marks a quick transaction recorded
// outside any session; WorkTypeID is denormalized from the owning session for
// fast filtering.
// Note: Amount uses github.com/shopspring/decimal with fixed 2-decimal precision.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	SessionID     *string         `json:"sessionID"`     // Nullable FK -> Session.sessionID; nil = quick transaction
	UserID        *string         `json:"userID"`        // Nullable owner scope
	OrgID         *string         `json:"orgID"`         // Nullable owner scope
	WorkTypeID    *string         `json:"workTypeID"`    // Denormalized from the session
	Timestamp     time.Time       `json:"timestamp"`     // Set by the store on creation, never mutated
	Amount        decimal.Decimal `json:"amount"`        // Positive, at most 2 decimal places
	Type          TransactionType `json:"type"`          // donation or product
	Note          *string         `json:"note"`
	ProductID     *string         `json:"productID"`
	Pennies       int             `json:"pennies"` // Loose-change count, defaults to 0
}
