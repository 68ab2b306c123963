package dto

import (
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordTransactionRequest defines the data needed to record a transaction.
// Amount arrives as a string so malformed values surface as validation errors
// instead of float coercion; the transaction id and timestamp are server-owned.
type RecordTransactionRequest struct {
	SessionID *string `json:"sessionID"`
	UserID    *string `json:"userID"`
	OrgID     *string `json:"orgID"`
	Amount    string  `json:"amount" binding:"required"`
	Type      string  `json:"type" binding:"required,txntype"`
	Note      *string `json:"note"`
	ProductID *string `json:"productID"`
	Pennies   *int    `json:"pennies" binding:"omitempty,min=0"`
}

// TransactionResponse is the API representation of a transaction.
type TransactionResponse struct {
	TransactionID string          `json:"transactionID"`
	SessionID     *string         `json:"sessionID"`
	UserID        *string         `json:"userID"`
	OrgID         *string         `json:"orgID"`
	WorkTypeID    *string         `json:"workTypeID"`
	Timestamp     time.Time       `json:"timestamp"`
	Amount        decimal.Decimal `json:"amount"`
	Type          string          `json:"type"`
	Note          *string         `json:"note"`
	ProductID     *string         `json:"productID"`
	Pennies       int             `json:"pennies"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: txn.TransactionID,
		SessionID:     txn.SessionID,
		UserID:        txn.UserID,
		OrgID:         txn.OrgID,
		WorkTypeID:    txn.WorkTypeID,
		Timestamp:     txn.Timestamp,
		Amount:        txn.Amount,
		Type:          string(txn.Type),
		Note:          txn.Note,
		ProductID:     txn.ProductID,
		Pennies:       txn.Pennies,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}
