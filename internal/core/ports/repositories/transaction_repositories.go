package repositories

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// TransactionRepository defines persistence operations for the append-only
// transaction ledger. There is deliberately no update or delete operation:
// transactions are immutable once recorded.
type TransactionRepository interface {
	// SaveTransaction appends a new transaction to the ledger.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// FindTransactionByID retrieves a specific transaction by its ID.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByScope retrieves transactions matching the tenant
	// scope, newest first.
	ListTransactionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Transaction, error)
}
