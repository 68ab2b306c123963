package services

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionSvcFacade defines the operations on the append-only transaction
// ledger.
type TransactionSvcFacade interface {
	// RecordTransaction validates and appends a transaction. When a session
	// is referenced, the work type and owner scope are denormalized from it.
	RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error)

	// GetTransactionByID retrieves a transaction by its ID.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByScope retrieves transactions matching the tenant scope.
	ListTransactionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Transaction, error)
}

// ReportingSvcFacade defines the monetary aggregation engine.
type ReportingSvcFacade interface {
	// TotalCollected sums the eligible transaction amounts for a scope within
	// the timeframe. Test-session transactions are excluded; quick
	// transactions (no session) are always eligible.
	TotalCollected(ctx context.Context, scope domain.Scope, timeframe domain.Timeframe) (decimal.Decimal, error)

	// CollectionSummary returns the per-timeframe totals for a scope in one
	// call, for dashboard rendering.
	CollectionSummary(ctx context.Context, scope domain.Scope) (*dto.SummaryResponse, error)
}
