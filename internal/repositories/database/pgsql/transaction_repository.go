package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	db *pgxpool.Pool
}

func newPgxTransactionRepository(db *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{db: db}
}

var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// SaveTransaction is insert-only: the ledger is append-only and there is no
// ON CONFLICT clause on purpose.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	query := `
        INSERT INTO transactions (transaction_id, session_id, user_id, org_id, work_type_id, timestamp, amount, type, note, product_id, pennies)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		txn.TransactionID,
		txn.SessionID,
		txn.UserID,
		txn.OrgID,
		txn.WorkTypeID,
		txn.Timestamp,
		txn.Amount,
		string(txn.Type),
		txn.Note,
		txn.ProductID,
		txn.Pennies,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `
		SELECT transaction_id, session_id, user_id, org_id, work_type_id, timestamp, amount, type, note, product_id, pennies
		FROM transactions
		WHERE transaction_id = $1;
	`
	txn, err := r.scanTransaction(r.db.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction by ID %s: %w", transactionID, err)
	}
	return txn, nil
}

func (r *PgxTransactionRepository) ListTransactionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Transaction, error) {
	conds, args := appendScopeConditions(scope, "user_id", "org_id", nil, nil)
	query := `
        SELECT transaction_id, session_id, user_id, org_id, work_type_id, timestamp, amount, type, note, product_id, pennies
        FROM transactions` + whereClause(conds) + `
        ORDER BY timestamp DESC, transaction_id;
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	txns := []domain.Transaction{}
	for rows.Next() {
		txn, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, *txn)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", rows.Err())
	}
	return txns, nil
}

func (r *PgxTransactionRepository) scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var txnType string
	err := row.Scan(
		&txn.TransactionID,
		&txn.SessionID,
		&txn.UserID,
		&txn.OrgID,
		&txn.WorkTypeID,
		&txn.Timestamp,
		&txn.Amount,
		&txnType,
		&txn.Note,
		&txn.ProductID,
		&txn.Pennies,
	)
	if err != nil {
		return nil, err
	}
	txn.Type = domain.TransactionType(txnType)
	return &txn, nil
}
