package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transactionService implements the append-only transaction ledger facade.
type transactionService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepository
	sessionRepo     portsrepo.SessionRepository
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(repo portsrepo.TransactionRepository, sessionRepo portsrepo.SessionRepository) portssvc.TransactionSvcFacade {
	return &transactionService{transactionRepo: repo, sessionRepo: sessionRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// parseAmount validates a monetary amount string: a positive decimal with at
// most two decimal places, never coerced.
func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, apperrors.NewFieldError("amount", "must be a decimal number")
	}
	if !amount.IsPositive() {
		return decimal.Zero, apperrors.NewFieldError("amount", "must be greater than zero")
	}
	if amount.Exponent() < -2 {
		return decimal.Zero, apperrors.NewFieldError("amount", "must have at most two decimal places")
	}
	return amount, nil
}

func (s *transactionService) RecordTransaction(ctx context.Context, req dto.RecordTransactionRequest) (*domain.Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	txnType := domain.TransactionType(req.Type)
	if !txnType.Valid() {
		return nil, apperrors.NewFieldError("type", "unknown transaction type")
	}

	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		SessionID:     req.SessionID,
		UserID:        req.UserID,
		OrgID:         req.OrgID,
		Timestamp:     time.Now(),
		Amount:        amount,
		Type:          txnType,
		Note:          req.Note,
		ProductID:     req.ProductID,
		Pennies:       0,
	}
	if req.Pennies != nil {
		if *req.Pennies < 0 {
			return nil, apperrors.NewFieldError("pennies", "must not be negative")
		}
		txn.Pennies = *req.Pennies
	}

	if req.SessionID != nil {
		session, err := s.sessionRepo.FindSessionByID(ctx, *req.SessionID)
		if err != nil {
			return nil, err
		}
		// Denormalize the work type for fast filtering, and inherit the
		// session's owner scope when the caller did not supply one.
		txn.WorkTypeID = session.WorkTypeID
		if txn.UserID == nil {
			txn.UserID = session.UserID
		}
		if txn.OrgID == nil {
			txn.OrgID = session.OrgID
		}
	}

	if err := s.transactionRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "Failed to save transaction")
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	s.LogInfo(ctx, "Transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("amount", txn.Amount.StringFixed(2)),
		slog.String("type", string(txn.Type)))
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	return s.transactionRepo.FindTransactionByID(ctx, transactionID)
}

func (s *transactionService) ListTransactionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Transaction, error) {
	return s.transactionRepo.ListTransactionsByScope(ctx, scope)
}
