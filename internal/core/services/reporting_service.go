package services

import (
	"context"
	"fmt"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/shopspring/decimal"
)

// reportingService implements the monetary aggregation engine. It operates
// purely on the entity sets returned by the repositories, so both storage
// backends yield identical results.
type reportingService struct {
	BaseService
	sessionRepo     portsrepo.SessionRepository
	transactionRepo portsrepo.TransactionRepository
	now             func() time.Time
}

// ReportingServiceOption is a functional option for configuring the reporting
// service.
type ReportingServiceOption func(*reportingService)

// WithReportingClock overrides the clock used for timeframe cutoffs.
func WithReportingClock(now func() time.Time) ReportingServiceOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// NewReportingService creates a new reporting service with the provided options.
func NewReportingService(sessionRepo portsrepo.SessionRepository, transactionRepo portsrepo.TransactionRepository, options ...ReportingServiceOption) portssvc.ReportingSvcFacade {
	svc := &reportingService{
		sessionRepo:     sessionRepo,
		transactionRepo: transactionRepo,
		now:             time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// eligibleTransactions resolves the scope's sessions and filters the scope's
// transactions down to the aggregation-eligible set: quick transactions (no
// session) are always eligible; session transactions are eligible only when
// their session resolves to a non-test session.
func (s *reportingService) eligibleTransactions(ctx context.Context, scope domain.Scope) ([]domain.Transaction, error) {
	sessions, err := s.sessionRepo.ListSessionsByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions for aggregation: %w", err)
	}

	nonTest := make(map[string]bool, len(sessions))
	for _, session := range sessions {
		if !session.IsTest {
			nonTest[session.SessionID] = true
		}
	}

	txns, err := s.transactionRepo.ListTransactionsByScope(ctx, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for aggregation: %w", err)
	}

	eligible := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.SessionID != nil && !nonTest[*txn.SessionID] {
			continue
		}
		eligible = append(eligible, txn)
	}
	return eligible, nil
}

func (s *reportingService) TotalCollected(ctx context.Context, scope domain.Scope, timeframe domain.Timeframe) (decimal.Decimal, error) {
	eligible, err := s.eligibleTransactions(ctx, scope)
	if err != nil {
		return decimal.Zero, err
	}

	cutoff, bounded := timeframe.Cutoff(s.now())

	total := decimal.Zero
	for _, txn := range eligible {
		if bounded && txn.Timestamp.Before(cutoff) {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total, nil
}

func (s *reportingService) CollectionSummary(ctx context.Context, scope domain.Scope) (*dto.SummaryResponse, error) {
	eligible, err := s.eligibleTransactions(ctx, scope)
	if err != nil {
		return nil, err
	}

	now := s.now()
	summary := &dto.SummaryResponse{
		Today:            decimal.Zero,
		Week:             decimal.Zero,
		Month:            decimal.Zero,
		AllTime:          decimal.Zero,
		TransactionCount: len(eligible),
	}

	todayCutoff, _ := domain.TimeframeToday.Cutoff(now)
	weekCutoff, _ := domain.TimeframeWeek.Cutoff(now)
	monthCutoff, _ := domain.TimeframeMonth.Cutoff(now)

	for _, txn := range eligible {
		summary.AllTime = summary.AllTime.Add(txn.Amount)
		if !txn.Timestamp.Before(todayCutoff) {
			summary.Today = summary.Today.Add(txn.Amount)
		}
		if !txn.Timestamp.Before(weekCutoff) {
			summary.Week = summary.Week.Add(txn.Amount)
		}
		if !txn.Timestamp.Before(monthCutoff) {
			summary.Month = summary.Month.Add(txn.Amount)
		}
	}
	return summary, nil
}
