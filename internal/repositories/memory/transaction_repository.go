package memory

import (
	"context"
	"sort"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
)

type memTransactionRepository struct {
	store *Store
}

func newMemTransactionRepository(store *Store) portsrepo.TransactionRepository {
	return &memTransactionRepository{store: store}
}

var _ portsrepo.TransactionRepository = (*memTransactionRepository)(nil)

func (r *memTransactionRepository) SaveTransaction(_ context.Context, txn domain.Transaction) error {
	r.store.mu.Lock()
	r.store.transactions[txn.TransactionID] = txn
	r.store.mu.Unlock()
	r.store.scheduleFlush()
	return nil
}

func (r *memTransactionRepository) FindTransactionByID(_ context.Context, transactionID string) (*domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	txn, ok := r.store.transactions[transactionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &txn, nil
}

func (r *memTransactionRepository) ListTransactionsByScope(_ context.Context, scope domain.Scope) ([]domain.Transaction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	txns := []domain.Transaction{}
	for _, txn := range r.store.transactions {
		if scope.Matches(txn.UserID, txn.OrgID) {
			txns = append(txns, txn)
		}
	}
	sort.Slice(txns, func(i, j int) bool {
		if !txns[i].Timestamp.Equal(txns[j].Timestamp) {
			return txns[i].Timestamp.After(txns[j].Timestamp)
		}
		return txns[i].TransactionID < txns[j].TransactionID
	})
	return txns, nil
}
