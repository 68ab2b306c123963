package memory

import (
	"context"
	"sort"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
)

type memCaseworkerRepository struct {
	store *Store
}

func newMemCaseworkerRepository(store *Store) portsrepo.CaseworkerRepository {
	return &memCaseworkerRepository{store: store}
}

var _ portsrepo.CaseworkerRepository = (*memCaseworkerRepository)(nil)

func (r *memCaseworkerRepository) SaveCaseworker(_ context.Context, cw domain.Caseworker) error {
	r.store.mu.Lock()
	r.store.caseworkers[cw.CaseworkerID] = cw
	r.store.mu.Unlock()
	r.store.scheduleFlush()
	return nil
}

func (r *memCaseworkerRepository) FindCaseworkerByID(_ context.Context, caseworkerID string) (*domain.Caseworker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cw, ok := r.store.caseworkers[caseworkerID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &cw, nil
}

func (r *memCaseworkerRepository) FindCaseworkerByEmail(_ context.Context, orgID, email string) (*domain.Caseworker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, cw := range r.store.caseworkers {
		if cw.OrgID == orgID && cw.Email == email {
			return &cw, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memCaseworkerRepository) ListCaseworkersByOrg(_ context.Context, orgID string) ([]domain.Caseworker, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	cws := []domain.Caseworker{}
	for _, cw := range r.store.caseworkers {
		if cw.OrgID == orgID && cw.IsActive {
			cws = append(cws, cw)
		}
	}
	sort.Slice(cws, func(i, j int) bool {
		if !cws[i].CreatedAt.Equal(cws[j].CreatedAt) {
			return cws[i].CreatedAt.Before(cws[j].CreatedAt)
		}
		return cws[i].CaseworkerID < cws[j].CaseworkerID
	})
	return cws, nil
}
