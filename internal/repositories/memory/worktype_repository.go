package memory

import (
	"context"
	"sort"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
)

type memWorkTypeRepository struct {
	store *Store
}

func newMemWorkTypeRepository(store *Store) portsrepo.WorkTypeRepository {
	return &memWorkTypeRepository{store: store}
}

var _ portsrepo.WorkTypeRepository = (*memWorkTypeRepository)(nil)

func (r *memWorkTypeRepository) SaveWorkType(_ context.Context, wt domain.WorkType) error {
	r.store.mu.Lock()
	r.store.workTypes[wt.WorkTypeID] = wt
	r.store.mu.Unlock()
	r.store.scheduleFlush()
	return nil
}

// FindWorkTypeByID does not filter on the active flag, so soft-deleted work
// types remain retrievable by id.
func (r *memWorkTypeRepository) FindWorkTypeByID(_ context.Context, workTypeID string) (*domain.WorkType, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wt, ok := r.store.workTypes[workTypeID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &wt, nil
}

func (r *memWorkTypeRepository) ListWorkTypesByScope(_ context.Context, scope domain.Scope) ([]domain.WorkType, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	wts := []domain.WorkType{}
	for _, wt := range r.store.workTypes {
		if wt.IsActive && scope.Matches(wt.UserID, wt.OrgID) {
			wts = append(wts, wt)
		}
	}
	sort.Slice(wts, func(i, j int) bool {
		if wts[i].SortOrder != wts[j].SortOrder {
			return wts[i].SortOrder < wts[j].SortOrder
		}
		if !wts[i].CreatedAt.Equal(wts[j].CreatedAt) {
			return wts[i].CreatedAt.Before(wts[j].CreatedAt)
		}
		return wts[i].WorkTypeID < wts[j].WorkTypeID
	})
	return wts, nil
}

func (r *memWorkTypeRepository) MarkWorkTypeInactive(_ context.Context, workTypeID string) error {
	r.store.mu.Lock()
	wt, ok := r.store.workTypes[workTypeID]
	if !ok {
		r.store.mu.Unlock()
		return apperrors.ErrNotFound
	}
	wt.IsActive = false
	r.store.workTypes[workTypeID] = wt
	r.store.mu.Unlock()
	r.store.scheduleFlush()
	return nil
}
