package memory

import (
	"context"
	"sort"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
)

type memUserRepository struct {
	store *Store
}

func newMemUserRepository(store *Store) portsrepo.UserRepository {
	return &memUserRepository{store: store}
}

var _ portsrepo.UserRepository = (*memUserRepository)(nil)

func (r *memUserRepository) SaveUser(_ context.Context, user domain.User) error {
	r.store.mu.Lock()
	r.store.users[user.UserID] = user
	r.store.mu.Unlock()
	r.store.scheduleFlush()
	return nil
}

func (r *memUserRepository) FindUserByID(_ context.Context, userID string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	user, ok := r.store.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &user, nil
}

func (r *memUserRepository) FindUserByDeviceID(_ context.Context, deviceID string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, user := range r.store.users {
		if user.DeviceID != nil && *user.DeviceID == deviceID {
			return &user, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memUserRepository) ListUsersByScope(_ context.Context, scope domain.Scope) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	users := []domain.User{}
	for _, user := range r.store.users {
		userID := user.UserID
		if scope.Matches(&userID, user.OrgID) {
			users = append(users, user)
		}
	}
	sort.Slice(users, func(i, j int) bool {
		if !users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].CreatedAt.After(users[j].CreatedAt)
		}
		return users[i].UserID < users[j].UserID
	})
	return users, nil
}
