package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
)

type memSessionRepository struct {
	store *Store
}

func newMemSessionRepository(store *Store) portsrepo.SessionRepository {
	return &memSessionRepository{store: store}
}

var _ portsrepo.SessionRepository = (*memSessionRepository)(nil)

// StartSessionExclusive checks for an active session in the new session's
// owner scope and inserts under one write lock, so concurrent starts in the
// same scope cannot both succeed.
func (r *memSessionRepository) StartSessionExclusive(_ context.Context, session domain.Session) error {
	ownerScope := domain.ScopeForOwner(session.UserID, session.OrgID)

	r.store.mu.Lock()
	for _, existing := range r.store.sessions {
		if existing.IsActive && ownerScope.Matches(existing.UserID, existing.OrgID) {
			r.store.mu.Unlock()
			return fmt.Errorf("active session %s exists in scope: %w", existing.SessionID, apperrors.ErrConflict)
		}
	}
	r.store.sessions[session.SessionID] = session
	r.store.mu.Unlock()
	r.store.scheduleFlush()
	return nil
}

func (r *memSessionRepository) SaveSession(_ context.Context, session domain.Session) error {
	r.store.mu.Lock()
	if _, ok := r.store.sessions[session.SessionID]; !ok {
		r.store.mu.Unlock()
		return apperrors.ErrNotFound
	}
	r.store.sessions[session.SessionID] = session
	r.store.mu.Unlock()
	r.store.scheduleFlush()
	return nil
}

func (r *memSessionRepository) FindSessionByID(_ context.Context, sessionID string) (*domain.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	session, ok := r.store.sessions[sessionID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &session, nil
}

func (r *memSessionRepository) FindActiveSession(_ context.Context, scope domain.Scope) (*domain.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var found *domain.Session
	for _, session := range r.store.sessions {
		if !session.IsActive || !scope.Matches(session.UserID, session.OrgID) {
			continue
		}
		s := session
		if found == nil || s.StartTime.After(found.StartTime) {
			found = &s
		}
	}
	if found == nil {
		return nil, apperrors.ErrNotFound
	}
	return found, nil
}

func (r *memSessionRepository) ListSessionsByScope(_ context.Context, scope domain.Scope) ([]domain.Session, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	sessions := []domain.Session{}
	for _, session := range r.store.sessions {
		if scope.Matches(session.UserID, session.OrgID) {
			sessions = append(sessions, session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		if !sessions[i].StartTime.Equal(sessions[j].StartTime) {
			return sessions[i].StartTime.After(sessions[j].StartTime)
		}
		return sessions[i].SessionID < sessions[j].SessionID
	})
	return sessions, nil
}
