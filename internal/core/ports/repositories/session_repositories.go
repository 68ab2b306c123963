package repositories

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
)

// SessionRepository defines persistence operations for session data.
type SessionRepository interface {
	// StartSessionExclusive inserts a new session if and only if no active
	// session exists in the session's owner scope. The check and the insert
	// are one atomic store-level operation; apperrors.ErrConflict is returned
	// when an active session already exists.
	StartSessionExclusive(ctx context.Context, session domain.Session) error

	// SaveSession updates an existing session (e.g. closing it).
	SaveSession(ctx context.Context, session domain.Session) error

	// FindSessionByID retrieves a specific session by its ID.
	FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)

	// FindActiveSession retrieves the most recently started active session
	// matching the scope, or apperrors.ErrNotFound.
	FindActiveSession(ctx context.Context, scope domain.Scope) (*domain.Session, error)

	// ListSessionsByScope retrieves sessions matching the tenant scope, most
	// recently started first.
	ListSessionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Session, error)
}
