package services

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/fieldcollect/field_collections_app/internal/dto"
)

// SessionSvcFacade defines the operations for the session lifecycle.
type SessionSvcFacade interface {
	// StartSession starts a new collection session. apperrors.ErrConflict is
	// returned when the owner scope already has an active session.
	StartSession(ctx context.Context, req dto.StartSessionRequest) (*domain.Session, error)

	// StopSession closes an active session. Closed sessions are terminal;
	// stopping one again returns apperrors.ErrConflict.
	StopSession(ctx context.Context, sessionID string) (*domain.Session, error)

	// GetSessionByID retrieves a session by its ID.
	GetSessionByID(ctx context.Context, sessionID string) (*domain.Session, error)

	// ActiveSession retrieves the most recently started active session in the
	// scope, or apperrors.ErrNotFound.
	ActiveSession(ctx context.Context, scope domain.Scope) (*domain.Session, error)

	// ListSessionsByScope retrieves sessions matching the tenant scope.
	ListSessionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Session, error)
}
