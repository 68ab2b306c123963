package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/google/uuid"
)

// sessionService implements the session lifecycle facade.
type sessionService struct {
	BaseService
	sessionRepo  portsrepo.SessionRepository
	workTypeRepo portsrepo.WorkTypeRepository
}

// NewSessionService creates a new session service.
func NewSessionService(repo portsrepo.SessionRepository, workTypeRepo portsrepo.WorkTypeRepository) portssvc.SessionSvcFacade {
	return &sessionService{sessionRepo: repo, workTypeRepo: workTypeRepo}
}

var _ portssvc.SessionSvcFacade = (*sessionService)(nil)

func (s *sessionService) StartSession(ctx context.Context, req dto.StartSessionRequest) (*domain.Session, error) {
	if req.Location == "" {
		return nil, apperrors.NewFieldError("location", "must not be empty")
	}
	if req.WorkTypeID != nil {
		if _, err := s.workTypeRepo.FindWorkTypeByID(ctx, *req.WorkTypeID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, apperrors.NewFieldError("workTypeID", "unknown work type")
			}
			return nil, fmt.Errorf("failed to verify work type: %w", err)
		}
	}

	session := domain.Session{
		SessionID:  uuid.NewString(),
		UserID:     req.UserID,
		OrgID:      req.OrgID,
		WorkTypeID: req.WorkTypeID,
		Location:   req.Location,
		StartTime:  time.Now(),
		EndTime:    nil,
		IsTest:     req.IsTest,
		IsActive:   true,
	}

	// The check for an existing active session and the insert are one atomic
	// store operation, so two concurrent starts cannot both succeed.
	if err := s.sessionRepo.StartSessionExclusive(ctx, session); err != nil {
		if errors.Is(err, apperrors.ErrConflict) {
			s.LogWarn(ctx, "Session start rejected, scope already has an active session")
			return nil, err
		}
		s.LogError(ctx, err, "Failed to start session")
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	s.LogInfo(ctx, "Session started", slog.String("session_id", session.SessionID), slog.String("location", session.Location))
	return &session, nil
}

func (s *sessionService) StopSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.FindSessionByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Closed is terminal: a session transitions active -> closed exactly once.
	if !session.IsActive {
		return nil, fmt.Errorf("session %s is already closed: %w", sessionID, apperrors.ErrConflict)
	}

	now := time.Now()
	session.EndTime = &now
	session.IsActive = false

	if err := s.sessionRepo.SaveSession(ctx, *session); err != nil {
		s.LogError(ctx, err, "Failed to stop session", slog.String("session_id", sessionID))
		return nil, fmt.Errorf("failed to stop session: %w", err)
	}

	s.LogInfo(ctx, "Session stopped", slog.String("session_id", sessionID))
	return session, nil
}

func (s *sessionService) GetSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	return s.sessionRepo.FindSessionByID(ctx, sessionID)
}

func (s *sessionService) ActiveSession(ctx context.Context, scope domain.Scope) (*domain.Session, error) {
	return s.sessionRepo.FindActiveSession(ctx, scope)
}

func (s *sessionService) ListSessionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
	return s.sessionRepo.ListSessionsByScope(ctx, scope)
}
