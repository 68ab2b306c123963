package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/core/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SessionServiceTestSuite struct {
	suite.Suite
	mockSessionRepo  *MockSessionRepository
	mockWorkTypeRepo *MockWorkTypeRepository
	service          portssvc.SessionSvcFacade
}

func (s *SessionServiceTestSuite) SetupTest() {
	s.mockSessionRepo = new(MockSessionRepository)
	s.mockWorkTypeRepo = new(MockWorkTypeRepository)
	s.service = services.NewSessionService(s.mockSessionRepo, s.mockWorkTypeRepo)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}

func (s *SessionServiceTestSuite) TestStartSession_Success() {
	ctx := context.Background()
	userID := uuid.NewString()

	s.mockSessionRepo.On("StartSessionExclusive", ctx, mock.MatchedBy(func(session domain.Session) bool {
		return session.UserID != nil && *session.UserID == userID &&
			session.IsActive && session.EndTime == nil && session.SessionID != ""
	})).Return(nil).Once()

	session, err := s.service.StartSession(ctx, dto.StartSessionRequest{
		UserID:   &userID,
		Location: "main street",
	})

	s.Require().NoError(err)
	s.Require().NotNil(session)
	s.True(session.IsActive)
	s.Nil(session.EndTime)
	s.False(session.StartTime.IsZero())
	s.mockSessionRepo.AssertExpectations(s.T())
}

func (s *SessionServiceTestSuite) TestStartSession_ConflictWhenScopeHasActiveSession() {
	ctx := context.Background()
	userID := uuid.NewString()

	s.mockSessionRepo.On("StartSessionExclusive", ctx, mock.AnythingOfType("domain.Session")).
		Return(apperrors.ErrConflict).Once()

	session, err := s.service.StartSession(ctx, dto.StartSessionRequest{
		UserID:   &userID,
		Location: "main street",
	})

	s.Require().ErrorIs(err, apperrors.ErrConflict)
	s.Nil(session)
	s.mockSessionRepo.AssertExpectations(s.T())
}

func (s *SessionServiceTestSuite) TestStartSession_EmptyLocationRejected() {
	session, err := s.service.StartSession(context.Background(), dto.StartSessionRequest{})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(session)
	s.mockSessionRepo.AssertNotCalled(s.T(), "StartSessionExclusive", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestStartSession_UnknownWorkTypeRejected() {
	ctx := context.Background()
	workTypeID := uuid.NewString()

	s.mockWorkTypeRepo.On("FindWorkTypeByID", ctx, workTypeID).
		Return(nil, apperrors.ErrNotFound).Once()

	session, err := s.service.StartSession(ctx, dto.StartSessionRequest{
		WorkTypeID: &workTypeID,
		Location:   "main street",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(session)
	s.mockWorkTypeRepo.AssertExpectations(s.T())
}

func (s *SessionServiceTestSuite) TestStopSession_Success() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	active := &domain.Session{
		SessionID: sessionID,
		Location:  "market",
		StartTime: time.Now().Add(-time.Hour),
		IsActive:  true,
	}

	s.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(active, nil).Once()
	s.mockSessionRepo.On("SaveSession", ctx, mock.MatchedBy(func(session domain.Session) bool {
		return !session.IsActive && session.EndTime != nil
	})).Return(nil).Once()

	stopped, err := s.service.StopSession(ctx, sessionID)

	s.Require().NoError(err)
	s.Require().NotNil(stopped)
	s.False(stopped.IsActive)
	s.Require().NotNil(stopped.EndTime)
	s.True(stopped.EndTime.After(stopped.StartTime))
	s.mockSessionRepo.AssertExpectations(s.T())
}

func (s *SessionServiceTestSuite) TestStopSession_ClosedIsTerminal() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	end := time.Now().Add(-time.Minute)
	closed := &domain.Session{
		SessionID: sessionID,
		StartTime: time.Now().Add(-time.Hour),
		EndTime:   &end,
		IsActive:  false,
	}

	s.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(closed, nil).Once()

	stopped, err := s.service.StopSession(ctx, sessionID)

	s.Require().ErrorIs(err, apperrors.ErrConflict)
	s.Nil(stopped)
	s.mockSessionRepo.AssertNotCalled(s.T(), "SaveSession", mock.Anything, mock.Anything)
}

func (s *SessionServiceTestSuite) TestStopSession_NotFound() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	s.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(nil, apperrors.ErrNotFound).Once()

	stopped, err := s.service.StopSession(ctx, sessionID)

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(stopped)
}
