package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/handlers"
	"github.com/fieldcollect/field_collections_app/pkg/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SessionService ---

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) StartSession(ctx context.Context, req dto.StartSessionRequest) (*domain.Session, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) StopSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) GetSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) ActiveSession(ctx context.Context, scope domain.Scope) (*domain.Session, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Session), args.Error(1)
}

func (m *MockSessionService) ListSessionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Session), args.Error(1)
}

var _ portssvc.SessionSvcFacade = (*MockSessionService)(nil)

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) TotalCollected(ctx context.Context, scope domain.Scope, timeframe domain.Timeframe) (decimal.Decimal, error) {
	args := m.Called(ctx, scope, timeframe)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockReportingService) CollectionSummary(ctx context.Context, scope domain.Scope) (*dto.SummaryResponse, error) {
	args := m.Called(ctx, scope)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SummaryResponse), args.Error(1)
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

// --- Suite ---

type SessionHandlerTestSuite struct {
	suite.Suite
	router               *gin.Engine
	mockSessionService   *MockSessionService
	mockReportingService *MockReportingService
}

func (suite *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockSessionService = new(MockSessionService)
	suite.mockReportingService = new(MockReportingService)

	cfg := &config.Config{
		JWTSecret:     "test-secret-key-that-is-long-enough",
		AuthRateLimit: "100-M",
	}
	services := &portssvc.ServiceContainer{
		Session:   suite.mockSessionService,
		Reporting: suite.mockReportingService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func TestSessionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

func (suite *SessionHandlerTestSuite) TestStartSession_Created() {
	userID := uuid.NewString()
	expected := &domain.Session{
		SessionID: uuid.NewString(),
		UserID:    &userID,
		Location:  "main street",
		IsActive:  true,
	}

	suite.mockSessionService.On("StartSession", mock.Anything, mock.MatchedBy(func(req dto.StartSessionRequest) bool {
		return req.Location == "main street"
	})).Return(expected, nil).Once()

	body := `{"userID":"` + userID + `","location":"main street"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.SessionResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(expected.SessionID, resp.SessionID)
	suite.True(resp.IsActive)
}

func (suite *SessionHandlerTestSuite) TestStartSession_ActiveSessionConflict() {
	suite.mockSessionService.On("StartSession", mock.Anything, mock.AnythingOfType("dto.StartSessionRequest")).
		Return(nil, apperrors.ErrConflict).Once()

	body := `{"location":"main street"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SessionHandlerTestSuite) TestStartSession_FieldErrorIsBadRequest() {
	suite.mockSessionService.On("StartSession", mock.Anything, mock.AnythingOfType("dto.StartSessionRequest")).
		Return(nil, apperrors.NewFieldError("workTypeID", "unknown work type")).Once()

	body := `{"location":"main street","workTypeID":"nope"}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sessions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	var resp map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("workTypeID", resp["field"])
}

func (suite *SessionHandlerTestSuite) TestStopSession_ClosedIsConflict() {
	sessionID := uuid.NewString()
	suite.mockSessionService.On("StopSession", mock.Anything, sessionID).
		Return(nil, apperrors.ErrConflict).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/sessions/"+sessionID+"/stop", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *SessionHandlerTestSuite) TestGetActiveSession_NotFound() {
	suite.mockSessionService.On("ActiveSession", mock.Anything, mock.AnythingOfType("domain.Scope")).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/sessions/active", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *SessionHandlerTestSuite) TestGetTotal_FreeTierScopeFromQuery() {
	suite.mockReportingService.On("TotalCollected", mock.Anything, mock.MatchedBy(func(scope domain.Scope) bool {
		// userId= (empty) is the free-tier sentinel; orgId absent stays open.
		return scope.User.Set && scope.User.ID == nil && !scope.Org.Set
	}), domain.TimeframeToday).Return(decimal.RequireFromString("15.00"), nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/total?timeframe=today&userId=", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TotalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("today", resp.Timeframe)
	suite.True(resp.Total.Equal(decimal.RequireFromString("15.00")))
}

func (suite *SessionHandlerTestSuite) TestGetTotal_ExactScopeFromQuery() {
	userID := uuid.NewString()

	suite.mockReportingService.On("TotalCollected", mock.Anything, mock.MatchedBy(func(scope domain.Scope) bool {
		return scope.User.Set && scope.User.ID != nil && *scope.User.ID == userID
	}), domain.TimeframeAllTime).Return(decimal.Zero, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/v1/reports/total?userId="+userID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReportingService.AssertExpectations(suite.T())
}
