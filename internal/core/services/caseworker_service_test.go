package services_test

import (
	"context"
	"testing"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/core/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/fieldcollect/field_collections_app/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CaseworkerServiceTestSuite struct {
	suite.Suite
	mockCaseworkerRepo *MockCaseworkerRepository
	mockOrgRepo        *MockOrganizationRepository
	service            portssvc.CaseworkerSvcFacade
}

func (s *CaseworkerServiceTestSuite) SetupTest() {
	s.mockCaseworkerRepo = new(MockCaseworkerRepository)
	s.mockOrgRepo = new(MockOrganizationRepository)
	s.service = services.NewCaseworkerService(s.mockCaseworkerRepo, s.mockOrgRepo)
}

func TestCaseworkerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CaseworkerServiceTestSuite))
}

func (s *CaseworkerServiceTestSuite) TestCreateCaseworker_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()

	s.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).
		Return(&domain.Organization{OrgID: orgID, IsActive: true}, nil).Once()
	s.mockCaseworkerRepo.On("FindCaseworkerByEmail", ctx, orgID, "ana@hope.org").
		Return(nil, apperrors.ErrNotFound).Once()
	s.mockCaseworkerRepo.On("SaveCaseworker", ctx, mock.MatchedBy(func(cw domain.Caseworker) bool {
		return cw.OrgID == orgID && cw.Email == "ana@hope.org" && cw.Role == domain.RoleAdmin && cw.IsActive
	})).Return(nil).Once()

	cw, err := s.service.CreateCaseworker(ctx, dto.CreateCaseworkerRequest{
		OrgID:    orgID,
		Email:    "Ana@Hope.org", // normalized to lowercase
		Name:     "Ana",
		Password: "hunter2hunter2",
		Role:     "admin",
	})

	s.Require().NoError(err)
	s.Equal("ana@hope.org", cw.Email)
	s.NotEqual("hunter2hunter2", cw.PasswordHash)
	s.mockCaseworkerRepo.AssertExpectations(s.T())
}

func (s *CaseworkerServiceTestSuite) TestCreateCaseworker_UnknownOrg() {
	ctx := context.Background()
	orgID := uuid.NewString()

	s.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).Return(nil, apperrors.ErrNotFound).Once()

	cw, err := s.service.CreateCaseworker(ctx, dto.CreateCaseworkerRequest{
		OrgID:    orgID,
		Email:    "ana@hope.org",
		Name:     "Ana",
		Password: "hunter2hunter2",
		Role:     "admin",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(cw)
	s.mockCaseworkerRepo.AssertNotCalled(s.T(), "SaveCaseworker", mock.Anything, mock.Anything)
}

func (s *CaseworkerServiceTestSuite) TestCreateCaseworker_DuplicateEmail() {
	ctx := context.Background()
	orgID := uuid.NewString()

	s.mockOrgRepo.On("FindOrganizationByID", ctx, orgID).
		Return(&domain.Organization{OrgID: orgID, IsActive: true}, nil).Once()
	s.mockCaseworkerRepo.On("FindCaseworkerByEmail", ctx, orgID, "ana@hope.org").
		Return(&domain.Caseworker{CaseworkerID: uuid.NewString(), OrgID: orgID, Email: "ana@hope.org"}, nil).Once()

	cw, err := s.service.CreateCaseworker(ctx, dto.CreateCaseworkerRequest{
		OrgID:    orgID,
		Email:    "ana@hope.org",
		Name:     "Ana",
		Password: "hunter2hunter2",
		Role:     "caseworker",
	})

	s.Require().ErrorIs(err, apperrors.ErrDuplicate)
	s.Nil(cw)
}

func (s *CaseworkerServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	orgID := uuid.NewString()
	hash, err := utils.HashPassword("correct horse")
	s.Require().NoError(err)

	s.mockCaseworkerRepo.On("FindCaseworkerByEmail", ctx, orgID, "ana@hope.org").
		Return(&domain.Caseworker{
			CaseworkerID: uuid.NewString(),
			OrgID:        orgID,
			Email:        "ana@hope.org",
			PasswordHash: hash,
			Role:         domain.RoleCaseworker,
			IsActive:     true,
		}, nil).Once()

	cw, err := s.service.Authenticate(ctx, orgID, "ana@hope.org", "correct horse")

	s.Require().NoError(err)
	s.Equal("ana@hope.org", cw.Email)
}

func (s *CaseworkerServiceTestSuite) TestAuthenticate_WrongPasswordLooksLikeUnknownEmail() {
	ctx := context.Background()
	orgID := uuid.NewString()
	hash, err := utils.HashPassword("correct horse")
	s.Require().NoError(err)

	s.mockCaseworkerRepo.On("FindCaseworkerByEmail", ctx, orgID, "ana@hope.org").
		Return(&domain.Caseworker{PasswordHash: hash, IsActive: true}, nil).Once()
	s.mockCaseworkerRepo.On("FindCaseworkerByEmail", ctx, orgID, "nobody@hope.org").
		Return(nil, apperrors.ErrNotFound).Once()

	_, wrongPass := s.service.Authenticate(ctx, orgID, "ana@hope.org", "battery staple")
	_, unknown := s.service.Authenticate(ctx, orgID, "nobody@hope.org", "battery staple")

	s.Require().Error(wrongPass)
	s.Require().Error(unknown)
	s.Equal(unknown, wrongPass)
}

func (s *CaseworkerServiceTestSuite) TestAuthenticate_InactiveCaseworkerRejected() {
	ctx := context.Background()
	orgID := uuid.NewString()
	hash, err := utils.HashPassword("correct horse")
	s.Require().NoError(err)

	s.mockCaseworkerRepo.On("FindCaseworkerByEmail", ctx, orgID, "ana@hope.org").
		Return(&domain.Caseworker{PasswordHash: hash, IsActive: false}, nil).Once()

	cw, err := s.service.Authenticate(ctx, orgID, "ana@hope.org", "correct horse")

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(cw)
}
