package services_test

import (
	"context"
	"testing"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/core/services"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type SeedServiceTestSuite struct {
	suite.Suite
	mockWorkTypeRepo *MockWorkTypeRepository
	service          portssvc.SeedSvcFacade
}

func (s *SeedServiceTestSuite) SetupTest() {
	s.mockWorkTypeRepo = new(MockWorkTypeRepository)
	s.service = services.NewSeedService(s.mockWorkTypeRepo)
}

func TestSeedServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeedServiceTestSuite))
}

func (s *SeedServiceTestSuite) TestSeedsEmptyScope() {
	ctx := context.Background()
	userID := uuid.NewString()

	s.mockWorkTypeRepo.On("ListWorkTypesByScope", ctx, domain.ScopeForOwner(&userID, nil)).
		Return([]domain.WorkType{}, nil).Once()

	var seeded []domain.WorkType
	s.mockWorkTypeRepo.On("SaveWorkType", ctx, mock.MatchedBy(func(wt domain.WorkType) bool {
		return wt.IsDefault && wt.IsActive && wt.UserID != nil && *wt.UserID == userID && wt.OrgID == nil
	})).Run(func(args mock.Arguments) {
		seeded = append(seeded, args.Get(1).(domain.WorkType))
	}).Return(nil).Times(4)

	s.Require().NoError(s.service.EnsureDefaultWorkTypes(ctx, &userID, nil))

	s.Require().Len(seeded, 4)
	names := make([]string, len(seeded))
	for i, wt := range seeded {
		names[i] = wt.Name
		s.Equal(i, wt.SortOrder)
		s.NotNil(wt.Icon)
		s.NotNil(wt.Color)
	}
	s.Equal([]string{"Donations", "Sales", "Tips", "Other"}, names)
	s.mockWorkTypeRepo.AssertExpectations(s.T())
}

func (s *SeedServiceTestSuite) TestNoOpWhenScopeHasWorkTypes() {
	ctx := context.Background()
	orgID := uuid.NewString()

	s.mockWorkTypeRepo.On("ListWorkTypesByScope", ctx, domain.ScopeForOwner(nil, &orgID)).
		Return([]domain.WorkType{{WorkTypeID: uuid.NewString(), OrgID: &orgID, Name: "Custom", IsActive: true}}, nil).Once()

	s.Require().NoError(s.service.EnsureDefaultWorkTypes(ctx, nil, &orgID))

	s.mockWorkTypeRepo.AssertNotCalled(s.T(), "SaveWorkType", mock.Anything, mock.Anything)
}

func (s *SeedServiceTestSuite) TestSeedsOrgScope() {
	ctx := context.Background()
	orgID := uuid.NewString()

	s.mockWorkTypeRepo.On("ListWorkTypesByScope", ctx, domain.ScopeForOwner(nil, &orgID)).
		Return([]domain.WorkType{}, nil).Once()
	s.mockWorkTypeRepo.On("SaveWorkType", ctx, mock.MatchedBy(func(wt domain.WorkType) bool {
		return wt.UserID == nil && wt.OrgID != nil && *wt.OrgID == orgID
	})).Return(nil).Times(4)

	s.Require().NoError(s.service.EnsureDefaultWorkTypes(ctx, nil, &orgID))
	s.mockWorkTypeRepo.AssertExpectations(s.T())
}
