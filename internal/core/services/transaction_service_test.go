package services_test

import (
	"context"
	"testing"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portssvc "github.com/fieldcollect/field_collections_app/internal/core/ports/services"
	"github.com/fieldcollect/field_collections_app/internal/core/services"
	"github.com/fieldcollect/field_collections_app/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTransactionRepo *MockTransactionRepository
	mockSessionRepo     *MockSessionRepository
	service             portssvc.TransactionSvcFacade
}

func (s *TransactionServiceTestSuite) SetupTest() {
	s.mockTransactionRepo = new(MockTransactionRepository)
	s.mockSessionRepo = new(MockSessionRepository)
	s.service = services.NewTransactionService(s.mockTransactionRepo, s.mockSessionRepo)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_QuickTransaction() {
	ctx := context.Background()
	userID := uuid.NewString()

	s.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.SessionID == nil && txn.Amount.StringFixed(2) == "5.50" && txn.Pennies == 0
	})).Return(nil).Once()

	txn, err := s.service.RecordTransaction(ctx, dto.RecordTransactionRequest{
		UserID: &userID,
		Amount: "5.50",
		Type:   "donation",
	})

	s.Require().NoError(err)
	s.Require().NotNil(txn)
	s.NotEmpty(txn.TransactionID)
	s.False(txn.Timestamp.IsZero())
	s.Equal(domain.TypeDonation, txn.Type)
	s.mockTransactionRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_InheritsSessionScope() {
	ctx := context.Background()
	sessionID := uuid.NewString()
	userID := uuid.NewString()
	orgID := uuid.NewString()
	workTypeID := uuid.NewString()

	s.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(&domain.Session{
		SessionID:  sessionID,
		UserID:     &userID,
		OrgID:      &orgID,
		WorkTypeID: &workTypeID,
		IsActive:   true,
	}, nil).Once()
	s.mockTransactionRepo.On("SaveTransaction", ctx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.UserID != nil && *txn.UserID == userID &&
			txn.OrgID != nil && *txn.OrgID == orgID &&
			txn.WorkTypeID != nil && *txn.WorkTypeID == workTypeID
	})).Return(nil).Once()

	txn, err := s.service.RecordTransaction(ctx, dto.RecordTransactionRequest{
		SessionID: &sessionID,
		Amount:    "20.00",
		Type:      "product",
	})

	s.Require().NoError(err)
	s.Equal(&workTypeID, txn.WorkTypeID)
	s.mockTransactionRepo.AssertExpectations(s.T())
	s.mockSessionRepo.AssertExpectations(s.T())
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_UnknownSession() {
	ctx := context.Background()
	sessionID := uuid.NewString()

	s.mockSessionRepo.On("FindSessionByID", ctx, sessionID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := s.service.RecordTransaction(ctx, dto.RecordTransactionRequest{
		SessionID: &sessionID,
		Amount:    "1.00",
		Type:      "donation",
	})

	s.Require().ErrorIs(err, apperrors.ErrNotFound)
	s.Nil(txn)
	s.mockTransactionRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_AmountValidation() {
	ctx := context.Background()

	cases := []struct {
		name   string
		amount string
	}{
		{"malformed", "five dollars"},
		{"zero", "0"},
		{"negative", "-5.00"},
		{"too many decimals", "1.999"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			txn, err := s.service.RecordTransaction(ctx, dto.RecordTransactionRequest{
				Amount: tc.amount,
				Type:   "donation",
			})
			s.Require().ErrorIs(err, apperrors.ErrValidation)
			s.Nil(txn)
		})
	}
	s.mockTransactionRepo.AssertNotCalled(s.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_UnknownTypeRejected() {
	txn, err := s.service.RecordTransaction(context.Background(), dto.RecordTransactionRequest{
		Amount: "5.00",
		Type:   "refund",
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(txn)
}

func (s *TransactionServiceTestSuite) TestRecordTransaction_NegativePenniesRejected() {
	pennies := -1
	txn, err := s.service.RecordTransaction(context.Background(), dto.RecordTransactionRequest{
		Amount:  "5.00",
		Type:    "donation",
		Pennies: &pennies,
	})

	s.Require().ErrorIs(err, apperrors.ErrValidation)
	s.Nil(txn)
}
