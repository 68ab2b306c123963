package services_test

import (
	"context"

	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock SessionRepository ---

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) StartSessionExclusive(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	args := m.Called(ctx, sessionID)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionRepository) FindActiveSession(ctx context.Context, scope domain.Scope) (*domain.Session, error) {
	args := m.Called(ctx, scope)
	var session *domain.Session
	if args.Get(0) != nil {
		session = args.Get(0).(*domain.Session)
	}
	return session, args.Error(1)
}

func (m *MockSessionRepository) ListSessionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
	args := m.Called(ctx, scope)
	var sessions []domain.Session
	if args.Get(0) != nil {
		sessions = args.Get(0).([]domain.Session)
	}
	return sessions, args.Error(1)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Transaction, error) {
	args := m.Called(ctx, scope)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

// --- Mock WorkTypeRepository ---

type MockWorkTypeRepository struct {
	mock.Mock
}

func (m *MockWorkTypeRepository) SaveWorkType(ctx context.Context, wt domain.WorkType) error {
	args := m.Called(ctx, wt)
	return args.Error(0)
}

func (m *MockWorkTypeRepository) FindWorkTypeByID(ctx context.Context, workTypeID string) (*domain.WorkType, error) {
	args := m.Called(ctx, workTypeID)
	var wt *domain.WorkType
	if args.Get(0) != nil {
		wt = args.Get(0).(*domain.WorkType)
	}
	return wt, args.Error(1)
}

func (m *MockWorkTypeRepository) ListWorkTypesByScope(ctx context.Context, scope domain.Scope) ([]domain.WorkType, error) {
	args := m.Called(ctx, scope)
	var wts []domain.WorkType
	if args.Get(0) != nil {
		wts = args.Get(0).([]domain.WorkType)
	}
	return wts, args.Error(1)
}

func (m *MockWorkTypeRepository) MarkWorkTypeInactive(ctx context.Context, workTypeID string) error {
	args := m.Called(ctx, workTypeID)
	return args.Error(0)
}

// --- Mock OrganizationRepository ---

type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) FindOrganizationByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	args := m.Called(ctx, orgID)
	var org *domain.Organization
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	return org, args.Error(1)
}

func (m *MockOrganizationRepository) FindOrganizationBySubdomain(ctx context.Context, subdomain string) (*domain.Organization, error) {
	args := m.Called(ctx, subdomain)
	var org *domain.Organization
	if args.Get(0) != nil {
		org = args.Get(0).(*domain.Organization)
	}
	return org, args.Error(1)
}

func (m *MockOrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	args := m.Called(ctx)
	var orgs []domain.Organization
	if args.Get(0) != nil {
		orgs = args.Get(0).([]domain.Organization)
	}
	return orgs, args.Error(1)
}

// --- Mock CaseworkerRepository ---

type MockCaseworkerRepository struct {
	mock.Mock
}

func (m *MockCaseworkerRepository) SaveCaseworker(ctx context.Context, cw domain.Caseworker) error {
	args := m.Called(ctx, cw)
	return args.Error(0)
}

func (m *MockCaseworkerRepository) FindCaseworkerByID(ctx context.Context, caseworkerID string) (*domain.Caseworker, error) {
	args := m.Called(ctx, caseworkerID)
	var cw *domain.Caseworker
	if args.Get(0) != nil {
		cw = args.Get(0).(*domain.Caseworker)
	}
	return cw, args.Error(1)
}

func (m *MockCaseworkerRepository) FindCaseworkerByEmail(ctx context.Context, orgID, email string) (*domain.Caseworker, error) {
	args := m.Called(ctx, orgID, email)
	var cw *domain.Caseworker
	if args.Get(0) != nil {
		cw = args.Get(0).(*domain.Caseworker)
	}
	return cw, args.Error(1)
}

func (m *MockCaseworkerRepository) ListCaseworkersByOrg(ctx context.Context, orgID string) ([]domain.Caseworker, error) {
	args := m.Called(ctx, orgID)
	var cws []domain.Caseworker
	if args.Get(0) != nil {
		cws = args.Get(0).([]domain.Caseworker)
	}
	return cws, args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByDeviceID(ctx context.Context, deviceID string) (*domain.User, error) {
	args := m.Called(ctx, deviceID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) ListUsersByScope(ctx context.Context, scope domain.Scope) ([]domain.User, error) {
	args := m.Called(ctx, scope)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}
