package repositories

import "context"

// RepositoryProvider bundles one repository per entity kind. Both storage
// backends produce a fully populated provider, so consumers never depend on
// which backend is active.
type RepositoryProvider struct {
	OrganizationRepo OrganizationRepository
	CaseworkerRepo   CaseworkerRepository
	UserRepo         UserRepository
	WorkTypeRepo     WorkTypeRepository
	SessionRepo      SessionRepository
	TransactionRepo  TransactionRepository

	// Closer releases backend resources (flushes the snapshot for the memory
	// backend); nil when the backend needs no teardown beyond the pool.
	Closer func(ctx context.Context) error
}
