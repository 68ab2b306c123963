package pgsql

import (
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires one pgx repository per entity kind around the
// shared connection pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		OrganizationRepo: newPgxOrganizationRepository(dbPool),
		CaseworkerRepo:   newPgxCaseworkerRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
		WorkTypeRepo:     newPgxWorkTypeRepository(dbPool),
		SessionRepo:      newPgxSessionRepository(dbPool),
		TransactionRepo:  newPgxTransactionRepository(dbPool),
	}
}
