package memory

import (
	"context"
	"log/slog"
	"time"

	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
)

// NewRepositoryProvider opens the snapshot-backed store and wires one
// repository per entity kind around it. Closing the provider flushes the
// snapshot synchronously.
func NewRepositoryProvider(snapshotPath string, debounce time.Duration, logger *slog.Logger) portsrepo.RepositoryProvider {
	store := Open(snapshotPath, debounce, logger)

	return portsrepo.RepositoryProvider{
		OrganizationRepo: newMemOrganizationRepository(store),
		CaseworkerRepo:   newMemCaseworkerRepository(store),
		UserRepo:         newMemUserRepository(store),
		WorkTypeRepo:     newMemWorkTypeRepository(store),
		SessionRepo:      newMemSessionRepository(store),
		TransactionRepo:  newMemTransactionRepository(store),
		Closer: func(context.Context) error {
			return store.Close()
		},
	}
}
