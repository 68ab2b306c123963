package memory_test

import (
	"testing"

	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	"github.com/fieldcollect/field_collections_app/internal/repositories/memory"
	"github.com/fieldcollect/field_collections_app/internal/repositories/storetest"
)

// TestRepositoryConformance runs the shared record store suite against the
// in-memory backend, without snapshotting so each subtest is isolated.
func TestRepositoryConformance(t *testing.T) {
	storetest.RunRepositorySuite(t, func(t *testing.T) portsrepo.RepositoryProvider {
		return memory.NewRepositoryProvider("", 0, nil)
	})
}
