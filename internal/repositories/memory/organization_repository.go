package memory

import (
	"context"
	"sort"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
)

type memOrganizationRepository struct {
	store *Store
}

func newMemOrganizationRepository(store *Store) portsrepo.OrganizationRepository {
	return &memOrganizationRepository{store: store}
}

var _ portsrepo.OrganizationRepository = (*memOrganizationRepository)(nil)

func (r *memOrganizationRepository) SaveOrganization(_ context.Context, org domain.Organization) error {
	r.store.mu.Lock()
	r.store.organizations[org.OrgID] = org
	r.store.mu.Unlock()
	r.store.scheduleFlush()
	return nil
}

func (r *memOrganizationRepository) FindOrganizationByID(_ context.Context, orgID string) (*domain.Organization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	org, ok := r.store.organizations[orgID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &org, nil
}

func (r *memOrganizationRepository) FindOrganizationBySubdomain(_ context.Context, subdomain string) (*domain.Organization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, org := range r.store.organizations {
		if org.Subdomain != nil && *org.Subdomain == subdomain {
			return &org, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *memOrganizationRepository) ListOrganizations(_ context.Context) ([]domain.Organization, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	orgs := make([]domain.Organization, 0, len(r.store.organizations))
	for _, org := range r.store.organizations {
		orgs = append(orgs, org)
	}
	sort.Slice(orgs, func(i, j int) bool {
		if !orgs[i].CreatedAt.Equal(orgs[j].CreatedAt) {
			return orgs[i].CreatedAt.After(orgs[j].CreatedAt)
		}
		return orgs[i].OrgID < orgs[j].OrgID
	})
	return orgs, nil
}
