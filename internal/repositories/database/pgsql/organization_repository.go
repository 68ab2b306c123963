package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOrganizationRepository struct {
	db *pgxpool.Pool
}

func newPgxOrganizationRepository(db *pgxpool.Pool) portsrepo.OrganizationRepository {
	return &PgxOrganizationRepository{db: db}
}

var _ portsrepo.OrganizationRepository = (*PgxOrganizationRepository)(nil)

func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization) error {
	query := `
        INSERT INTO organizations (org_id, name, tier, features, subdomain, branding, created_at, is_active)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (org_id) DO UPDATE SET
            name = EXCLUDED.name,
            tier = EXCLUDED.tier,
            features = EXCLUDED.features,
            subdomain = EXCLUDED.subdomain,
            branding = EXCLUDED.branding,
            is_active = EXCLUDED.is_active;
    `
	_, err := r.db.Exec(ctx, query,
		org.OrgID,
		org.Name,
		string(org.Tier),
		org.Features,
		org.Subdomain,
		org.Branding,
		org.CreatedAt,
		org.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to save organization: %w", err)
	}
	return nil
}

func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, orgID string) (*domain.Organization, error) {
	query := `
		SELECT org_id, name, tier, features, subdomain, branding, created_at, is_active
		FROM organizations
		WHERE org_id = $1;
	`
	org, err := r.scanOrganization(r.db.QueryRow(ctx, query, orgID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by ID %s: %w", orgID, err)
	}
	return org, nil
}

func (r *PgxOrganizationRepository) FindOrganizationBySubdomain(ctx context.Context, subdomain string) (*domain.Organization, error) {
	query := `
		SELECT org_id, name, tier, features, subdomain, branding, created_at, is_active
		FROM organizations
		WHERE subdomain = $1;
	`
	org, err := r.scanOrganization(r.db.QueryRow(ctx, query, subdomain))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization by subdomain %s: %w", subdomain, err)
	}
	return org, nil
}

func (r *PgxOrganizationRepository) ListOrganizations(ctx context.Context) ([]domain.Organization, error) {
	query := `
        SELECT org_id, name, tier, features, subdomain, branding, created_at, is_active
        FROM organizations
        ORDER BY created_at DESC, org_id;
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations: %w", err)
	}
	defer rows.Close()

	orgs := []domain.Organization{}
	for rows.Next() {
		org, err := r.scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization row: %w", err)
		}
		orgs = append(orgs, *org)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating organization rows: %w", rows.Err())
	}
	return orgs, nil
}

func (r *PgxOrganizationRepository) scanOrganization(row pgx.Row) (*domain.Organization, error) {
	var org domain.Organization
	var tier string
	err := row.Scan(
		&org.OrgID,
		&org.Name,
		&tier,
		&org.Features,
		&org.Subdomain,
		&org.Branding,
		&org.CreatedAt,
		&org.IsActive,
	)
	if err != nil {
		return nil, err
	}
	org.Tier = domain.OrganizationTier(tier)
	return &org, nil
}
