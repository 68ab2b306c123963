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

type PgxCaseworkerRepository struct {
	db *pgxpool.Pool
}

func newPgxCaseworkerRepository(db *pgxpool.Pool) portsrepo.CaseworkerRepository {
	return &PgxCaseworkerRepository{db: db}
}

var _ portsrepo.CaseworkerRepository = (*PgxCaseworkerRepository)(nil)

func (r *PgxCaseworkerRepository) SaveCaseworker(ctx context.Context, cw domain.Caseworker) error {
	query := `
        INSERT INTO caseworkers (caseworker_id, org_id, email, name, password_hash, role, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (caseworker_id) DO UPDATE SET
            email = EXCLUDED.email,
            name = EXCLUDED.name,
            password_hash = EXCLUDED.password_hash,
            role = EXCLUDED.role,
            is_active = EXCLUDED.is_active;
    `
	_, err := r.db.Exec(ctx, query,
		cw.CaseworkerID,
		cw.OrgID,
		cw.Email,
		cw.Name,
		cw.PasswordHash,
		string(cw.Role),
		cw.IsActive,
		cw.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save caseworker: %w", err)
	}
	return nil
}

func (r *PgxCaseworkerRepository) FindCaseworkerByID(ctx context.Context, caseworkerID string) (*domain.Caseworker, error) {
	query := `
		SELECT caseworker_id, org_id, email, name, password_hash, role, is_active, created_at
		FROM caseworkers
		WHERE caseworker_id = $1;
	`
	cw, err := r.scanCaseworker(r.db.QueryRow(ctx, query, caseworkerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find caseworker by ID %s: %w", caseworkerID, err)
	}
	return cw, nil
}

func (r *PgxCaseworkerRepository) FindCaseworkerByEmail(ctx context.Context, orgID, email string) (*domain.Caseworker, error) {
	query := `
		SELECT caseworker_id, org_id, email, name, password_hash, role, is_active, created_at
		FROM caseworkers
		WHERE org_id = $1 AND email = $2;
	`
	cw, err := r.scanCaseworker(r.db.QueryRow(ctx, query, orgID, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find caseworker by email: %w", err)
	}
	return cw, nil
}

func (r *PgxCaseworkerRepository) ListCaseworkersByOrg(ctx context.Context, orgID string) ([]domain.Caseworker, error) {
	query := `
        SELECT caseworker_id, org_id, email, name, password_hash, role, is_active, created_at
        FROM caseworkers
        WHERE org_id = $1 AND is_active = TRUE
        ORDER BY created_at, caseworker_id;
    `
	rows, err := r.db.Query(ctx, query, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to query caseworkers: %w", err)
	}
	defer rows.Close()

	cws := []domain.Caseworker{}
	for rows.Next() {
		cw, err := r.scanCaseworker(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan caseworker row: %w", err)
		}
		cws = append(cws, *cw)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating caseworker rows: %w", rows.Err())
	}
	return cws, nil
}

func (r *PgxCaseworkerRepository) scanCaseworker(row pgx.Row) (*domain.Caseworker, error) {
	var cw domain.Caseworker
	var role string
	err := row.Scan(
		&cw.CaseworkerID,
		&cw.OrgID,
		&cw.Email,
		&cw.Name,
		&cw.PasswordHash,
		&role,
		&cw.IsActive,
		&cw.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	cw.Role = domain.CaseworkerRole(role)
	return &cw, nil
}
