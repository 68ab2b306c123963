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

type PgxWorkTypeRepository struct {
	db *pgxpool.Pool
}

func newPgxWorkTypeRepository(db *pgxpool.Pool) portsrepo.WorkTypeRepository {
	return &PgxWorkTypeRepository{db: db}
}

var _ portsrepo.WorkTypeRepository = (*PgxWorkTypeRepository)(nil)

func (r *PgxWorkTypeRepository) SaveWorkType(ctx context.Context, wt domain.WorkType) error {
	query := `
        INSERT INTO work_types (work_type_id, user_id, org_id, name, icon, color, is_default, sort_order, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        ON CONFLICT (work_type_id) DO UPDATE SET
            name = EXCLUDED.name,
            icon = EXCLUDED.icon,
            color = EXCLUDED.color,
            sort_order = EXCLUDED.sort_order,
            is_active = EXCLUDED.is_active;
    `
	_, err := r.db.Exec(ctx, query,
		wt.WorkTypeID,
		wt.UserID,
		wt.OrgID,
		wt.Name,
		wt.Icon,
		wt.Color,
		wt.IsDefault,
		wt.SortOrder,
		wt.IsActive,
		wt.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save work type: %w", err)
	}
	return nil
}

// FindWorkTypeByID does not filter on is_active, so soft-deleted work types
// remain retrievable by id.
func (r *PgxWorkTypeRepository) FindWorkTypeByID(ctx context.Context, workTypeID string) (*domain.WorkType, error) {
	query := `
		SELECT work_type_id, user_id, org_id, name, icon, color, is_default, sort_order, is_active, created_at
		FROM work_types
		WHERE work_type_id = $1;
	`
	wt, err := r.scanWorkType(r.db.QueryRow(ctx, query, workTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find work type by ID %s: %w", workTypeID, err)
	}
	return wt, nil
}

func (r *PgxWorkTypeRepository) ListWorkTypesByScope(ctx context.Context, scope domain.Scope) ([]domain.WorkType, error) {
	conds := []string{"is_active = TRUE"}
	conds, args := appendScopeConditions(scope, "user_id", "org_id", conds, nil)
	query := `
        SELECT work_type_id, user_id, org_id, name, icon, color, is_default, sort_order, is_active, created_at
        FROM work_types` + whereClause(conds) + `
        ORDER BY sort_order, created_at, work_type_id;
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query work types: %w", err)
	}
	defer rows.Close()

	wts := []domain.WorkType{}
	for rows.Next() {
		wt, err := r.scanWorkType(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work type row: %w", err)
		}
		wts = append(wts, *wt)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating work type rows: %w", rows.Err())
	}
	return wts, nil
}

func (r *PgxWorkTypeRepository) MarkWorkTypeInactive(ctx context.Context, workTypeID string) error {
	query := `UPDATE work_types SET is_active = FALSE WHERE work_type_id = $1;`
	tag, err := r.db.Exec(ctx, query, workTypeID)
	if err != nil {
		return fmt.Errorf("failed to soft-delete work type %s: %w", workTypeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxWorkTypeRepository) scanWorkType(row pgx.Row) (*domain.WorkType, error) {
	var wt domain.WorkType
	err := row.Scan(
		&wt.WorkTypeID,
		&wt.UserID,
		&wt.OrgID,
		&wt.Name,
		&wt.Icon,
		&wt.Color,
		&wt.IsDefault,
		&wt.SortOrder,
		&wt.IsActive,
		&wt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &wt, nil
}
