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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
        INSERT INTO users (user_id, org_id, caseworker_id, name, pin_hash, device_id, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id) DO UPDATE SET
            org_id = EXCLUDED.org_id,
            caseworker_id = EXCLUDED.caseworker_id,
            name = EXCLUDED.name,
            pin_hash = EXCLUDED.pin_hash,
            device_id = EXCLUDED.device_id;
    `
	_, err := r.db.Exec(ctx, query,
		user.UserID,
		user.OrgID,
		user.CaseworkerID,
		user.Name,
		user.PINHash,
		user.DeviceID,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, org_id, caseworker_id, name, pin_hash, device_id, created_at
		FROM users
		WHERE user_id = $1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByDeviceID(ctx context.Context, deviceID string) (*domain.User, error) {
	query := `
		SELECT user_id, org_id, caseworker_id, name, pin_hash, device_id, created_at
		FROM users
		WHERE device_id = $1;
	`
	user, err := r.scanUser(r.db.QueryRow(ctx, query, deviceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by device: %w", err)
	}
	return user, nil
}

func (r *PgxUserRepository) ListUsersByScope(ctx context.Context, scope domain.Scope) ([]domain.User, error) {
	// A user's "user" dimension is its own primary key.
	conds, args := appendScopeConditions(scope, "user_id", "org_id", nil, nil)
	query := `
        SELECT user_id, org_id, caseworker_id, name, pin_hash, device_id, created_at
        FROM users` + whereClause(conds) + `
        ORDER BY created_at DESC, user_id;
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := r.scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, *user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.UserID,
		&user.OrgID,
		&user.CaseworkerID,
		&user.Name,
		&user.PINHash,
		&user.DeviceID,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
