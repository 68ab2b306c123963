package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fieldcollect/field_collections_app/internal/apperrors"
	"github.com/fieldcollect/field_collections_app/internal/core/domain"
	portsrepo "github.com/fieldcollect/field_collections_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	db *pgxpool.Pool
}

func newPgxSessionRepository(db *pgxpool.Pool) portsrepo.SessionRepository {
	return &PgxSessionRepository{db: db}
}

var _ portsrepo.SessionRepository = (*PgxSessionRepository)(nil)

// StartSessionExclusive guards the single-active-session invariant. The
// existence check catches an already-running session in one statement, but
// under READ COMMITTED two concurrent starts can each miss the other's
// uncommitted row, so the idx_sessions_one_active partial unique index is the
// real arbiter: the loser's insert fails with a unique violation, reported as
// the same conflict.
func (r *PgxSessionRepository) StartSessionExclusive(ctx context.Context, session domain.Session) error {
	query := `
        INSERT INTO sessions (session_id, user_id, org_id, work_type_id, location, start_time, end_time, is_test, is_active)
        SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9
        WHERE NOT EXISTS (
            SELECT 1 FROM sessions
            WHERE is_active = TRUE
              AND user_id IS NOT DISTINCT FROM $2
              AND org_id IS NOT DISTINCT FROM $3
        );
    `
	tag, err := r.db.Exec(ctx, query,
		session.SessionID,
		session.UserID,
		session.OrgID,
		session.WorkTypeID,
		session.Location,
		session.StartTime,
		session.EndTime,
		session.IsTest,
		session.IsActive,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("active session exists in scope: %w", apperrors.ErrConflict)
		}
		return fmt.Errorf("failed to start session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("active session exists in scope: %w", apperrors.ErrConflict)
	}
	return nil
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	query := `
        UPDATE sessions SET
            work_type_id = $2,
            location = $3,
            end_time = $4,
            is_test = $5,
            is_active = $6
        WHERE session_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		session.SessionID,
		session.WorkTypeID,
		session.Location,
		session.EndTime,
		session.IsTest,
		session.IsActive,
	)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	query := `
		SELECT session_id, user_id, org_id, work_type_id, location, start_time, end_time, is_test, is_active
		FROM sessions
		WHERE session_id = $1;
	`
	session, err := r.scanSession(r.db.QueryRow(ctx, query, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find session by ID %s: %w", sessionID, err)
	}
	return session, nil
}

func (r *PgxSessionRepository) FindActiveSession(ctx context.Context, scope domain.Scope) (*domain.Session, error) {
	conds := []string{"is_active = TRUE"}
	conds, args := appendScopeConditions(scope, "user_id", "org_id", conds, nil)
	query := `
        SELECT session_id, user_id, org_id, work_type_id, location, start_time, end_time, is_test, is_active
        FROM sessions` + whereClause(conds) + `
        ORDER BY start_time DESC, session_id
        LIMIT 1;
    `
	session, err := r.scanSession(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find active session: %w", err)
	}
	return session, nil
}

func (r *PgxSessionRepository) ListSessionsByScope(ctx context.Context, scope domain.Scope) ([]domain.Session, error) {
	conds, args := appendScopeConditions(scope, "user_id", "org_id", nil, nil)
	query := `
        SELECT session_id, user_id, org_id, work_type_id, location, start_time, end_time, is_test, is_active
        FROM sessions` + whereClause(conds) + `
        ORDER BY start_time DESC, session_id;
    `
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []domain.Session{}
	for rows.Next() {
		session, err := r.scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan session row: %w", err)
		}
		sessions = append(sessions, *session)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating session rows: %w", rows.Err())
	}
	return sessions, nil
}

func (r *PgxSessionRepository) scanSession(row pgx.Row) (*domain.Session, error) {
	var session domain.Session
	err := row.Scan(
		&session.SessionID,
		&session.UserID,
		&session.OrgID,
		&session.WorkTypeID,
		&session.Location,
		&session.StartTime,
		&session.EndTime,
		&session.IsTest,
		&session.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &session, nil
}
