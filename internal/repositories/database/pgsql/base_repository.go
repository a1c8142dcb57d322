package pgsql

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SscSPs/advisor_client_app/internal/apperrors"
	portsrepo "github.com/SscSPs/advisor_client_app/internal/core/ports/repositories"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBPool is the subset of *pgxpool.Pool the repositories depend on.
type DBPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// rowQuerier is implemented by both the pool and a transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Unique constraint names created by the migrations.
const (
	constraintUsersEmail     = "users_email_key"
	constraintUsersAdvisorID = "users_advisor_id_key"
	constraintUsersClientID  = "users_client_id_key"
)

// psql builds PostgreSQL flavoured statements.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool DBPool
}

var _ portsrepo.TransactionManager = (*BaseRepository)(nil)

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// mapUniqueViolation translates unique constraint failures on the users table.
// Email collisions are a caller error; identifier collisions ask the caller to re-roll.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgerrcode.UniqueViolation {
		return err
	}
	switch pgErr.ConstraintName {
	case constraintUsersEmail:
		return apperrors.ErrDuplicateEmail
	case constraintUsersAdvisorID, constraintUsersClientID:
		return apperrors.ErrIdentifierConflict
	default:
		return err
	}
}
