package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/apperrors"
	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	portsrepo "github.com/SscSPs/advisor_client_app/internal/core/ports/repositories"
	"github.com/SscSPs/advisor_client_app/internal/models"
	"github.com/SscSPs/advisor_client_app/internal/utils/mapping"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// userColumns lists the users columns in the order scanUser expects them.
var userColumns = []string{
	"user_id", "email", "password_hash", "password_salt",
	"first_name", "last_name", "sort_name", "address", "city", "state", "phone", "company",
	"advisor_id", "client_id", "agent_id", "role_id", "active", "deleted_flag",
	"created_date", "modified_date", "modified_by",
	"verification_token", "password_reset_token", "reset_token_expires",
}

const insertUserSQL = `
        INSERT INTO users (
            email, password_hash, password_salt,
            first_name, last_name, sort_name, address, city, state, phone, company,
            advisor_id, client_id, agent_id, role_id, active, deleted_flag,
            created_date, modified_date, modified_by, verification_token
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
        RETURNING user_id;
    `

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db DBPool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func scanUser(row pgx.Row) (models.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID, &m.Email, &m.PasswordHash, &m.PasswordSalt,
		&m.FirstName, &m.LastName, &m.SortName, &m.Address, &m.City, &m.State, &m.Phone, &m.Company,
		&m.AdvisorID, &m.ClientID, &m.AgentID, &m.RoleID, &m.Active, &m.DeletedFlag,
		&m.CreatedDate, &m.ModifiedDate, &m.ModifiedBy,
		&m.VerificationToken, &m.PasswordResetToken, &m.ResetTokenExpires,
	)
	return m, err
}

// insertUser inserts m through q and returns the generated id.
func insertUser(ctx context.Context, q rowQuerier, m models.User) (int64, error) {
	var id int64
	err := q.QueryRow(ctx, insertUserSQL,
		m.Email, m.PasswordHash, m.PasswordSalt,
		m.FirstName, m.LastName, m.SortName, m.Address, m.City, m.State, m.Phone, m.Company,
		m.AdvisorID, m.ClientID, m.AgentID, m.RoleID, m.Active, m.DeletedFlag,
		m.CreatedDate, m.ModifiedDate, m.ModifiedBy, m.VerificationToken,
	).Scan(&id)
	if err != nil {
		return 0, mapUniqueViolation(err)
	}
	return id, nil
}

func (r *PgxUserRepository) findOne(ctx context.Context, builder sq.SelectBuilder, what string) (*domain.User, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query for %s: %w", what, err)
	}

	m, err := scanUser(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user by %s: %w", what, err)
	}

	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) findMany(ctx context.Context, builder sq.SelectBuilder, what string) ([]domain.User, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query for %s: %w", what, err)
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", what, err)
	}
	defer rows.Close()

	var ms []models.User
	for rows.Next() {
		m, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", what, err)
	}

	return mapping.ToDomainUserSlice(ms), nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID int64) (*domain.User, error) {
	return r.findOne(ctx, psql.Select(userColumns...).From("users").Where(sq.Eq{"user_id": userID}), "id")
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, psql.Select(userColumns...).From("users").Where(sq.Eq{"email": email}), "email")
}

func (r *PgxUserRepository) FindUserByClientID(ctx context.Context, clientID string) (*domain.User, error) {
	return r.findOne(ctx, psql.Select(userColumns...).From("users").Where(sq.Eq{"client_id": clientID}), "client id")
}

func (r *PgxUserRepository) FindUsersByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error) {
	if len(userIDs) == 0 {
		return []domain.User{}, nil
	}
	return r.findMany(ctx, psql.Select(userColumns...).From("users").Where(sq.Eq{"user_id": userIDs}), "users by id")
}

func (r *PgxUserRepository) FindAdvisors(ctx context.Context) ([]domain.User, error) {
	builder := psql.Select(userColumns...).From("users").
		Where(sq.NotEq{"advisor_id": nil}).
		Where(sq.Eq{"deleted_flag": 0}).
		OrderBy("user_id")
	return r.findMany(ctx, builder, "advisors")
}

func (r *PgxUserRepository) exists(ctx context.Context, column, value string) (bool, error) {
	query, args, err := psql.Select("1").Prefix("SELECT EXISTS (").
		From("users").Where(sq.Eq{column: value}).Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s existence query: %w", column, err)
	}

	var found bool
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&found); err != nil {
		return false, fmt.Errorf("failed to check %s: %w", column, err)
	}
	return found, nil
}

func (r *PgxUserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email", email)
}

func (r *PgxUserRepository) AdvisorIDExists(ctx context.Context, advisorID string) (bool, error) {
	return r.exists(ctx, "advisor_id", advisorID)
}

func (r *PgxUserRepository) ClientIDExists(ctx context.Context, clientID string) (bool, error) {
	return r.exists(ctx, "client_id", clientID)
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) (int64, error) {
	id, err := insertUser(ctx, r.Pool, mapping.ToModelUser(user))
	if err != nil {
		return 0, fmt.Errorf("failed to save user: %w", err)
	}
	return id, nil
}

// execOne runs a single-row UPDATE and reports ErrNotFound when nothing matched.
func (r *PgxUserRepository) execOne(ctx context.Context, what, query string, args ...any) error {
	cmdTag, err := r.Pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to %s: %w", what, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateProfile(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
        UPDATE users
        SET first_name = $2, last_name = $3, sort_name = $4, address = $5, city = $6,
            state = $7, phone = $8, company = $9, modified_date = $10, modified_by = $11
        WHERE user_id = $1;
    `
	return r.execOne(ctx, "update user profile", query,
		m.UserID, m.FirstName, m.LastName, m.SortName, m.Address, m.City,
		m.State, m.Phone, m.Company, m.ModifiedDate, m.ModifiedBy,
	)
}

func (r *PgxUserRepository) UpdatePassword(ctx context.Context, userID int64, hash, salt []byte, clearResetToken bool, modifiedAt time.Time) error {
	query := `
        UPDATE users
        SET password_hash = $2, password_salt = $3, modified_date = $4
        WHERE user_id = $1;
    `
	if clearResetToken {
		query = `
        UPDATE users
        SET password_hash = $2, password_salt = $3, modified_date = $4,
            password_reset_token = NULL, reset_token_expires = NULL
        WHERE user_id = $1;
    `
	}
	return r.execOne(ctx, "update password", query, userID, hash, salt, modifiedAt)
}

func (r *PgxUserRepository) UpdateResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error {
	query := `
        UPDATE users
        SET password_reset_token = $2, reset_token_expires = $3
        WHERE user_id = $1;
    `
	return r.execOne(ctx, "store reset token", query, userID, token, expiresAt)
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID int64, modifiedAt time.Time, modifiedBy string) error {
	query := `
        UPDATE users
        SET deleted_flag = 1, active = 0, modified_date = $2, modified_by = $3
        WHERE user_id = $1;
    `
	return r.execOne(ctx, "mark user deleted", query, userID, modifiedAt, modifiedBy)
}
