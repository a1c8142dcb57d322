package models

import (
	"database/sql"
	"time"
)

// AuditFields mirrors the audit columns of the users table.
type AuditFields struct {
	CreatedDate  time.Time `db:"created_date"`
	ModifiedDate time.Time `db:"modified_date"`
	ModifiedBy   string    `db:"modified_by"`
}

// User is the row shape of the users table.
type User struct {
	UserID       int64  `db:"user_id"`
	Email        string `db:"email"`
	PasswordHash []byte `db:"password_hash"`
	PasswordSalt []byte `db:"password_salt"`
	FirstName    string `db:"first_name"`
	LastName     string `db:"last_name"`
	SortName     string `db:"sort_name"`
	Address      string `db:"address"`
	City         string `db:"city"`
	State        string `db:"state"`
	Phone        string `db:"phone"`
	Company      string `db:"company"`

	AdvisorID sql.NullString `db:"advisor_id"`
	ClientID  sql.NullString `db:"client_id"`
	AgentID   sql.NullString `db:"agent_id"`
	RoleID    int            `db:"role_id"`

	Active      int `db:"active"`
	DeletedFlag int `db:"deleted_flag"`
	AuditFields

	VerificationToken  string         `db:"verification_token"`
	PasswordResetToken sql.NullString `db:"password_reset_token"`
	ResetTokenExpires  sql.NullTime   `db:"reset_token_expires"`
}

// AdvisorClient is the row shape of the advisor_clients table.
type AdvisorClient struct {
	ID        int64 `db:"id"`
	AdvisorID int64 `db:"advisor_id"`
	ClientID  int64 `db:"client_id"`
}
