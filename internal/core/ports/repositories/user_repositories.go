package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
)

// UserReader defines read operations for user data.
// Single-record lookups return records regardless of the soft-delete flag; callers decide.
type UserReader interface {
	// FindUserByID retrieves a user by internal id.
	FindUserByID(ctx context.Context, userID int64) (*domain.User, error)

	// FindUserByEmail retrieves the user registered under email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByClientID retrieves the user carrying the given client identifier.
	FindUserByClientID(ctx context.Context, clientID string) (*domain.User, error)

	// FindUsersByIDs retrieves the users with the given internal ids, in no particular order.
	FindUsersByIDs(ctx context.Context, userIDs []int64) ([]domain.User, error)

	// FindAdvisors retrieves every non-deleted user that has an advisor identifier.
	FindAdvisors(ctx context.Context) ([]domain.User, error)
}

// IdentifierChecker answers uniqueness questions over generated identifier columns.
// All records count, soft-deleted ones included.
type IdentifierChecker interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	AdvisorIDExists(ctx context.Context, advisorID string) (bool, error)
	ClientIDExists(ctx context.Context, clientID string) (bool, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser inserts a new user and returns its internal id.
	SaveUser(ctx context.Context, user domain.User) (int64, error)

	// UpdateProfile overwrites the profile and audit columns of an existing user.
	UpdateProfile(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the password hash and salt. When clearResetToken is set the
	// stored reset token and expiry are cleared in the same statement.
	UpdatePassword(ctx context.Context, userID int64, hash, salt []byte, clearResetToken bool, modifiedAt time.Time) error

	// UpdateResetToken stores a new password reset token with its expiry.
	UpdateResetToken(ctx context.Context, userID int64, token string, expiresAt time.Time) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted sets the delete flag and deactivates the user (soft delete).
	MarkUserDeleted(ctx context.Context, userID int64, modifiedAt time.Time, modifiedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	IdentifierChecker
	UserWriter
	UserLifecycleManager
}
