package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicateEmail indicates that an account with the given email already exists.
var ErrDuplicateEmail = errors.New("email already exists")

// ErrInvalidCredential indicates that the supplied password does not match the stored hash.
var ErrInvalidCredential = errors.New("wrong password")

// ErrExpired indicates that a password reset token is past its expiry.
var ErrExpired = errors.New("session expired")

// ErrUnauthorized indicates that a supplied reset token does not match the stored one.
var ErrUnauthorized = errors.New("not authorized")

// ErrIdentifierConflict is returned by repositories when an insert collides on a generated
// identifier column (advisor_id, client_id). Callers re-roll the identifier and try again.
var ErrIdentifierConflict = errors.New("generated identifier already taken")

// ErrIdentifierExhausted indicates that the identifier generator gave up after the configured
// number of attempts.
var ErrIdentifierExhausted = errors.New("could not allocate a unique identifier")

// Kind enumerates the outcomes callers are expected to distinguish.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindDuplicateEmail
	KindInvalidCredential
	KindExpired
	KindUnauthorized
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindValidation:
		return "Validation"
	case KindDuplicateEmail:
		return "DuplicateEmail"
	case KindInvalidCredential:
		return "InvalidCredential"
	case KindExpired:
		return "Expired"
	case KindUnauthorized:
		return "Unauthorized"
	default:
		return "Internal"
	}
}

// KindOf classifies err. Anything that is not one of the known sentinels is KindInternal.
func KindOf(err error) Kind {
	switch {
	case errors.Is(err, ErrNotFound):
		return KindNotFound
	case errors.Is(err, ErrValidation):
		return KindValidation
	case errors.Is(err, ErrDuplicateEmail):
		return KindDuplicateEmail
	case errors.Is(err, ErrInvalidCredential):
		return KindInvalidCredential
	case errors.Is(err, ErrExpired):
		return KindExpired
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	default:
		return KindInternal
	}
}

// AppError carries an HTTP-ish status code alongside a message for infrastructure failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError wraps err with a code and message.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
