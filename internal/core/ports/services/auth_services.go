package services

import (
	"context"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
)

// PasswordSvc hashes and verifies passwords.
type PasswordSvc interface {
	// HashPassword returns the MAC of password under a freshly generated salt, and the salt.
	HashPassword(password string) (hash []byte, salt []byte, err error)

	// VerifyPassword reports whether password matches the stored hash under salt.
	VerifyPassword(password string, hash, salt []byte) bool
}

// TokenSvc issues session tokens and one-time identifiers.
type TokenSvc interface {
	// IssueSessionToken returns a signed, stateless session token for user.
	IssueSessionToken(ctx context.Context, user *domain.User) (string, error)

	// GenerateOneTimeToken returns a fresh hex token for verification or password reset.
	GenerateOneTimeToken(ctx context.Context) (string, error)
}

// IdentifierSvc allocates human-facing identifiers.
type IdentifierSvc interface {
	// GenerateAdvisorID returns an AdvisorID not present on any stored record.
	GenerateAdvisorID(ctx context.Context) (string, error)

	// GenerateClientID returns a ClientID not present on any stored record.
	GenerateClientID(ctx context.Context) (string, error)
}

// CredentialSvcFacade combines all credential-related service interfaces
type CredentialSvcFacade interface {
	PasswordSvc
	TokenSvc
	IdentifierSvc
}
