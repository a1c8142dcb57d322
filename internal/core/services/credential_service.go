package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	portsrepo "github.com/SscSPs/advisor_client_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/platform/config"
	"github.com/SscSPs/advisor_client_app/internal/utils"
)

const (
	// IdentifierAlphabet is the character set advisor and client identifiers are drawn from.
	IdentifierAlphabet = "A1BC2DE3FG5H6I7J4K8L9MN0OPQRSTUVWXYZ"

	advisorIDPrefix  = "A"
	clientIDPrefix   = "C"
	identifierSuffix = 5

	// oneTimeTokenBytes is the amount of entropy in verification and reset tokens (128 hex chars).
	oneTimeTokenBytes = 64
)

// credentialService hashes passwords, signs session tokens and allocates identifiers.
type credentialService struct {
	BaseService
	ids         portsrepo.IdentifierChecker
	random      io.Reader
	jwtSecret   string
	jwtIssuer   string
	jwtExpiry   time.Duration
	maxAttempts uint64
}

// CredentialOption is a functional option for configuring the credential service
type CredentialOption func(*credentialService)

// WithRandomSource replaces crypto/rand.Reader. The reader must be safe for concurrent use.
func WithRandomSource(r io.Reader) CredentialOption {
	return func(s *credentialService) {
		s.random = r
	}
}

// WithCredentialClock sets the clock used for token timestamps.
func WithCredentialClock(now func() time.Time) CredentialOption {
	return func(s *credentialService) {
		s.now = now
	}
}

// NewCredentialService creates a credential service backed by ids for uniqueness checks.
func NewCredentialService(cfg *config.Config, ids portsrepo.IdentifierChecker, options ...CredentialOption) portssvc.CredentialSvcFacade {
	svc := &credentialService{
		ids:         ids,
		random:      rand.Reader,
		jwtSecret:   cfg.JWTSecret,
		jwtIssuer:   cfg.JWTIssuer,
		jwtExpiry:   cfg.JWTExpiryDuration,
		maxAttempts: cfg.IDMaxAttempts,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.CredentialSvcFacade = (*credentialService)(nil)

func (s *credentialService) HashPassword(password string) ([]byte, []byte, error) {
	return utils.HashPassword(s.random, password)
}

func (s *credentialService) VerifyPassword(password string, hash, salt []byte) bool {
	return utils.CheckPasswordHash(password, hash, salt)
}

func (s *credentialService) IssueSessionToken(ctx context.Context, user *domain.User) (string, error) {
	token, err := utils.GenerateJWT(user.Email, domain.SessionRole, s.jwtSecret, s.jwtExpiry, s.jwtIssuer, s.Now())
	if err != nil {
		s.LogError(ctx, err, "Failed to sign session token", slog.String("email", user.Email))
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, nil
}

// GenerateOneTimeToken draws upper-case hex tokens until one is not present in the AdvisorID
// column. A 128 character token cannot equal a 6 character AdvisorID, so the loop runs once in
// practice; the check is kept against that column for compatibility with existing data.
func (s *credentialService) GenerateOneTimeToken(ctx context.Context) (string, error) {
	var token string
	err := reroll(ctx, s.maxAttempts, func(ctx context.Context) error {
		candidate, err := utils.GenerateSecureRandomString(s.random, oneTimeTokenBytes)
		if err != nil {
			return err
		}
		candidate = strings.ToUpper(candidate)

		taken, err := s.ids.AdvisorIDExists(ctx, candidate)
		if err != nil {
			return fmt.Errorf("failed to check token uniqueness: %w", err)
		}
		if taken {
			return errReroll
		}
		token = candidate
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate one-time token")
		return "", err
	}
	return token, nil
}

func (s *credentialService) GenerateAdvisorID(ctx context.Context) (string, error) {
	return s.generateIdentifier(ctx, advisorIDPrefix, s.ids.AdvisorIDExists)
}

func (s *credentialService) GenerateClientID(ctx context.Context) (string, error) {
	return s.generateIdentifier(ctx, clientIDPrefix, s.ids.ClientIDExists)
}

func (s *credentialService) generateIdentifier(ctx context.Context, prefix string, exists func(context.Context, string) (bool, error)) (string, error) {
	var id string
	err := reroll(ctx, s.maxAttempts, func(ctx context.Context) error {
		suffix, err := utils.RandomStringFromAlphabet(s.random, IdentifierAlphabet, identifierSuffix)
		if err != nil {
			return err
		}
		candidate := prefix + suffix

		taken, err := exists(ctx, candidate)
		if err != nil {
			return fmt.Errorf("failed to check identifier uniqueness: %w", err)
		}
		if taken {
			s.LogDebug(ctx, "Generated identifier already taken, re-rolling", slog.String("identifier", candidate))
			return errReroll
		}
		id = candidate
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to generate identifier", slog.String("prefix", prefix))
		return "", err
	}
	return id, nil
}
