package services

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/apperrors"
	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	portsrepo "github.com/SscSPs/advisor_client_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/dto"
)

const (
	defaultResetTokenTTL  = 24 * time.Hour
	defaultInsertAttempts = 100

	resetEmailSubject    = "token to reset password"
	resetEmailBodyPrefix = "use this token within one day "
)

// advisorService implements the AdvisorSvcFacade interface
type advisorService struct {
	BaseService
	userRepo          portsrepo.UserRepositoryFacade
	linkRepo          portsrepo.AdvisorClientRepositoryFacade
	credentials       portssvc.CredentialSvcFacade
	mailer            portssvc.EmailSender
	resetTokenTTL     time.Duration
	consumeResetToken bool
	insertAttempts    uint64
}

// AdvisorOption is a functional option for configuring the advisor service
type AdvisorOption func(*advisorService)

// WithClock sets the clock used for audit timestamps and reset token expiry.
func WithClock(now func() time.Time) AdvisorOption {
	return func(s *advisorService) {
		s.now = now
	}
}

// WithEmailSender adds the sender used for password reset emails.
func WithEmailSender(sender portssvc.EmailSender) AdvisorOption {
	return func(s *advisorService) {
		s.mailer = sender
	}
}

// WithResetTokenTTL sets how long an issued reset token stays valid.
func WithResetTokenTTL(ttl time.Duration) AdvisorOption {
	return func(s *advisorService) {
		s.resetTokenTTL = ttl
	}
}

// WithConsumeResetToken controls whether a successful reset clears the stored token.
// When false a token stays usable until it expires.
func WithConsumeResetToken(consume bool) AdvisorOption {
	return func(s *advisorService) {
		s.consumeResetToken = consume
	}
}

// WithInsertAttempts bounds how many times an insert is retried after an identifier collision.
func WithInsertAttempts(n uint64) AdvisorOption {
	return func(s *advisorService) {
		s.insertAttempts = n
	}
}

// NewAdvisorService creates the advisor directory service with the provided options
func NewAdvisorService(userRepo portsrepo.UserRepositoryFacade, linkRepo portsrepo.AdvisorClientRepositoryFacade, credentials portssvc.CredentialSvcFacade, options ...AdvisorOption) portssvc.AdvisorSvcFacade {
	svc := &advisorService{
		userRepo:          userRepo,
		linkRepo:          linkRepo,
		credentials:       credentials,
		resetTokenTTL:     defaultResetTokenTTL,
		consumeResetToken: true,
		insertAttempts:    defaultInsertAttempts,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.AdvisorSvcFacade = (*advisorService)(nil)

// findActiveUserByEmail hides soft-deleted records behind ErrNotFound.
func (s *advisorService) findActiveUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user.Deleted {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *advisorService) CreateAdvisor(ctx context.Context, req dto.AdvisorRegisterRequest) (*domain.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		s.LogError(ctx, err, "Failed to check email uniqueness", slog.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, salt, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("email", req.Email))
		return nil, err
	}

	verificationToken, err := s.credentials.GenerateOneTimeToken(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	var user domain.User
	err = reroll(ctx, s.insertAttempts, func(ctx context.Context) error {
		advisorID, err := s.credentials.GenerateAdvisorID(ctx)
		if err != nil {
			return err
		}

		user = domain.User{
			Email:        req.Email,
			PasswordHash: hash,
			PasswordSalt: salt,
			AdvisorID:    &advisorID,
			RoleID:       domain.RoleAdvisor,
			Active:       true,
			AuditFields: domain.AuditFields{
				CreatedDate:  now,
				ModifiedDate: now,
				ModifiedBy:   advisorID,
			},
			VerificationToken: verificationToken,
		}
		user.ApplyProfile(domain.Profile{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
			City:      req.City,
			State:     req.State,
			Phone:     req.Phone,
			Company:   req.Company,
		})

		id, err := s.userRepo.SaveUser(ctx, user)
		if err != nil {
			return err
		}
		user.UserID = id
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateEmail) {
			s.LogError(ctx, err, "Failed to create advisor", slog.String("email", req.Email))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Advisor registered",
		slog.String("email", user.Email),
		slog.String("advisor_id", user.AdvisorIDOrEmpty()))
	return &user, nil
}

func (s *advisorService) LoginAdvisor(ctx context.Context, req dto.LoginRequest) (string, error) {
	user, err := s.findActiveUserByEmail(ctx, req.Email)
	if err != nil {
		return "", err
	}

	if !s.credentials.VerifyPassword(req.Password, user.PasswordHash, user.PasswordSalt) {
		s.LogInfo(ctx, "Login rejected: wrong password", slog.String("email", req.Email))
		return "", apperrors.ErrInvalidCredential
	}

	return s.credentials.IssueSessionToken(ctx, user)
}

func (s *advisorService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	user, err := s.findActiveUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	token, err := s.credentials.GenerateOneTimeToken(ctx)
	if err != nil {
		return "", err
	}

	expiresAt := s.Now().Add(s.resetTokenTTL)
	if err := s.userRepo.UpdateResetToken(ctx, user.UserID, token, expiresAt); err != nil {
		s.LogError(ctx, err, "Failed to store reset token", slog.Int64("user_id", user.UserID))
		return "", fmt.Errorf("failed to store reset token: %w", err)
	}

	return token, nil
}

func (s *advisorService) ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error) {
	token, err := s.RequestPasswordReset(ctx, req.Email)
	if err != nil {
		return "", err
	}
	s.sendResetEmail(ctx, req.Email, token)
	return token, nil
}

// sendResetEmail delivers the token in the background. Failures are only logged.
func (s *advisorService) sendResetEmail(ctx context.Context, to, token string) {
	if s.mailer == nil {
		s.LogDebug(ctx, "No email sender configured, skipping reset email", slog.String("email", to))
		return
	}

	ctx = context.WithoutCancel(ctx)
	go func() {
		if err := s.mailer.SendEmail(ctx, to, resetEmailSubject, resetEmailBodyPrefix+token); err != nil {
			s.LogError(ctx, err, "Failed to send password reset email", slog.String("email", to))
		}
	}()
}

func (s *advisorService) ResetPassword(ctx context.Context, req dto.PasswordResetRequest) error {
	user, err := s.findActiveUserByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	// A consumed (or never issued) token can not be matched.
	if user.PasswordResetToken == nil || *user.PasswordResetToken == "" {
		return apperrors.ErrUnauthorized
	}

	now := s.Now()
	if user.ResetTokenExpired(now) {
		return apperrors.ErrExpired
	}

	if subtle.ConstantTimeCompare([]byte(*user.PasswordResetToken), []byte(req.Token)) != 1 {
		s.LogInfo(ctx, "Password reset rejected: token mismatch", slog.String("email", req.Email))
		return apperrors.ErrUnauthorized
	}

	hash, salt, err := s.credentials.HashPassword(req.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.UserID, hash, salt, s.consumeResetToken, now); err != nil {
		s.LogError(ctx, err, "Failed to update password", slog.Int64("user_id", user.UserID))
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.LogInfo(ctx, "Password reset", slog.String("email", req.Email))
	return nil
}

func (s *advisorService) GetAdvisorInfo(ctx context.Context, email string) (*domain.User, error) {
	return s.findActiveUserByEmail(ctx, email)
}

func (s *advisorService) GetAllAdvisors(ctx context.Context) ([]domain.User, error) {
	advisors, err := s.userRepo.FindAdvisors(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list advisors")
		return nil, err
	}
	return advisors, nil
}

// GetAllClientsForAdvisor returns the advisor's non-deleted clients in link order.
func (s *advisorService) GetAllClientsForAdvisor(ctx context.Context, email string) ([]domain.User, error) {
	advisor, err := s.findActiveUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	clientIDs, err := s.linkRepo.FindClientIDsForAdvisor(ctx, advisor.UserID)
	if err != nil {
		s.LogError(ctx, err, "Failed to read advisor clients", slog.Int64("advisor_user_id", advisor.UserID))
		return nil, err
	}
	if len(clientIDs) == 0 {
		return []domain.User{}, nil
	}

	users, err := s.userRepo.FindUsersByIDs(ctx, clientIDs)
	if err != nil {
		s.LogError(ctx, err, "Failed to load clients", slog.Int64("advisor_user_id", advisor.UserID))
		return nil, err
	}

	byID := make(map[int64]domain.User, len(users))
	for _, u := range users {
		byID[u.UserID] = u
	}

	clients := make([]domain.User, 0, len(clientIDs))
	for _, id := range clientIDs {
		u, ok := byID[id]
		if !ok || u.Deleted {
			continue
		}
		clients = append(clients, u)
	}
	return clients, nil
}

// UpdateAdvisor overwrites the profile of the record registered under email.
// Soft-deleted records are updated too.
func (s *advisorService) UpdateAdvisor(ctx context.Context, email string, req dto.UpdateAdvisorRequest) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	user.ApplyProfile(req.ToProfile())
	user.ModifiedDate = s.Now()
	user.ModifiedBy = user.AdvisorIDOrEmpty()

	if err := s.userRepo.UpdateProfile(ctx, *user); err != nil {
		s.LogError(ctx, err, "Failed to update advisor", slog.String("email", email))
		return nil, fmt.Errorf("failed to update advisor: %w", err)
	}
	return user, nil
}

func (s *advisorService) AddClient(ctx context.Context, advisorEmail string, req dto.CreateClientRequest) (*domain.User, error) {
	advisor, err := s.findActiveUserByEmail(ctx, advisorEmail)
	if err != nil {
		return nil, err
	}
	if !advisor.IsAdvisor() {
		return nil, apperrors.ErrNotFound
	}

	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	now := s.Now()
	var client domain.User
	err = reroll(ctx, s.insertAttempts, func(ctx context.Context) error {
		clientID, err := s.credentials.GenerateClientID(ctx)
		if err != nil {
			return err
		}

		client = domain.User{
			Email:    req.Email,
			ClientID: &clientID,
			RoleID:   domain.RoleClient,
			Active:   true,
			AuditFields: domain.AuditFields{
				CreatedDate:  now,
				ModifiedDate: now,
				ModifiedBy:   advisor.AdvisorIDOrEmpty(),
			},
		}
		client.ApplyProfile(domain.Profile{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Address:   req.Address,
			City:      req.City,
			State:     req.State,
			Phone:     req.Phone,
			Company:   req.Company,
		})

		link, err := s.linkRepo.CreateLinkedClient(ctx, client, advisor.UserID)
		if err != nil {
			return err
		}
		client.UserID = link.ClientID
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateEmail) {
			s.LogError(ctx, err, "Failed to add client", slog.String("advisor_email", advisorEmail))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Client added",
		slog.String("advisor_email", advisorEmail),
		slog.String("client_id", client.ClientIDOrEmpty()))
	return &client, nil
}

// findActiveClient looks a client up by identifier, hiding soft-deleted records.
func (s *advisorService) findActiveClient(ctx context.Context, clientID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByClientID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if user.Deleted {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func (s *advisorService) GetClientInfo(ctx context.Context, clientID string) (*domain.User, error) {
	return s.findActiveClient(ctx, clientID)
}

func (s *advisorService) DeleteUser(ctx context.Context, clientID string) error {
	user, err := s.findActiveClient(ctx, clientID)
	if err != nil {
		return err
	}

	if err := s.userRepo.MarkUserDeleted(ctx, user.UserID, s.Now(), clientID); err != nil {
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}

	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
