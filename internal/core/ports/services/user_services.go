package services

import (
	"context"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	"github.com/SscSPs/advisor_client_app/internal/dto"
)

// AdvisorRegistrationSvc defines account creation and login.
type AdvisorRegistrationSvc interface {
	// CreateAdvisor registers a new advisor account.
	CreateAdvisor(ctx context.Context, req dto.AdvisorRegisterRequest) (*domain.User, error)

	// LoginAdvisor verifies credentials and returns a session token.
	LoginAdvisor(ctx context.Context, req dto.LoginRequest) (string, error)
}

// PasswordResetSvc defines the reset-token lifecycle.
type PasswordResetSvc interface {
	// RequestPasswordReset issues a new reset token for an authenticated user and returns it.
	RequestPasswordReset(ctx context.Context, email string) (string, error)

	// ForgotPassword issues a reset token, emails it to the user and returns it.
	ForgotPassword(ctx context.Context, req dto.ForgotPasswordRequest) (string, error)

	// ResetPassword replaces the password when the supplied reset token is valid.
	ResetPassword(ctx context.Context, req dto.PasswordResetRequest) error
}

// AdvisorReaderSvc defines read operations over advisors and their clients.
type AdvisorReaderSvc interface {
	GetAdvisorInfo(ctx context.Context, email string) (*domain.User, error)
	GetAllAdvisors(ctx context.Context) ([]domain.User, error)
	GetAllClientsForAdvisor(ctx context.Context, email string) ([]domain.User, error)
}

// AdvisorWriterSvc defines write operations on advisor profiles and their client book.
type AdvisorWriterSvc interface {
	UpdateAdvisor(ctx context.Context, email string, req dto.UpdateAdvisorRequest) (*domain.User, error)
	AddClient(ctx context.Context, advisorEmail string, req dto.CreateClientRequest) (*domain.User, error)
}

// ClientSvc defines operations addressed by client identifier.
type ClientSvc interface {
	GetClientInfo(ctx context.Context, clientID string) (*domain.User, error)

	// DeleteUser soft-deletes the client with the given client identifier.
	DeleteUser(ctx context.Context, clientID string) error
}

// AdvisorSvcFacade combines all advisor directory service interfaces
type AdvisorSvcFacade interface {
	AdvisorRegistrationSvc
	PasswordResetSvc
	AdvisorReaderSvc
	AdvisorWriterSvc
	ClientSvc
}
