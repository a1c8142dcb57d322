package services

import (
	portsrepo "github.com/SscSPs/advisor_client_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, mailer portssvc.EmailSender) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Credentials come first since the directory depends on them
	container.Credentials = NewCredentialService(cfg, repos.UserRepo)

	container.Advisor = NewAdvisorService(
		repos.UserRepo,
		repos.AdvisorClientRepo,
		container.Credentials,
		WithEmailSender(mailer),
		WithResetTokenTTL(cfg.ResetTokenExpiryDuration),
		WithConsumeResetToken(cfg.ConsumeResetToken),
		WithInsertAttempts(cfg.IDMaxAttempts),
	)

	return container
}
