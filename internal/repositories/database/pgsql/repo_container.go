package pgsql

import (
	portsrepo "github.com/SscSPs/advisor_client_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every repository to the same pool.
func NewRepositoryProvider(dbPool DBPool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:          newPgxUserRepository(dbPool),
		AdvisorClientRepo: newPgxAdvisorClientRepository(dbPool),
	}
}
