package repositories

import (
	"context"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
)

// AdvisorClientRepositoryFacade manages the advisor to client relation.
type AdvisorClientRepositoryFacade interface {
	// FindClientIDsForAdvisor returns the internal ids of the advisor's clients in link-table order.
	FindClientIDsForAdvisor(ctx context.Context, advisorUserID int64) ([]int64, error)

	// CreateLinkedClient inserts client and links it to advisorUserID in one transaction.
	CreateLinkedClient(ctx context.Context, client domain.User, advisorUserID int64) (*domain.AdvisorClient, error)
}
