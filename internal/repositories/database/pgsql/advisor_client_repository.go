package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	portsrepo "github.com/SscSPs/advisor_client_app/internal/core/ports/repositories"
	"github.com/SscSPs/advisor_client_app/internal/models"
	"github.com/SscSPs/advisor_client_app/internal/utils/mapping"
)

type PgxAdvisorClientRepository struct {
	BaseRepository
}

func newPgxAdvisorClientRepository(db DBPool) *PgxAdvisorClientRepository {
	return &PgxAdvisorClientRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AdvisorClientRepositoryFacade = (*PgxAdvisorClientRepository)(nil)

func (r *PgxAdvisorClientRepository) FindClientIDsForAdvisor(ctx context.Context, advisorUserID int64) ([]int64, error) {
	query := `SELECT client_id FROM advisor_clients WHERE advisor_id = $1 ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query, advisorUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query advisor clients: %w", err)
	}
	defer rows.Close()

	ids := []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan advisor client row: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating advisor client rows: %w", err)
	}
	return ids, nil
}

// CreateLinkedClient inserts the client row and its advisor link atomically.
func (r *PgxAdvisorClientRepository) CreateLinkedClient(ctx context.Context, client domain.User, advisorUserID int64) (*domain.AdvisorClient, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, err
	}

	clientUserID, err := insertUser(ctx, tx, mapping.ToModelUser(client))
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return nil, fmt.Errorf("failed to insert client: %w", err)
	}

	link := models.AdvisorClient{AdvisorID: advisorUserID, ClientID: clientUserID}
	query := `INSERT INTO advisor_clients (advisor_id, client_id) VALUES ($1, $2) RETURNING id;`
	if err := tx.QueryRow(ctx, query, link.AdvisorID, link.ClientID).Scan(&link.ID); err != nil {
		_ = r.Rollback(ctx, tx)
		return nil, fmt.Errorf("failed to link client to advisor: %w", err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, err
	}

	result := mapping.ToDomainAdvisorClient(link)
	return &result, nil
}
