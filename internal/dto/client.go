package dto

import (
	"github.com/SscSPs/advisor_client_app/internal/core/domain"
)

// ClientInfo is the projection of a client returned in an advisor's client list.
type ClientInfo struct {
	UserID    int64  `json:"userID"`
	ClientID  string `json:"clientID"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// CreateClientRequest registers a client under an advisor.
type CreateClientRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// ListClientsResponse wraps an advisor's clients.
type ListClientsResponse struct {
	Clients []ClientInfo `json:"clients"`
}

// ToClientInfo projects a client record.
func ToClientInfo(u *domain.User) ClientInfo {
	return ClientInfo{
		UserID:    u.UserID,
		ClientID:  u.ClientIDOrEmpty(),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address:   u.Address,
		City:      u.City,
		State:     u.State,
		Phone:     u.Phone,
		Company:   u.Company,
	}
}

// ToListClientsResponse converts a slice of domain.User to ListClientsResponse DTO
func ToListClientsResponse(users []domain.User) ListClientsResponse {
	clients := make([]ClientInfo, len(users))
	for i := range users {
		clients[i] = ToClientInfo(&users[i])
	}
	return ListClientsResponse{Clients: clients}
}
