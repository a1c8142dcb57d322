package dto

import (
	"github.com/SscSPs/advisor_client_app/internal/core/domain"
)

// AdvisorInfo is the public projection of an advisor (or, for client lookups, a client) record.
type AdvisorInfo struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	AdvisorID string `json:"advisorID"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// UpdateAdvisorRequest defines the profile fields an advisor may overwrite.
type UpdateAdvisorRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
}

// ToProfile converts the request into a domain profile.
func (r UpdateAdvisorRequest) ToProfile() domain.Profile {
	return domain.Profile{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Phone:     r.Phone,
		Company:   r.Company,
	}
}

// ListAdvisorsResponse wraps the list of advisors.
type ListAdvisorsResponse struct {
	Advisors []AdvisorInfo `json:"advisors"`
}

// ToAdvisorInfo projects an advisor record.
func ToAdvisorInfo(u *domain.User) AdvisorInfo {
	return AdvisorInfo{
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		AdvisorID: u.AdvisorIDOrEmpty(),
		Address:   u.Address,
		City:      u.City,
		State:     u.State,
		Phone:     u.Phone,
		Company:   u.Company,
	}
}

// ToClientLookupInfo projects a client record into the advisor-shaped profile returned by
// client lookups, with the AdvisorID slot carrying the client identifier.
func ToClientLookupInfo(u *domain.User) AdvisorInfo {
	info := ToAdvisorInfo(u)
	info.AdvisorID = u.ClientIDOrEmpty()
	return info
}

// ToListAdvisorsResponse converts a slice of domain.User to ListAdvisorsResponse DTO
func ToListAdvisorsResponse(users []domain.User) ListAdvisorsResponse {
	advisors := make([]AdvisorInfo, len(users))
	for i := range users {
		advisors[i] = ToAdvisorInfo(&users[i])
	}
	return ListAdvisorsResponse{Advisors: advisors}
}
