package domain

import (
	"strings"
	"time"
)

// RoleID distinguishes advisors from clients on a user record.
type RoleID int

const (
	RoleAdvisor RoleID = 1
	RoleClient  RoleID = 2
)

// SessionRole is the role claim embedded in every issued session token.
const SessionRole = "advisor"

// User represents either an advisor or a client in the domain.
type User struct {
	UserID       int64  `json:"userID"` // Primary Key
	Email        string `json:"email"`
	PasswordHash []byte `json:"-"`
	PasswordSalt []byte `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	SortName  string `json:"sortName"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`

	AdvisorID *string `json:"advisorID,omitempty"`
	ClientID  *string `json:"clientID,omitempty"`
	AgentID   *string `json:"agentID,omitempty"`
	RoleID    RoleID  `json:"roleID"`

	Active  bool `json:"active"`
	Deleted bool `json:"deleted"` // Soft delete flag
	AuditFields

	VerificationToken  string     `json:"-"`
	PasswordResetToken *string    `json:"-"`
	ResetTokenExpires  *time.Time `json:"-"`
}

// Profile is the subset of user fields that can be changed after registration.
type Profile struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	Phone     string
	Company   string
}

// SortNameFor derives the "Last, First" sort key stored alongside a user.
func SortNameFor(firstName, lastName string) string {
	return lastName + ", " + firstName
}

// ApplyProfile overwrites the profile fields and recomputes the sort name.
func (u *User) ApplyProfile(p Profile) {
	u.FirstName = p.FirstName
	u.LastName = p.LastName
	u.Address = p.Address
	u.City = p.City
	u.State = p.State
	u.Phone = p.Phone
	u.Company = p.Company
	u.SortName = SortNameFor(p.FirstName, p.LastName)
}

// IsAdvisor reports whether the record carries an advisor identifier.
func (u *User) IsAdvisor() bool {
	return u.AdvisorID != nil && strings.TrimSpace(*u.AdvisorID) != ""
}

// ResetTokenExpired reports whether the stored reset token is unusable at the given instant.
// A record without an expiry is treated as expired.
func (u *User) ResetTokenExpired(now time.Time) bool {
	if u.ResetTokenExpires == nil {
		return true
	}
	return now.After(*u.ResetTokenExpires)
}

// AdvisorIDOrEmpty returns the advisor identifier or "" when unset.
func (u *User) AdvisorIDOrEmpty() string {
	if u.AdvisorID == nil {
		return ""
	}
	return *u.AdvisorID
}

// ClientIDOrEmpty returns the client identifier or "" when unset.
func (u *User) ClientIDOrEmpty() string {
	if u.ClientID == nil {
		return ""
	}
	return *u.ClientID
}
