package mapping

import (
	"database/sql"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	"github.com/SscSPs/advisor_client_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:       d.UserID,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		PasswordSalt: d.PasswordSalt,
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		SortName:     d.SortName,
		Address:      d.Address,
		City:         d.City,
		State:        d.State,
		Phone:        d.Phone,
		Company:      d.Company,
		AdvisorID:    toNullString(d.AdvisorID),
		ClientID:     toNullString(d.ClientID),
		AgentID:      toNullString(d.AgentID),
		RoleID:       int(d.RoleID),
		Active:       boolToFlag(d.Active),
		DeletedFlag:  boolToFlag(d.Deleted),
		AuditFields:  ToModelAuditFields(d.AuditFields),

		VerificationToken:  d.VerificationToken,
		PasswordResetToken: toNullString(d.PasswordResetToken),
		ResetTokenExpires:  toNullTime(d.ResetTokenExpires),
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	return domain.User{
		UserID:       m.UserID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		PasswordSalt: m.PasswordSalt,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		SortName:     m.SortName,
		Address:      m.Address,
		City:         m.City,
		State:        m.State,
		Phone:        m.Phone,
		Company:      m.Company,
		AdvisorID:    fromNullString(m.AdvisorID),
		ClientID:     fromNullString(m.ClientID),
		AgentID:      fromNullString(m.AgentID),
		RoleID:       domain.RoleID(m.RoleID),
		Active:       m.Active == 1,
		Deleted:      m.DeletedFlag == 1,
		AuditFields:  ToDomainAuditFields(m.AuditFields),

		VerificationToken:  m.VerificationToken,
		PasswordResetToken: fromNullString(m.PasswordResetToken),
		ResetTokenExpires:  fromNullTime(m.ResetTokenExpires),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}

// ToDomainAdvisorClient converts a model link row to its domain form.
func ToDomainAdvisorClient(m models.AdvisorClient) domain.AdvisorClient {
	return domain.AdvisorClient{ID: m.ID, AdvisorID: m.AdvisorID, ClientID: m.ClientID}
}

func boolToFlag(b bool) int {
	if b {
		return 1
	}
	return 0
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func fromNullTime(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
