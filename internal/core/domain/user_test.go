package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/advisor_client_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestUser_ApplyProfile(t *testing.T) {
	u := domain.User{Email: "a@x.com", FirstName: "Old", LastName: "Name", SortName: "Name, Old"}

	u.ApplyProfile(domain.Profile{
		FirstName: "Jane",
		LastName:  "Doe",
		City:      "Pune",
		Company:   "Acme",
	})

	assert.Equal(t, "Doe, Jane", u.SortName)
	assert.Equal(t, "Pune", u.City)
	assert.Equal(t, "Acme", u.Company)
	assert.Equal(t, "a@x.com", u.Email, "email is not a profile field")
}

func TestUser_ResetTokenExpired(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Hour)
	earlier := now.Add(-time.Second)

	assert.True(t, (&domain.User{}).ResetTokenExpired(now), "no expiry stored")
	assert.False(t, (&domain.User{ResetTokenExpires: &later}).ResetTokenExpired(now))
	assert.True(t, (&domain.User{ResetTokenExpires: &earlier}).ResetTokenExpired(now))
	assert.False(t, (&domain.User{ResetTokenExpires: &now}).ResetTokenExpired(now), "expiry instant itself is still valid")
}

func TestUser_IsAdvisor(t *testing.T) {
	id := "A1B2C3"
	blank := "  "
	assert.True(t, (&domain.User{AdvisorID: &id}).IsAdvisor())
	assert.False(t, (&domain.User{AdvisorID: &blank}).IsAdvisor())
	assert.False(t, (&domain.User{}).IsAdvisor())
}
