package email

import (
	"context"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"github.com/SscSPs/advisor_client_app/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smtpConfig() *config.Config {
	return &config.Config{
		SMTPHost:     "mail.example.com",
		SMTPPort:     587,
		SMTPUsername: "mailer",
		SMTPPassword: "secret",
		SMTPFrom:     "no-reply@example.com",
	}
}

func TestSMTPSender_SendEmail(t *testing.T) {
	sender := NewSMTPSender(smtpConfig())

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg string
	var gotAuth smtp.Auth
	sender.send = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotAuth, gotFrom, gotTo, gotMsg = addr, a, from, to, string(msg)
		return nil
	}

	err := sender.SendEmail(context.Background(), "ada@example.com", "token to reset password", "use this token within one day ABC")
	require.NoError(t, err)

	assert.Equal(t, "mail.example.com:587", gotAddr)
	assert.NotNil(t, gotAuth)
	assert.Equal(t, "no-reply@example.com", gotFrom)
	assert.Equal(t, []string{"ada@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "Subject: token to reset password\r\n")
	assert.True(t, strings.HasSuffix(gotMsg, "\r\n\r\nuse this token within one day ABC\r\n"))
}

func TestSMTPSender_NoAuthWithoutUsername(t *testing.T) {
	cfg := smtpConfig()
	cfg.SMTPUsername = ""
	sender := NewSMTPSender(cfg)

	var gotAuth smtp.Auth
	sender.send = func(_ string, a smtp.Auth, _ string, _ []string, _ []byte) error {
		gotAuth = a
		return nil
	}

	require.NoError(t, sender.SendEmail(context.Background(), "ada@example.com", "s", "b"))
	assert.Nil(t, gotAuth)
}

func TestSMTPSender_Errors(t *testing.T) {
	sender := NewSMTPSender(smtpConfig())
	relayErr := errors.New("relay refused")
	sender.send = func(string, smtp.Auth, string, []string, []byte) error { return relayErr }

	err := sender.SendEmail(context.Background(), "ada@example.com", "s", "b")
	assert.ErrorIs(t, err, relayErr)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, sender.SendEmail(ctx, "ada@example.com", "s", "b"), context.Canceled)
}

func TestNewSender(t *testing.T) {
	assert.IsType(t, LogSender{}, NewSender(&config.Config{}))
	assert.IsType(t, &SMTPSender{}, NewSender(smtpConfig()))
	assert.NoError(t, LogSender{}.SendEmail(context.Background(), "a@example.com", "s", "b"))
}
