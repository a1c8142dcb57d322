package email

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/platform/config"
)

// sendMailFunc matches smtp.SendMail.
type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPSender delivers mail through an SMTP relay using PLAIN auth.
type SMTPSender struct {
	addr     string
	host     string
	username string
	password string
	from     string
	send     sendMailFunc
}

var _ portssvc.EmailSender = (*SMTPSender)(nil)

// NewSMTPSender creates a sender for the relay configured in cfg.
func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		addr:     net.JoinHostPort(cfg.SMTPHost, strconv.Itoa(cfg.SMTPPort)),
		host:     cfg.SMTPHost,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
		from:     cfg.SMTPFrom,
		send:     smtp.SendMail,
	}
}

// SendEmail sends a plain-text message. The context is only checked before dialing;
// net/smtp does not take one.
func (s *SMTPSender) SendEmail(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if err := s.send(s.addr, auth, s.from, []string{to}, buildMessage(s.from, to, subject, body)); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
