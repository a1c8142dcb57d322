package email

import (
	"context"
	"log/slog"

	portssvc "github.com/SscSPs/advisor_client_app/internal/core/ports/services"
	"github.com/SscSPs/advisor_client_app/internal/middleware"
	"github.com/SscSPs/advisor_client_app/internal/platform/config"
)

// LogSender writes messages to the request logger instead of delivering them.
type LogSender struct{}

var _ portssvc.EmailSender = LogSender{}

func (LogSender) SendEmail(ctx context.Context, to, subject, body string) error {
	middleware.GetLoggerFromCtx(ctx).Info("Email not delivered, no SMTP host configured",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.Int("body_length", len(body)),
	)
	return nil
}

// NewSender picks the SMTP sender when a host is configured and the log sender otherwise.
func NewSender(cfg *config.Config) portssvc.EmailSender {
	if cfg.SMTPHost == "" {
		return LogSender{}
	}
	return NewSMTPSender(cfg)
}
