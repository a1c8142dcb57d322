package services

import "context"

// EmailSender delivers a plain-text message.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
