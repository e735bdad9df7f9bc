package service

import "context"

// Mailer defines the interface for outbound transactional mail.
type Mailer interface {
	// Send delivers a plain-text message to the recipient.
	Send(ctx context.Context, to, subject, body string) error
}
