// Package mail delivers transactional mail over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/irabeny89/ebbs-io/config"
	"github.com/irabeny89/ebbs-io/internal/domain/service"
	"github.com/irabeny89/ebbs-io/internal/errors"
)

// smtpMailer is a concrete implementation of the Mailer interface on top of
// plain SMTP with optional PLAIN auth.
type smtpMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.Config) (service.Mailer, error) {
	if cfg.Mail == nil || cfg.Mail.Host == "" || cfg.Mail.From == "" {
		return nil, errors.New("mail host and sender must be provided")
	}

	var auth smtp.Auth
	if cfg.Mail.Username != "" {
		auth = smtp.PlainAuth("", cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.Host)
	}

	return &smtpMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Mail.Host, cfg.Mail.Port),
		from: cfg.Mail.From,
		auth: auth,
	}, nil
}

// Send delivers a plain-text message to the recipient. The context only
// bounds the call, smtp.SendMail itself is not interruptible, so delivery is
// skipped when the context is already done.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send mail")
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return errors.Wrapf(err, "send mail to %s", to)
	}

	return nil
}
