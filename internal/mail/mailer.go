// Package mail provides the best-effort email channel. Delivery failures are
// reported to callers but never retried here.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"jobboard/internal/config"
)

// Mailer sends a single message to one recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer delivers mail over plain SMTP.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer builds a mailer from config. Auth is only used when a
// username is configured.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	m := &SMTPMailer{
		addr: cfg.SMTPAddr,
		from: cfg.SMTPFrom,
	}
	if cfg.SMTPUser != "" {
		host := cfg.SMTPAddr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		m.auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, host)
	}
	return m
}

// Send delivers one message synchronously.
func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		m.from, to, subject, body)
	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}
