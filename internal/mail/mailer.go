package mail

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/friendfinder/backend/internal/config"
)

// Mailer enqueues an email to be sent. Delivery is fire-and-forget: no
// outcome is surfaced to the caller.
type Mailer interface {
	Send(to, subject, body string)
}

// SMTPMailer sends plain-text mail over SMTP. Every Send happens on its own
// goroutine; failures are logged and dropped.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	var auth smtp.Auth
	if cfg.SMTPUser != "" {
		auth = smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPHost)
	}
	return &SMTPMailer{
		addr: cfg.SMTPHost + ":" + cfg.SMTPPort,
		from: cfg.MailFrom,
		auth: auth,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) {
	go func() {
		msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", m.from, to, subject, body)
		if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg)); err != nil {
			slog.Error("mail send failed", "to", to, "subject", subject, "error", err)
		}
	}()
}

// NopMailer discards all mail. Used when SMTP is not configured.
type NopMailer struct{}

func (NopMailer) Send(to, subject, _ string) {
	slog.Info("mail suppressed (no SMTP configured)", "to", to, "subject", subject)
}
