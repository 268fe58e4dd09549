// Package mail sends support requests over SMTP.
package mail

import (
	"fmt"
	"net/smtp"
	"strings"

	"resto-pos/internal/apperr"
)

// SMTP holds the relay credentials, populated from configuration.
type SMTP struct {
	Server    string
	Port      string
	Username  string
	Password  string
	Recipient string
}

// Mailer delivers support messages. A zero-credential mailer reports a clear
// configuration error instead of attempting a send.
type Mailer struct {
	cfg SMTP
}

func New(cfg SMTP) *Mailer {
	return &Mailer{cfg: cfg}
}

// Configured reports whether the relay credentials are present.
func (m *Mailer) Configured() bool {
	return m.cfg.Username != "" && m.cfg.Password != "" && m.cfg.Recipient != ""
}

// SendSupport relays a support request from the operator to the configured
// recipient, with the sender's address as reply-to.
func (m *Mailer) SendSupport(name, email, subject, message string) error {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return apperr.Validation("sender name and email are required")
	}
	if strings.TrimSpace(subject) == "" || strings.TrimSpace(message) == "" {
		return apperr.Validation("subject and message are required")
	}
	if !m.Configured() {
		return apperr.Validation("SMTP is not configured; set SMTP_USERNAME, SMTP_PASSWORD and SMTP_RECIPIENT")
	}

	var body strings.Builder
	fmt.Fprintf(&body, "From: %s <%s>\r\n", name, m.cfg.Username)
	fmt.Fprintf(&body, "Reply-To: %s\r\n", email)
	fmt.Fprintf(&body, "To: %s\r\n", m.cfg.Recipient)
	fmt.Fprintf(&body, "Subject: Support: %s\r\n", subject)
	body.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	fmt.Fprintf(&body, "Support request from %s (%s)\r\n\r\n%s\r\n", name, email, message)

	addr := m.cfg.Server + ":" + m.cfg.Port
	authn := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Server)
	err := smtp.SendMail(addr, authn, m.cfg.Username, []string{m.cfg.Recipient}, []byte(body.String()))
	if err != nil {
		return apperr.Storage("send support email", err)
	}
	return nil
}
