// Package mailer delivers job-alert emails.
//
// The pipeline treats delivery as fire-and-forget: a failed send is logged by
// the caller and never retried within the same dispatch tick.
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
)

// Sender delivers a single message to a single recipient address.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// DeliveryError reports a failed send to one recipient.
type DeliveryError struct {
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to %s failed: %v", e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// SMTPSender sends mail through a plain-auth SMTP relay.
type SMTPSender struct {
	addr string // host:port
	auth smtp.Auth
	from string
}

// NewSMTPSender configures an SMTPSender. user may be empty for relays that
// accept unauthenticated submission (local dev).
func NewSMTPSender(host, port, user, password, from string) *SMTPSender {
	var auth smtp.Auth
	if user != "" {
		auth = smtp.PlainAuth("", user, password, host)
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", host, port),
		auth: auth,
		from: from,
	}
}

// Send delivers one message. The context is honored only up to the SMTP
// dial; the protocol exchange itself relies on the server's own timeouts.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.from, to, subject, body)

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{to}, []byte(msg)); err != nil {
		return &DeliveryError{Recipient: to, Err: err}
	}
	return nil
}
