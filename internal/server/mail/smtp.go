package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/djitsotsu/authsvc/internal/shared"
)

const otpSubject = "Verification Code // Djitsotsu"

const otpBodyTemplate = `Hello! Your one-time code to access Djitsotsu is:

    %s

This code expires in 5 minutes. If you didn't request this, ignore this message.
`

// SMTPMailer sends one-time codes over plain SMTP with optional AUTH.
type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth

	// sendMail is a seam for tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer configures a mailer for the given server address
// ("host:port"). If user is empty, the connection is unauthenticated.
func NewSMTPMailer(addr, from, user, password string) *SMTPMailer {
	m := &SMTPMailer{
		addr:     addr,
		from:     from,
		sendMail: smtp.SendMail,
	}
	if user != "" {
		host := addr
		if i := strings.IndexByte(addr, ':'); i >= 0 {
			host = addr[:i]
		}
		m.auth = smtp.PlainAuth("", user, password, host)
	}
	return m
}

// SendOtpCode delivers the code. Any transport failure is reported as
// shared.ErrorDeliveryFailed; the caller decides whether the stored code
// survives the failure.
func (m *SMTPMailer) SendOtpCode(ctx context.Context, recipient, code string) error {
	msg := fmt.Sprintf("From: Djitsotsu Admin <%s>\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		m.from, recipient, otpSubject, fmt.Sprintf(otpBodyTemplate, code))

	if err := m.sendMail(m.addr, m.auth, m.from, []string{recipient}, []byte(msg)); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrorDeliveryFailed, err)
	}
	return nil
}
