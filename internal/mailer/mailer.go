package mailer

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"
)

// Sender delivers password-reset links out of band.
type Sender interface {
	SendResetLink(to, link string) error
}

// SMTPSender sends reset emails through an SMTP relay.
type SMTPSender struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPSender(host string, port int, username, password string) *SMTPSender {
	return &SMTPSender{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   username,
	}
}

func (s *SMTPSender) SendResetLink(to, link string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Password Reset")
	m.SetBody("text/plain", fmt.Sprintf(
		"You are receiving this because you (or someone else) requested a password reset for your account.\n\n"+
			"Click the following link, or paste it into your browser, to complete the process:\n\n%s\n\n"+
			"If you did not request this, ignore this email and your password will remain unchanged.\n", link))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send reset email: %w", err)
	}
	return nil
}

// LogSender stands in when SMTP is not configured: the link is only logged.
type LogSender struct{}

func (LogSender) SendResetLink(to, link string) error {
	log.Printf("password reset requested for %s: %s", to, link)
	return nil
}
