package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

var errNoRecipient = fmt.Errorf("no recipient configured")

// Mailer delivers one HTML email to a pre-configured recipient list. No
// retry, batching or delivery confirmation; the SMTP relay owns all of
// that.
type Mailer interface {
	Send(subject, htmlBody string, recipients []string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

func (m *smtpMailer) Send(subject, htmlBody string, recipients []string) error {
	if len(recipients) == 0 {
		return errNoRecipient
	}

	msg := newMessage(m.from, subject, htmlBody, recipients)
	return m.dialer.DialAndSend(msg)
}

func newMessage(from, subject, htmlBody string, recipients []string) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", from)
	msg.SetHeader("To", recipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	return msg
}

func New(host string, port int, username, password, from string) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}
