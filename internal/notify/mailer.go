package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
)

type Mailer interface {
	Send(to, subject, body string) error
}

type SMTPMailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

// NewMailerFromEnv returns an SMTP mailer when SMTP_HOST is set, otherwise a
// mailer that only logs. Reminders are best effort either way.
func NewMailerFromEnv() Mailer {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return &LogMailer{}
	}

	return &SMTPMailer{
		host:     host,
		port:     os.Getenv("SMTP_PORT"),
		from:     os.Getenv("SMTP_FROM"),
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.from, to, subject, body))

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(m.host+":"+m.port, auth, m.from, []string{to}, msg)
}

type LogMailer struct{}

func (m *LogMailer) Send(to, subject, body string) error {
	log.Printf("reminder mail to %s: %s", to, subject)
	return nil
}
