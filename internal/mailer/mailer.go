package mailer

import (
	"errors"

	"github.com/alligatorO15/wed-planner/internal/config"
	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("smtp is not configured")

// Mailer отправляет письма, тело уже отрендерено сервисом
type Mailer interface {
	Send(to, subject, body string) error
	Enabled() bool
}

type smtpMailer struct {
	host     string
	port     int
	from     string
	password string
}

func New(cfg *config.Config) Mailer {
	return &smtpMailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPEmail,
		password: cfg.SMTPPassword,
	}
}

// Enabled без smtp в конфиге приглашения остаются черновиками, сервер при этом работает
func (m *smtpMailer) Enabled() bool {
	return m.host != "" && m.from != ""
}

func (m *smtpMailer) Send(to, subject, body string) error {
	if !m.Enabled() {
		return ErrNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.from, m.password)
	return d.DialAndSend(msg)
}
