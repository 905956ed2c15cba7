package email

import (
	"fmt"

	"jobswipe_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider реализует Provider поверх gomail
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendMatchNotification(to, counterpartName string) error {
	subject := "У вас новое совпадение!"
	body := fmt.Sprintf(
		"<p>Вы понравились друг другу с <b>%s</b>.</p><p>Откройте приложение, чтобы продолжить.</p>",
		counterpartName,
	)
	return p.Send(to, subject, body)
}
