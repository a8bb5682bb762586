package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"talenthub_backend/internal/config"
)

// SMTPProvider sends mail through the SMTP server from configuration.
type SMTPProvider struct {
	cfg    *config.Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	dialer := gomail.NewDialer(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUsername,
		cfg.Email.SMTPPassword,
	)

	return &SMTPProvider{cfg: cfg, dialer: dialer}
}

func (p *SMTPProvider) Send(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendWelcome(to, displayName string) error {
	body := fmt.Sprintf(
		"<p>Olá %s,</p><p>Sua conta foi criada com sucesso. Bem-vindo(a)!</p>",
		displayName,
	)
	return p.Send([]string{to}, "Bem-vindo(a) à plataforma", body)
}
