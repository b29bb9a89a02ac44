// Package mail реализует отправку почтовых уведомлений через SMTP.
package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"notesapi/internal/config"
	svc "notesapi/internal/ports/services"
)

// Константы для сообщений об ошибках.
const (
	ErrCreateClient = "failed to create SMTP client"
	ErrBuildMessage = "failed to build mail message"
	ErrSendMessage  = "failed to send mail message"
)

// SMTPMailer реализует интерфейс ports/services.Mailer поверх SMTP.
type SMTPMailer struct {
	client *gomail.Client
	from   string
}

// NewSMTPMailer создает новый SMTP клиент для отправки уведомлений.
func NewSMTPMailer(cfg *config.SMTPConfig) (*SMTPMailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTimeout(cfg.SendTimeout),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}

	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrCreateClient, err)
	}

	return &SMTPMailer{client: client, from: cfg.From}, nil
}

// Send отправляет одно письмо. Гарантий доставки нет: вызывающая сторона
// решает, что делать с ошибкой.
func (m *SMTPMailer) Send(ctx context.Context, msg *svc.Message) error {
	mail := gomail.NewMsg()
	if err := mail.From(m.from); err != nil {
		return fmt.Errorf("%s: %w", ErrBuildMessage, err)
	}
	if err := mail.To(msg.To); err != nil {
		return fmt.Errorf("%s: %w", ErrBuildMessage, err)
	}
	mail.Subject(msg.Subject)
	mail.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if err := m.client.DialAndSendWithContext(ctx, mail); err != nil {
		return fmt.Errorf("%s: %w", ErrSendMessage, err)
	}

	return nil
}
