package notification

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"omnispa/config"
)

// SendGridSender delivers email through the SendGrid v3 API.
type SendGridSender struct {
	client   *sendgrid.Client
	fromName string
	fromAddr string
}

func NewSendGridSender() *SendGridSender {
	cfg := config.AppConfig
	return &SendGridSender{
		client:   sendgrid.NewSendClient(cfg.SendgridAPIKey),
		fromName: cfg.EmailFromName,
		fromAddr: cfg.EmailFrom,
	}
}

func (s *SendGridSender) Send(toName, toEmail, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromAddr)
	to := mail.NewEmail(toName, toEmail)
	msg := mail.NewSingleEmail(from, subject, to, plainText, "")

	resp, err := s.client.Send(msg)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected message: status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// NoopSender discards email. Used in development when no SendGrid key is
// configured.
type NoopSender struct{}

func (NoopSender) Send(toName, toEmail, subject, plainText string) error { return nil }
