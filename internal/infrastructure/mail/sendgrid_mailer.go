package mail

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"luthier_works/internal/usecase/interfaces"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends the portal's transactional email through SendGrid.
//
// An unset SENDGRID_API_KEY is a valid deployment (local dev, preview
// environments): every Send logs at informational level and returns nil.
// The trigger layer treats mail as best-effort either way.

type SendGridMailer struct {
	client    *sendgrid.Client
	fromName  string
	fromEmail string
}

var _ interfaces.IMailGateway = (*SendGridMailer)(nil)

func NewSendGridMailer() *SendGridMailer {
	apiKey := strings.TrimSpace(os.Getenv("SENDGRID_API_KEY"))
	if apiKey == "" {
		log.Printf("[mail][gateway] SENDGRID_API_KEY not set; sends will be skipped")
		return &SendGridMailer{}
	}
	m := &SendGridMailer{
		client:    sendgrid.NewSendClient(apiKey),
		fromName:  getenvDefault("MAIL_FROM_NAME", "The Workshop"),
		fromEmail: getenvDefault("MAIL_FROM_ADDRESS", "no-reply@example.com"),
	}
	log.Printf("[mail][gateway] SendGrid client initialized from=%s", m.fromEmail)
	return m
}

func (m *SendGridMailer) Send(ctx context.Context, toEmail, subject, htmlBody, textBody string) error {
	if m == nil || m.client == nil {
		log.Printf("[mail][gateway] transport not configured; skipping send to=%s subject=%q", toEmail, subject)
		return nil
	}
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("empty recipient address")
	}

	from := sgmail.NewEmail(m.fromName, m.fromEmail)
	to := sgmail.NewEmail("", toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, textBody, htmlBody)

	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		log.Printf("[mail][gateway] send failed to=%s err=%v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("[mail][gateway] send rejected to=%s status=%d body=%s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("sendgrid returned status %d", resp.StatusCode)
	}
	log.Printf("[mail][gateway] send accepted to=%s status=%d", toEmail, resp.StatusCode)
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
