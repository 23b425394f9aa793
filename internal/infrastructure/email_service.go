package infrastructure

import (
	"context"
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailService delivers transactional mail through SendGrid. Delivery is
// best-effort: callers log failures and carry on.
type EmailService struct {
	apiKey     string
	senderName string
	sender     string
}

func NewEmailService(apiKey, senderName, sender string) *EmailService {
	return &EmailService{
		apiKey:     apiKey,
		senderName: senderName,
		sender:     sender,
	}
}

func (e *EmailService) Send(ctx context.Context, recipient, subject, text, html string) error {
	from := mail.NewEmail(e.senderName, e.sender)
	to := mail.NewEmail("", recipient)

	if html == "" {
		html = text
	}
	message := mail.NewSingleEmail(from, subject, to, text, html)

	client := sendgrid.NewSendClient(e.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		log.Println("Failed to send email:", err)
		return err
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid returned status %d", response.StatusCode)
		log.Println("Failed to send email:", err)
		return err
	}

	return nil
}
