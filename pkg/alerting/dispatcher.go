package alerting

import (
	"sync"

	"logfiber-be/internal/entity"
	"logfiber-be/internal/pkg/logger"
)

// EmailSender delivers an alarm to a list of addresses. Implemented by the
// SMTP mailer.
type EmailSender interface {
	SendAlarm(addresses []string, p *Payload) error
}

// Dispatcher fans one matched alarm out to its configured channels. Channels
// run concurrently; one channel failing (or hanging on its transport) never
// stops the others. There is no dispatch-wide timeout budget here, only the
// transports' own timeouts.
type Dispatcher struct {
	email   EmailSender
	slack   SlackSender
	webhook WebhookSender
	log     logger.ILogger
}

func NewDispatcher(email EmailSender, slack SlackSender, webhook WebhookSender, log logger.ILogger) *Dispatcher {
	return &Dispatcher{
		email:   email,
		slack:   slack,
		webhook: webhook,
		log:     log,
	}
}

// Dispatch attempts delivery on every configured channel and waits for all
// attempts to finish. Failures are logged and swallowed.
func (d *Dispatcher) Dispatch(methods entity.DeliveryMethods, p *Payload) {
	var wg sync.WaitGroup

	if methods.Email != nil && len(methods.Email.Addresses) > 0 && d.email != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.email.SendAlarm(methods.Email.Addresses, p); err != nil {
				d.log.Error("alarm_dispatcher", "Email delivery failed", map[string]interface{}{
					"eventId": p.EventId,
					"error":   err.Error(),
				})
			}
		}()
	}

	if methods.Slack != nil && methods.Slack.WebhookURL != "" && d.slack != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.slack.Send(methods.Slack.WebhookURL, p); err != nil {
				d.log.Error("alarm_dispatcher", "Slack delivery failed", map[string]interface{}{
					"eventId": p.EventId,
					"error":   err.Error(),
				})
			}
		}()
	}

	if methods.Webhook != nil && methods.Webhook.URL != "" && d.webhook != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := d.webhook.Send(methods.Webhook.URL, p); err != nil {
				d.log.Error("alarm_dispatcher", "Webhook delivery failed", map[string]interface{}{
					"eventId": p.EventId,
					"error":   err.Error(),
				})
			}
		}()
	}

	wg.Wait()
}
