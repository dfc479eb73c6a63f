package alerting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookSender posts the raw alarm payload to a caller-supplied URL.
type WebhookSender interface {
	Send(url string, p *Payload) error
}

type webhookSender struct {
	client *http.Client
}

func NewWebhookSender() WebhookSender {
	return &webhookSender{client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *webhookSender) Send(url string, p *Payload) error {
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}
