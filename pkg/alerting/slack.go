package alerting

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SlackSender posts an alarm to a Slack incoming webhook.
type SlackSender interface {
	Send(webhookURL string, p *Payload) error
}

type slackSender struct {
	client *http.Client
}

func NewSlackSender() SlackSender {
	return &slackSender{client: &http.Client{Timeout: 10 * time.Second}}
}

func (s *slackSender) Send(webhookURL string, p *Payload) error {
	text := fmt.Sprintf("*[%s] %s alarm in %s* (%s)\n%s\n<%s|Open log>",
		p.Level, p.LogType, p.ProjectName, p.Environment, p.Message, p.Link)

	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return fmt.Errorf("failed to marshal slack message: %w", err)
	}

	resp, err := s.client.Post(webhookURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("slack webhook call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("slack webhook returned status %d", resp.StatusCode)
	}
	return nil
}
