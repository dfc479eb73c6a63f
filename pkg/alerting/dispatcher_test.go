package alerting

import (
	"errors"
	"sync"
	"testing"

	"logfiber-be/internal/entity"
	"logfiber-be/internal/pkg/logger"
)

type fakeEmailSender struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (f *fakeEmailSender) SendAlarm(addresses []string, _ *Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, addresses)
	return f.err
}

type fakeSender struct {
	mu    sync.Mutex
	calls []string
	err   error
}

func (f *fakeSender) Send(target string, _ *Payload) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, target)
	return f.err
}

func TestDispatchAllChannels(t *testing.T) {
	email := &fakeEmailSender{}
	slack := &fakeSender{}
	webhook := &fakeSender{}

	d := NewDispatcher(email, slack, webhook, logger.NewNopLogger())
	d.Dispatch(entity.DeliveryMethods{
		Email:   &entity.EmailDelivery{Addresses: []string{"ops@example.com"}},
		Slack:   &entity.SlackDelivery{WebhookURL: "https://hooks.slack.test/T1"},
		Webhook: &entity.WebhookDelivery{URL: "https://example.com/hook"},
	}, &Payload{EventId: "ev-1"})

	if len(email.calls) != 1 {
		t.Errorf("email calls = %d, want 1", len(email.calls))
	}
	if len(slack.calls) != 1 || slack.calls[0] != "https://hooks.slack.test/T1" {
		t.Errorf("slack calls = %v, want one call to the configured webhook", slack.calls)
	}
	if len(webhook.calls) != 1 || webhook.calls[0] != "https://example.com/hook" {
		t.Errorf("webhook calls = %v, want one call to the configured URL", webhook.calls)
	}
}

func TestDispatchSkipsUnconfiguredChannels(t *testing.T) {
	email := &fakeEmailSender{}
	slack := &fakeSender{}
	webhook := &fakeSender{}

	d := NewDispatcher(email, slack, webhook, logger.NewNopLogger())
	d.Dispatch(entity.DeliveryMethods{
		Slack: &entity.SlackDelivery{WebhookURL: "https://hooks.slack.test/T1"},
	}, &Payload{EventId: "ev-1"})

	if len(email.calls) != 0 {
		t.Errorf("email calls = %d, want 0", len(email.calls))
	}
	if len(webhook.calls) != 0 {
		t.Errorf("webhook calls = %d, want 0", len(webhook.calls))
	}
	if len(slack.calls) != 1 {
		t.Errorf("slack calls = %d, want 1", len(slack.calls))
	}
}

func TestDispatchIsolatesChannelFailures(t *testing.T) {
	email := &fakeEmailSender{err: errors.New("smtp down")}
	slack := &fakeSender{}
	webhook := &fakeSender{}

	d := NewDispatcher(email, slack, webhook, logger.NewNopLogger())
	d.Dispatch(entity.DeliveryMethods{
		Email:   &entity.EmailDelivery{Addresses: []string{"ops@example.com"}},
		Slack:   &entity.SlackDelivery{WebhookURL: "https://hooks.slack.test/T1"},
		Webhook: &entity.WebhookDelivery{URL: "https://example.com/hook"},
	}, &Payload{EventId: "ev-1"})

	// The failing email channel must not suppress the other deliveries.
	if len(slack.calls) != 1 {
		t.Errorf("slack calls = %d, want 1 despite email failure", len(slack.calls))
	}
	if len(webhook.calls) != 1 {
		t.Errorf("webhook calls = %d, want 1 despite email failure", len(webhook.calls))
	}
}

func TestDispatchIgnoresEmptyTargets(t *testing.T) {
	email := &fakeEmailSender{}
	slack := &fakeSender{}
	webhook := &fakeSender{}

	d := NewDispatcher(email, slack, webhook, logger.NewNopLogger())
	d.Dispatch(entity.DeliveryMethods{
		Email: &entity.EmailDelivery{},
		Slack: &entity.SlackDelivery{},
	}, &Payload{EventId: "ev-1"})

	if len(email.calls) != 0 || len(slack.calls) != 0 || len(webhook.calls) != 0 {
		t.Errorf("expected no deliveries for empty targets, got email=%d slack=%d webhook=%d",
			len(email.calls), len(slack.calls), len(webhook.calls))
	}
}
