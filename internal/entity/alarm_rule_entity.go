package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlarmRule matches ingested events conjunctively on logType, level
// membership, and environment. A nil Message means match-any; a non-nil one
// is a case-insensitive substring test (deliberately simpler than the
// search-side phrase filters).
type AlarmRule struct {
	Id          uuid.UUID
	ProjectId   uuid.UUID
	LogType     string
	Levels      []string
	Environment string
	Message     *string
	Delivery    DeliveryMethods
	CreatedAt   time.Time
}

// DeliveryMethods holds the 0..3 configured channels; each is attempted
// independently.
type DeliveryMethods struct {
	Email   *EmailDelivery   `json:"email,omitempty"`
	Slack   *SlackDelivery   `json:"slack,omitempty"`
	Webhook *WebhookDelivery `json:"webhook,omitempty"`
}

type EmailDelivery struct {
	Addresses []string `json:"addresses"`
}

type SlackDelivery struct {
	WebhookURL string `json:"webhook"`
}

type WebhookDelivery struct {
	URL string `json:"url"`
}
