package mailer

import (
	"strings"
	"testing"

	"logfiber-be/pkg/alerting"
)

func TestAlarmBodyEscapesLogContent(t *testing.T) {
	p := &alerting.Payload{
		ProjectName: "checkout",
		Level:       "error",
		Environment: "production",
		LogType:     "application",
		Message:     `<script>alert("pwn")</script>`,
		StackTrace:  "at handle()\n<img src=x onerror=alert(1)>",
		Hostname:    "web-1",
		Timestamp:   "2026-09-01T12:00:00Z",
	}

	body := alarmBody(p)

	if strings.Contains(body, "<script>") {
		t.Errorf("message markup leaked into the body unescaped")
	}
	if !strings.Contains(body, "&lt;script&gt;") {
		t.Errorf("message was not HTML-escaped: %s", body)
	}
	if strings.Contains(body, "<img") {
		t.Errorf("stack trace markup leaked into the body unescaped")
	}
	if !strings.Contains(body, "&lt;img src=x onerror=alert(1)&gt;") {
		t.Errorf("stack trace was not HTML-escaped: %s", body)
	}
}

func TestAlarmBodyOmitsStackBlockWhenEmpty(t *testing.T) {
	p := &alerting.Payload{
		ProjectName: "checkout",
		Level:       "warn",
		Environment: "staging",
		LogType:     "application",
		Message:     "slow query detected",
		Timestamp:   "2026-09-01T12:00:00Z",
	}

	body := alarmBody(p)

	if strings.Contains(body, "<pre") {
		t.Errorf("stack block rendered for a payload without a stack trace")
	}
	if !strings.Contains(body, "slow query detected") {
		t.Errorf("message missing from body: %s", body)
	}
}
