package alerting

import (
	"fmt"
	"time"

	"logfiber-be/internal/entity"
)

// Payload is the delivery-neutral view of a matched alarm, assembled once
// and handed to every configured channel.
type Payload struct {
	EventId     string            `json:"eventId"`
	ProjectId   string            `json:"projectId"`
	ProjectName string            `json:"projectName"`
	ProjectSlug string            `json:"projectSlug"`
	Level       string            `json:"level"`
	Environment string            `json:"environment"`
	LogType     string            `json:"logType"`
	Message     string            `json:"message"`
	Timestamp   string            `json:"timestamp"`
	Hostname    string            `json:"hostname,omitempty"`
	StackTrace  string            `json:"stackTrace,omitempty"`
	Link        string            `json:"link"`
	Request     map[string]string `json:"request,omitempty"`
}

// BuildPayload flattens the event and its owning project into a Payload.
// clientURL anchors the deep link into the log viewer.
func BuildPayload(project *entity.Project, ev *entity.LogEvent, clientURL string) *Payload {
	return &Payload{
		EventId:     ev.Id.String(),
		ProjectId:   project.Id.String(),
		ProjectName: project.Name,
		ProjectSlug: project.Slug,
		Level:       ev.Level,
		Environment: ev.Environment,
		LogType:     ev.LogType,
		Message:     ev.Message,
		Timestamp:   time.UnixMilli(ev.TimestampMS).UTC().Format(time.RFC3339),
		Hostname:    ev.Hostname,
		StackTrace:  ev.StackTraceText(),
		Link:        fmt.Sprintf("%s/project/%s/log/%s", clientURL, project.Slug, ev.Id),
		Request:     flattenRequest(ev.Request),
	}
}

// flattenRequest renders structured request metadata to one string per key.
func flattenRequest(request map[string]interface{}) map[string]string {
	if len(request) == 0 {
		return nil
	}
	flat := make(map[string]string, len(request))
	for k, v := range request {
		flat[k] = fmt.Sprintf("%v", v)
	}
	return flat
}
