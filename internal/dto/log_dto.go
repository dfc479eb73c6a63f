package dto

import (
	"logfiber-be/internal/entity"
	"logfiber-be/pkg/logfilter"

	"github.com/google/uuid"
)

type IngestLogRequest struct {
	Level         string                 `json:"level" validate:"required"`
	Environment   string                 `json:"environment"`
	LogType       string                 `json:"logType" validate:"required,oneof=application system"`
	Message       string                 `json:"message" validate:"required"`
	StackTrace    []entity.StackFrame    `json:"stackTrace,omitempty"`
	RawStackTrace string                 `json:"rawStackTrace,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
	Request       map[string]interface{} `json:"request,omitempty"`
	Hostname      string                 `json:"hostname,omitempty"`
	TimestampMS   int64                  `json:"timestampMS,omitempty"`
}

type SearchLogsRequest struct {
	Level       StringList `json:"level,omitempty"`
	Environment StringList `json:"environment,omitempty"`
	Hostname    StringList `json:"hostname,omitempty"`
	LogType     string     `json:"logType,omitempty" validate:"omitempty,oneof=application system"`

	LookbackTime string `json:"lookbackTime,omitempty"`
	TimeRange    string `json:"timeRange,omitempty"`

	DocFilter        *logfilter.Condition `json:"docFilter,omitempty" validate:"omitempty"`
	MessageFilter    *logfilter.Filter    `json:"messageFilter,omitempty" validate:"omitempty"`
	StackTraceFilter *logfilter.Filter    `json:"stackTraceFilter,omitempty" validate:"omitempty"`
	DetailsFilter    *logfilter.Filter    `json:"detailsFilter,omitempty" validate:"omitempty"`

	// Sort applies only when no phrase filter is active.
	Sort     string `json:"sort,omitempty" validate:"omitempty,oneof=asc desc"`
	Page     int    `json:"page,omitempty" validate:"omitempty,min=1"`
	PageSize int    `json:"pageSize,omitempty" validate:"omitempty,min=1,max=1000"`
}

type LogEventResponse struct {
	Id            uuid.UUID              `json:"id"`
	ProjectId     uuid.UUID              `json:"projectId"`
	Level         string                 `json:"level"`
	Environment   string                 `json:"environment,omitempty"`
	LogType       string                 `json:"logType"`
	Message       string                 `json:"message"`
	StackTrace    []entity.StackFrame    `json:"stackTrace,omitempty"`
	RawStackTrace string                 `json:"rawStackTrace,omitempty"`
	Details       map[string]interface{} `json:"details,omitempty"`
	Hostname      string                 `json:"hostname,omitempty"`
	TimestampMS   int64                  `json:"timestampMS"`
}

type SearchLogsResponse struct {
	Logs        []*LogEventResponse `json:"logs"`
	Total       int64               `json:"total"`
	Page        int                 `json:"page"`
	PageSize    int                 `json:"pageSize"`
	LevelCounts map[string]int      `json:"levelCounts,omitempty"`
}

type PurgeLogsRequest struct {
	Level        string `json:"level,omitempty"`
	Environment  string `json:"environment,omitempty"`
	LookbackTime string `json:"lookbackTime,omitempty"`
	TimeRange    string `json:"timeRange,omitempty"`
}

type PurgeLogsResponse struct {
	DeletedCount int64 `json:"deletedCount"`
}

// PublishLogIngestedMessage is the queue payload between ingestion and alarm
// evaluation.
type PublishLogIngestedMessage struct {
	EventId   uuid.UUID `json:"eventId"`
	ProjectId uuid.UUID `json:"projectId"`
}
