package entity

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	LogTypeApplication = "application"
	LogTypeSystem      = "system"
)

// StackFrame is one structured frame of a parsed stack trace.
type StackFrame struct {
	Message  string `json:"message,omitempty"`
	Line     int    `json:"line,omitempty"`
	File     string `json:"file,omitempty"`
	Function string `json:"function,omitempty"`
}

// LogEvent is an ingested log record. Immutable once persisted except for
// deletion. DetailString is the JSON form of Details, computed once at
// ingestion; it is the text surface used for details phrase matching.
type LogEvent struct {
	Id            uuid.UUID
	ProjectId     uuid.UUID
	Level         string
	Environment   string
	LogType       string
	Message       string
	StackTrace    []StackFrame
	RawStackTrace string
	Details       map[string]interface{}
	DetailString  string
	Request       map[string]interface{}
	Hostname      string
	TimestampMS   int64
	CreatedAt     time.Time
}

// StackTraceText is the logical stack-trace surface: the raw trace when one
// was supplied, otherwise the structured frames flattened to text.
func (e *LogEvent) StackTraceText() string {
	if e.RawStackTrace != "" {
		return e.RawStackTrace
	}
	lines := make([]string, 0, len(e.StackTrace))
	for _, f := range e.StackTrace {
		lines = append(lines, f.Text())
	}
	return strings.Join(lines, "\n")
}

// Text flattens a frame's fields joined by " | ".
func (f StackFrame) Text() string {
	parts := []string{f.Message}
	if f.Line > 0 {
		parts = append(parts, strconv.Itoa(f.Line))
	}
	parts = append(parts, f.File, f.Function)
	nonEmpty := parts[:0]
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, " | ")
}

// DetailsText is the logical details surface.
func (e *LogEvent) DetailsText() string {
	if e.DetailString != "" {
		return e.DetailString
	}
	if len(e.Details) == 0 {
		return ""
	}
	b, err := json.Marshal(e.Details)
	if err != nil {
		return ""
	}
	return string(b)
}
