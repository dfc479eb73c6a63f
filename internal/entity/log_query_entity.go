package entity

import "github.com/google/uuid"

// LogQuery is the structured part of a log search or purge: equality
// filters plus time bounds, pushed down to the store where possible.
// Phrase filtering is layered on top by the query service.
type LogQuery struct {
	ProjectId    uuid.UUID
	Levels       []string
	Environments []string
	Hostnames    []string
	LogType      string

	MinTimestampMS *int64
	MaxTimestampMS *int64

	Page     int
	PageSize int
}
