package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LogEvent struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Level         string         `gorm:"type:varchar(32);not null;index"`
	Environment   string         `gorm:"type:varchar(64);index"`
	LogType       string         `gorm:"type:varchar(16);not null;index"`
	Message       string         `gorm:"type:text"`
	StackTrace    datatypes.JSON `gorm:"type:jsonb"`
	RawStackTrace string         `gorm:"type:text"`
	Details       datatypes.JSON `gorm:"type:jsonb"`
	DetailString  string         `gorm:"type:text"`
	Request       datatypes.JSON `gorm:"type:jsonb"`
	Hostname      string         `gorm:"type:varchar(255)"`
	TimestampMS   int64          `gorm:"not null;index"`
	CreatedAt     time.Time      `gorm:"autoCreateTime"`
}

func (LogEvent) TableName() string {
	return "log_events"
}
