package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AlarmRule struct {
	Id          uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	LogType     string         `gorm:"type:varchar(16);not null"`
	Levels      datatypes.JSON `gorm:"type:jsonb;not null"`
	Environment string         `gorm:"type:varchar(64);not null"`
	Message     *string        `gorm:"type:text"`
	Delivery    datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
}

func (AlarmRule) TableName() string {
	return "alarm_rules"
}
