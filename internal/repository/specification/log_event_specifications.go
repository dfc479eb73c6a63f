package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByProjectID scopes to one project
type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

// LevelIn matches any of the given levels
type LevelIn struct {
	Levels []string
}

func (s LevelIn) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Levels) == 0 {
		return db
	}
	return db.Where("level IN ?", s.Levels)
}

// EnvironmentIn matches any of the given environments
type EnvironmentIn struct {
	Environments []string
}

func (s EnvironmentIn) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Environments) == 0 {
		return db
	}
	return db.Where("environment IN ?", s.Environments)
}

// HostnameIn matches any of the given hostnames
type HostnameIn struct {
	Hostnames []string
}

func (s HostnameIn) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Hostnames) == 0 {
		return db
	}
	return db.Where("hostname IN ?", s.Hostnames)
}

// ByLogType filters by the application/system discriminator
type ByLogType struct {
	LogType string
}

func (s ByLogType) Apply(db *gorm.DB) *gorm.DB {
	if s.LogType == "" {
		return db
	}
	return db.Where("log_type = ?", s.LogType)
}

// TimestampRange bounds timestamp_ms; nil bounds are open
type TimestampRange struct {
	MinMS *int64
	MaxMS *int64
}

func (s TimestampRange) Apply(db *gorm.DB) *gorm.DB {
	if s.MinMS != nil {
		db = db.Where("timestamp_ms >= ?", *s.MinMS)
	}
	if s.MaxMS != nil {
		db = db.Where("timestamp_ms <= ?", *s.MaxMS)
	}
	return db
}
