package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id        uuid.UUID
	Slug      string
	Name      string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
