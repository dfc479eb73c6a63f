package dto

import (
	"time"

	"logfiber-be/internal/entity"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Slug string `json:"slug" validate:"required,min=2,max=128"`
	Name string `json:"name" validate:"required,max=255"`
}

type ProjectResponse struct {
	Id        uuid.UUID `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateAlarmRuleRequest struct {
	LogType     string                 `json:"logType" validate:"required,oneof=application system"`
	Level       StringList             `json:"level" validate:"required,min=1"`
	Environment string                 `json:"environment" validate:"required"`
	Message     *string                `json:"message,omitempty"`
	Delivery    entity.DeliveryMethods `json:"deliveryMethods" validate:"required"`
}

type AlarmRuleResponse struct {
	Id          uuid.UUID              `json:"id"`
	ProjectId   uuid.UUID              `json:"projectId"`
	LogType     string                 `json:"logType"`
	Level       []string               `json:"level"`
	Environment string                 `json:"environment"`
	Message     *string                `json:"message,omitempty"`
	Delivery    entity.DeliveryMethods `json:"deliveryMethods"`
}
