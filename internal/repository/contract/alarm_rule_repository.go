package contract

import (
	"context"

	"logfiber-be/internal/entity"

	"github.com/google/uuid"
)

type AlarmRuleRepository interface {
	Create(ctx context.Context, rule *entity.AlarmRule) error
	FindAllByProjectId(ctx context.Context, projectId uuid.UUID) ([]*entity.AlarmRule, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
