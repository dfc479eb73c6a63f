package contract

import (
	"context"

	"logfiber-be/internal/entity"

	"github.com/google/uuid"
)

type LogEventRepository interface {
	Create(ctx context.Context, ev *entity.LogEvent) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.LogEvent, error)
	FindPage(ctx context.Context, q *entity.LogQuery) ([]*entity.LogEvent, int64, error)
	FindAll(ctx context.Context, q *entity.LogQuery) ([]*entity.LogEvent, error)
	FindIds(ctx context.Context, q *entity.LogQuery) ([]uuid.UUID, error)
	DeleteByIds(ctx context.Context, ids []uuid.UUID) (int64, error) // Returns rows affected
}
