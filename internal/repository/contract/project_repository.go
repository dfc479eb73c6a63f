package contract

import (
	"context"

	"logfiber-be/internal/entity"

	"github.com/google/uuid"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindById(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	FindBySlug(ctx context.Context, slug string) (*entity.Project, error)
}
