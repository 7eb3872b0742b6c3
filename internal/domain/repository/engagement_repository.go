package repository

import (
	"context"

	"github.com/jhoicas/freelancer-crm/internal/domain/entity"
)

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
}

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
}
