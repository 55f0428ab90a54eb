package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// TaskRepository define el puerto de persistencia para Task.
type TaskRepository interface {
	Create(ctx context.Context, task *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	// Update persiste status y progress_percent.
	Update(ctx context.Context, task *entity.Task) error
	ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error)
}
