package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// ProjectFilter criterios de listado; los campos vacíos no filtran.
type ProjectFilter struct {
	CreatedBy string
	Statuses  []entity.ProjectStatus
}

// ProjectStats contadores globales del dashboard.
type ProjectStats struct {
	Total           int
	PendingApproval int
	InProgress      int
	Completed       int
}

// ProjectRepository define el puerto de persistencia para Project.
type ProjectRepository interface {
	// Create devuelve domain.ErrDuplicate si el project_code ya existe.
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	// Update persiste status, progress_percent y approved_by.
	Update(ctx context.Context, project *entity.Project) error
	// List devuelve los proyectos ordenados por created_at descendente.
	List(ctx context.Context, filter ProjectFilter) ([]*entity.Project, error)
	Stats(ctx context.Context) (ProjectStats, error)
}
