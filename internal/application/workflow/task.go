package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/policy"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// TaskUseCase tareas de ejecución de un proyecto.
type TaskUseCase struct {
	base
	tasks    repository.TaskRepository
	projects repository.ProjectRepository
	users    repository.UserRepository
}

// NewTaskUseCase construye el caso de uso.
func NewTaskUseCase(tasks repository.TaskRepository, projects repository.ProjectRepository, users repository.UserRepository, opts Options) *TaskUseCase {
	return &TaskUseCase{base: newBase(opts, "workflow.task"), tasks: tasks, projects: projects, users: users}
}

// Add crea una tarea not_started con avance 0. El proyecto y el responsable (si viene) deben existir.
func (uc *TaskUseCase) Add(ctx context.Context, s entity.Session, projectID string, in dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	if err := uc.authorize(s, policy.ResourceTask, policy.ActionCreate); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	assignee := optionalID(in.AssignedTo)
	if assignee != nil {
		u, err := uc.users.GetByID(ctx, *assignee)
		if err != nil {
			return nil, fmt.Errorf("obtener responsable: %w", err)
		}
		if u == nil {
			return nil, domain.ErrNotFound
		}
	}
	task := &entity.Task{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		Name:            name,
		Description:     in.Description,
		AssignedTo:      assignee,
		Status:          entity.TaskNotStarted,
		ProgressPercent: 0,
		StartDate:       parseDate(in.StartDate),
		EndDate:         parseDate(in.EndDate),
		CreatedAt:       uc.now(),
	}
	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("crear tarea: %w", err)
	}
	uc.logChange(s, "task", task.ID, "", string(task.Status))
	out := dto.ToTaskResponse(task)
	return &out, nil
}

// SetStatus cambia el estado de la tarea: done fuerza avance 100 e in_progress
// sube un avance nulo a 50.
func (uc *TaskUseCase) SetStatus(ctx context.Context, s entity.Session, taskID string, status string) (*dto.TaskResponse, error) {
	if err := uc.authorize(s, policy.ResourceTask, policy.ActionSetStatus); err != nil {
		return nil, err
	}
	to := entity.TaskStatus(status)
	if !policy.IsTaskStatus(to) {
		return nil, domain.ErrInvalidStatus
	}
	task, err := uc.tasks.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("obtener tarea: %w", err)
	}
	if task == nil {
		return nil, domain.ErrNotFound
	}
	from := task.Status
	task.Status = to
	task.ProgressPercent = policy.TaskProgressFor(to, task.ProgressPercent)
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("actualizar tarea: %w", err)
	}
	uc.logChange(s, "task", task.ID, string(from), string(to))
	out := dto.ToTaskResponse(task)
	return &out, nil
}
