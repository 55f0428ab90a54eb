package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo implementación de TaskRepository.
type TaskRepo struct {
	q Querier
}

// NewTaskRepository construye el adaptador.
func NewTaskRepository(q Querier) *TaskRepo {
	return &TaskRepo{q: q}
}

const taskColumns = `id, project_id, name, description, assigned_to, status, progress_percent, start_date, end_date, created_at`

func scanTask(row pgx.Row) (*entity.Task, error) {
	var t entity.Task
	var status string
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Name, &t.Description, &t.AssignedTo, &status,
		&t.ProgressPercent, &t.StartDate, &t.EndDate, &t.CreatedAt); err != nil {
		return nil, err
	}
	t.Status = entity.TaskStatus(status)
	return &t, nil
}

func (r *TaskRepo) Create(ctx context.Context, t *entity.Task) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		t.ID, t.ProjectID, t.Name, t.Description, t.AssignedTo, string(t.Status),
		t.ProgressPercent, t.StartDate, t.EndDate, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	if !validID(id) {
		return nil, nil
	}
	t, err := scanTask(r.q.QueryRow(ctx, `SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r *TaskRepo) Update(ctx context.Context, t *entity.Task) error {
	tag, err := r.q.Exec(ctx, `UPDATE tasks SET status = $2, progress_percent = $3 WHERE id = $1`,
		t.ID, string(t.Status), t.ProgressPercent)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update task %s: %w", t.ID, domain.ErrNotFound)
	}
	return nil
}

// ListByProject tareas en orden de creación.
func (r *TaskRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error) {
	if !validID(projectID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `SELECT `+taskColumns+` FROM tasks WHERE project_id = $1 ORDER BY created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	list, err := collectRows(rows, func(rs pgx.Rows) (*entity.Task, error) { return scanTask(rs) })
	if err != nil {
		return nil, fmt.Errorf("scan tasks: %w", err)
	}
	return list, nil
}
