package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.TaskRepository = (*TaskRepo)(nil)

// TaskRepo tareas en memoria.
type TaskRepo struct{ s *Store }

func cloneTask(t entity.Task) *entity.Task {
	t.AssignedTo = cloneStr(t.AssignedTo)
	t.StartDate = cloneTime(t.StartDate)
	t.EndDate = cloneTime(t.EndDate)
	return &t
}

func (r *TaskRepo) Create(_ context.Context, task *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tasks[task.ID] = record[entity.Task]{seq: r.s.nextSeq(), val: *cloneTask(*task)}
	return nil
}

func (r *TaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.tasks[id]
	if !ok {
		return nil, nil
	}
	return cloneTask(rec.val), nil
}

func (r *TaskRepo) Update(_ context.Context, task *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.tasks[task.ID]
	if !ok {
		return errNotFound("task", task.ID)
	}
	rec.val.Status = task.Status
	rec.val.ProgressPercent = task.ProgressPercent
	r.s.tasks[task.ID] = rec
	return nil
}

// ListByProject devuelve las tareas en orden de creación.
func (r *TaskRepo) ListByProject(_ context.Context, projectID string) ([]*entity.Task, error) {
	r.s.mu.RLock()
	var recs []record[entity.Task]
	for _, rec := range r.s.tasks {
		if rec.val.ProjectID == projectID {
			recs = append(recs, rec)
		}
	}
	r.s.mu.RUnlock()
	sorted := sortOldestFirst(recs, func(t entity.Task) time.Time { return t.CreatedAt })
	out := make([]*entity.Task, 0, len(sorted))
	for _, t := range sorted {
		out = append(out, cloneTask(t))
	}
	return out, nil
}
