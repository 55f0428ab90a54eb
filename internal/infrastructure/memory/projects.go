package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo proyectos en memoria.
type ProjectRepo struct{ s *Store }

func cloneProject(p entity.Project) *entity.Project {
	p.StartDate = cloneTime(p.StartDate)
	p.EndDate = cloneTime(p.EndDate)
	p.ApprovedBy = cloneStr(p.ApprovedBy)
	return &p
}

func (r *ProjectRepo) Create(_ context.Context, project *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rec := range r.s.projects {
		if rec.val.ProjectCode == project.ProjectCode {
			return domain.ErrDuplicate
		}
	}
	r.s.projects[project.ID] = record[entity.Project]{seq: r.s.nextSeq(), val: *cloneProject(*project)}
	return nil
}

func (r *ProjectRepo) GetByID(_ context.Context, id string) (*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.projects[id]
	if !ok {
		return nil, nil
	}
	return cloneProject(rec.val), nil
}

func (r *ProjectRepo) Update(_ context.Context, project *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.projects[project.ID]
	if !ok {
		return errNotFound("project", project.ID)
	}
	rec.val.Status = project.Status
	rec.val.ProgressPercent = project.ProgressPercent
	rec.val.ApprovedBy = cloneStr(project.ApprovedBy)
	r.s.projects[project.ID] = rec
	return nil
}

func (r *ProjectRepo) List(_ context.Context, filter repository.ProjectFilter) ([]*entity.Project, error) {
	r.s.mu.RLock()
	var recs []record[entity.Project]
	for _, rec := range r.s.projects {
		if filter.CreatedBy != "" && rec.val.CreatedBy != filter.CreatedBy {
			continue
		}
		if len(filter.Statuses) > 0 && !hasStatus(filter.Statuses, rec.val.Status) {
			continue
		}
		recs = append(recs, rec)
	}
	r.s.mu.RUnlock()

	sorted := sortNewestFirst(recs, func(p entity.Project) time.Time { return p.CreatedAt })
	out := make([]*entity.Project, 0, len(sorted))
	for _, p := range sorted {
		out = append(out, cloneProject(p))
	}
	return out, nil
}

func (r *ProjectRepo) Stats(_ context.Context) (repository.ProjectStats, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var st repository.ProjectStats
	for _, rec := range r.s.projects {
		st.Total++
		switch rec.val.Status {
		case entity.ProjectPendingApproval:
			st.PendingApproval++
		case entity.ProjectInProgress:
			st.InProgress++
		case entity.ProjectCompleted:
			st.Completed++
		}
	}
	return st, nil
}

func hasStatus(list []entity.ProjectStatus, s entity.ProjectStatus) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
