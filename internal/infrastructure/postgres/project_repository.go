package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.ProjectRepository = (*ProjectRepo)(nil)

// ProjectRepo implementación de ProjectRepository.
type ProjectRepo struct {
	q Querier
}

// NewProjectRepository construye el adaptador. Acepta pool o tx (Querier).
func NewProjectRepository(q Querier) *ProjectRepo {
	return &ProjectRepo{q: q}
}

const projectColumns = `id, project_code, name, client_name, description, estimated_cost,
	start_date, end_date, status, progress_percent, created_by, approved_by, created_at`

func scanProject(row pgx.Row) (*entity.Project, error) {
	var p entity.Project
	var status string
	if err := row.Scan(&p.ID, &p.ProjectCode, &p.Name, &p.ClientName, &p.Description, &p.EstimatedCost,
		&p.StartDate, &p.EndDate, &status, &p.ProgressPercent, &p.CreatedBy, &p.ApprovedBy, &p.CreatedAt); err != nil {
		return nil, err
	}
	p.Status = entity.ProjectStatus(status)
	return &p, nil
}

// Create persiste un proyecto. project_code duplicado devuelve domain.ErrDuplicate.
func (r *ProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.ProjectCode, p.Name, p.ClientName, p.Description, p.EstimatedCost,
		p.StartDate, p.EndDate, string(p.Status), p.ProgressPercent, p.CreatedBy, p.ApprovedBy, p.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// GetByID obtiene un proyecto por ID.
func (r *ProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	if !validID(id) {
		return nil, nil
	}
	p, err := scanProject(r.q.QueryRow(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// Update persiste status, progress_percent y approved_by en una sola sentencia.
func (r *ProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	tag, err := r.q.Exec(ctx, `
		UPDATE projects SET status = $2, progress_percent = $3, approved_by = $4
		WHERE id = $1`,
		p.ID, string(p.Status), p.ProgressPercent, p.ApprovedBy,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update project %s: %w", p.ID, domain.ErrNotFound)
	}
	return nil
}

// List aplica el filtro y ordena por created_at descendente.
func (r *ProjectRepo) List(ctx context.Context, filter repository.ProjectFilter) ([]*entity.Project, error) {
	var (
		where []string
		args  []any
	)
	if filter.CreatedBy != "" {
		if !validID(filter.CreatedBy) {
			return nil, nil
		}
		args = append(args, filter.CreatedBy)
		where = append(where, fmt.Sprintf("created_by = $%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		statuses := make([]string, 0, len(filter.Statuses))
		for _, s := range filter.Statuses {
			statuses = append(statuses, string(s))
		}
		args = append(args, statuses)
		where = append(where, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	query := `SELECT ` + projectColumns + ` FROM projects`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	list, err := collectRows(rows, func(rs pgx.Rows) (*entity.Project, error) { return scanProject(rs) })
	if err != nil {
		return nil, fmt.Errorf("scan projects: %w", err)
	}
	return list, nil
}

// Stats contadores globales por estado.
func (r *ProjectRepo) Stats(ctx context.Context) (repository.ProjectStats, error) {
	var st repository.ProjectStats
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'pending_approval'),
		       COUNT(*) FILTER (WHERE status = 'in_progress'),
		       COUNT(*) FILTER (WHERE status = 'completed')
		FROM projects`).Scan(&st.Total, &st.PendingApproval, &st.InProgress, &st.Completed)
	if err != nil {
		return st, fmt.Errorf("project stats: %w", err)
	}
	return st, nil
}
