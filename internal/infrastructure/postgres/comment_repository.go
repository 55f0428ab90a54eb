package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.CommentRepository = (*CommentRepo)(nil)

// CommentRepo comentarios de solo-agregado.
type CommentRepo struct {
	q Querier
}

// NewCommentRepository construye el adaptador.
func NewCommentRepository(q Querier) *CommentRepo {
	return &CommentRepo{q: q}
}

func (r *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO comments (id, project_id, user_id, comment_text, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.ProjectID, c.UserID, c.CommentText, c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

// ListByProject del más reciente al más antiguo.
func (r *CommentRepo) ListByProject(ctx context.Context, projectID string) ([]*entity.Comment, error) {
	if !validID(projectID) {
		return nil, nil
	}
	rows, err := r.q.Query(ctx, `
		SELECT id, project_id, user_id, comment_text, created_at
		FROM comments WHERE project_id = $1 ORDER BY created_at DESC`, projectID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	list, err := collectRows(rows, func(rs pgx.Rows) (*entity.Comment, error) {
		var c entity.Comment
		if err := rs.Scan(&c.ID, &c.ProjectID, &c.UserID, &c.CommentText, &c.CreatedAt); err != nil {
			return nil, err
		}
		return &c, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan comments: %w", err)
	}
	return list, nil
}
