package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// CommentRepository define el puerto de persistencia para Comment (solo agregar).
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	// ListByProject devuelve los comentarios del más reciente al más antiguo.
	ListByProject(ctx context.Context, projectID string) ([]*entity.Comment, error)
}
