package workflow

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/policy"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// CommentUseCase comentarios de solo-agregado.
type CommentUseCase struct {
	base
	comments repository.CommentRepository
	projects repository.ProjectRepository
}

// NewCommentUseCase construye el caso de uso.
func NewCommentUseCase(comments repository.CommentRepository, projects repository.ProjectRepository, opts Options) *CommentUseCase {
	return &CommentUseCase{base: newBase(opts, "workflow.comment"), comments: comments, projects: projects}
}

// Add agrega un comentario. Texto en blanco no crea nada y devuelve (nil, nil).
func (uc *CommentUseCase) Add(ctx context.Context, s entity.Session, projectID, text string) (*dto.CommentResponse, error) {
	if err := uc.authorize(s, policy.ResourceComment, policy.ActionCreate); err != nil {
		return nil, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	if _, err := loadProject(ctx, uc.projects, projectID); err != nil {
		return nil, err
	}
	c := &entity.Comment{
		ID:          uuid.New().String(),
		ProjectID:   projectID,
		UserID:      s.UserID,
		CommentText: text,
		CreatedAt:   uc.now(),
	}
	if err := uc.comments.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("crear comentario: %w", err)
	}
	out := dto.ToCommentResponse(c)
	return &out, nil
}
