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

// ProjectUseCase ciclo de vida del proyecto: alta, decisión de gerencia y ejecución.
type ProjectUseCase struct {
	base
	repo repository.ProjectRepository
}

// NewProjectUseCase construye el caso de uso.
func NewProjectUseCase(repo repository.ProjectRepository, opts Options) *ProjectUseCase {
	return &ProjectUseCase{base: newBase(opts, "workflow.project"), repo: repo}
}

// Create registra un proyecto en pending_approval con avance 0. Solo sales y master.
func (uc *ProjectUseCase) Create(ctx context.Context, s entity.Session, in dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := uc.authorize(s, policy.ResourceProject, policy.ActionCreate); err != nil {
		return nil, err
	}
	code := strings.TrimSpace(in.ProjectCode)
	name := strings.TrimSpace(in.Name)
	if code == "" || name == "" || in.EstimatedCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	project := &entity.Project{
		ID:              uuid.New().String(),
		ProjectCode:     code,
		Name:            name,
		ClientName:      in.ClientName,
		Description:     in.Description,
		EstimatedCost:   in.EstimatedCost,
		StartDate:       parseDate(in.StartDate),
		EndDate:         parseDate(in.EndDate),
		Status:          entity.ProjectPendingApproval,
		ProgressPercent: 0,
		CreatedBy:       s.UserID,
		CreatedAt:       uc.now(),
	}
	if err := uc.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("crear proyecto: %w", err)
	}
	uc.logChange(s, "project", project.ID, "", string(project.Status))
	out := dto.ToProjectResponse(project)
	return &out, nil
}

// Approve marca el proyecto approved y registra al aprobador.
func (uc *ProjectUseCase) Approve(ctx context.Context, s entity.Session, id string) (*dto.ProjectResponse, error) {
	if err := uc.authorize(s, policy.ResourceProject, policy.ActionApprove); err != nil {
		return nil, err
	}
	return uc.decide(ctx, s, id, entity.ProjectApproved)
}

// Reject marca el proyecto rejected. approved_by no se toca.
func (uc *ProjectUseCase) Reject(ctx context.Context, s entity.Session, id string) (*dto.ProjectResponse, error) {
	if err := uc.authorize(s, policy.ResourceProject, policy.ActionReject); err != nil {
		return nil, err
	}
	return uc.decide(ctx, s, id, entity.ProjectRejected)
}

func (uc *ProjectUseCase) decide(ctx context.Context, s entity.Session, id string, to entity.ProjectStatus) (*dto.ProjectResponse, error) {
	project, err := loadProject(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if !uc.guards.CanDecideProject(project.Status) {
		return nil, domain.ErrInvalidTransition
	}
	from := project.Status
	project.Status = to
	if to == entity.ProjectApproved {
		approver := s.UserID
		project.ApprovedBy = &approver
	}
	if err := uc.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("actualizar proyecto: %w", err)
	}
	uc.logChange(s, "project", project.ID, string(from), string(to))
	out := dto.ToProjectResponse(project)
	return &out, nil
}

// Transition mueve el proyecto a in_progress, on_hold, completed o cancelled.
func (uc *ProjectUseCase) Transition(ctx context.Context, s entity.Session, id string, status string) (*dto.ProjectResponse, error) {
	if err := uc.authorize(s, policy.ResourceProject, policy.ActionTransition); err != nil {
		return nil, err
	}
	to := entity.ProjectStatus(status)
	if !policy.IsTransitionTarget(to) {
		return nil, domain.ErrInvalidStatus
	}
	project, err := loadProject(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	if !uc.guards.CanTransitionProject(project.Status) {
		return nil, domain.ErrInvalidTransition
	}
	from := project.Status
	project.Status = to
	if err := uc.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("actualizar proyecto: %w", err)
	}
	uc.logChange(s, "project", project.ID, string(from), string(to))
	out := dto.ToProjectResponse(project)
	return &out, nil
}

// UpdateProgress fija el porcentaje de avance. Fuera de [0,100] es domain.ErrInvalidInput.
func (uc *ProjectUseCase) UpdateProgress(ctx context.Context, s entity.Session, id string, percent int) (*dto.ProjectResponse, error) {
	if err := uc.authorize(s, policy.ResourceProject, policy.ActionProgress); err != nil {
		return nil, err
	}
	if !policy.ValidProgress(percent) {
		return nil, domain.ErrInvalidInput
	}
	project, err := loadProject(ctx, uc.repo, id)
	if err != nil {
		return nil, err
	}
	project.ProgressPercent = percent
	if err := uc.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("actualizar avance: %w", err)
	}
	uc.log.Info().Str("project_id", id).Int("progress", percent).Str("actor", s.UserID).Msg("avance actualizado")
	out := dto.ToProjectResponse(project)
	return &out, nil
}
