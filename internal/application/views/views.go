// Package views arma las vistas de lectura filtradas por rol: dashboard,
// detalle de proyecto y selectores de proyectos elegibles.
package views

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/Proyectos-api/internal/application/authz"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/policy"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

// Purpose selector de proyectos para un formulario.
type Purpose string

const (
	PurposePurchase Purpose = "purchase"
	PurposeInvoice  Purpose = "invoice"
)

// Repositories puertos de lectura que consume el compositor.
type Repositories struct {
	Users            repository.UserRepository
	Projects         repository.ProjectRepository
	Tasks            repository.TaskRepository
	PurchaseRequests repository.PurchaseRequestRepository
	Invoices         repository.InvoiceRepository
	Comments         repository.CommentRepository
}

// ViewUseCase compositor de vistas. Solo lee.
type ViewUseCase struct {
	repos Repositories
	authz *authz.Authorizer
	log   zerolog.Logger
}

// NewViewUseCase construye el compositor.
func NewViewUseCase(repos Repositories, az *authz.Authorizer, log zerolog.Logger) *ViewUseCase {
	return &ViewUseCase{repos: repos, authz: az, log: log.With().Str("component", "views").Logger()}
}

// Dashboard devuelve los proyectos, compras y facturas visibles para el rol, más los contadores globales.
// Las cuatro lecturas corren en paralelo.
func (uc *ViewUseCase) Dashboard(ctx context.Context, s entity.Session) (*dto.DashboardDTO, error) {
	if !s.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}

	var (
		projects  []*entity.Project
		purchases []*entity.PurchaseRequest
		invoices  []*entity.Invoice
		stats     repository.ProjectStats
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = uc.repos.Projects.List(gctx, projectFilterFor(s))
		if err != nil {
			return fmt.Errorf("dashboard: proyectos: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		purchases, err = uc.visiblePurchases(gctx, s)
		if err != nil {
			return fmt.Errorf("dashboard: compras: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if !uc.authz.Allowed(s.Role, policy.ResourceInvoice, policy.ActionList) {
			return nil
		}
		var err error
		invoices, err = uc.repos.Invoices.List(gctx, "")
		if err != nil {
			return fmt.Errorf("dashboard: facturas: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		stats, err = uc.repos.Projects.Stats(gctx)
		if err != nil {
			return fmt.Errorf("dashboard: contadores: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.DashboardDTO{
		Projects:         dto.ToProjectList(projects),
		PurchaseRequests: dto.ToPurchaseRequestList(purchases),
		Invoices:         dto.ToInvoiceList(invoices),
		Stats:            toStatsDTO(stats),
	}, nil
}

// Stats contadores globales; iguales para todos los roles.
func (uc *ViewUseCase) Stats(ctx context.Context, s entity.Session) (*dto.DashboardStatsDTO, error) {
	if !s.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	st, err := uc.repos.Projects.Stats(ctx)
	if err != nil {
		return nil, fmt.Errorf("contadores: %w", err)
	}
	out := toStatsDTO(st)
	return &out, nil
}

// ProjectDetail proyecto con sus tareas, compras, facturas, comentarios (más reciente primero),
// usuarios activos para asignar y el autor de cada comentario.
func (uc *ViewUseCase) ProjectDetail(ctx context.Context, s entity.Session, projectID string) (*dto.ProjectDetailDTO, error) {
	if !s.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	project, err := uc.repos.Projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("detalle: proyecto: %w", err)
	}
	if project == nil {
		return nil, domain.ErrNotFound
	}

	var (
		tasks     []*entity.Task
		purchases []*entity.PurchaseRequest
		invoices  []*entity.Invoice
		comments  []*entity.Comment
		active    []*entity.User
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		tasks, err = uc.repos.Tasks.ListByProject(gctx, projectID)
		return wrap("tareas", err)
	})
	g.Go(func() (err error) {
		purchases, err = uc.repos.PurchaseRequests.List(gctx, repository.PurchaseRequestFilter{ProjectID: projectID})
		return wrap("compras", err)
	})
	g.Go(func() (err error) {
		invoices, err = uc.repos.Invoices.List(gctx, projectID)
		return wrap("facturas", err)
	})
	g.Go(func() (err error) {
		comments, err = uc.repos.Comments.ListByProject(gctx, projectID)
		return wrap("comentarios", err)
	})
	g.Go(func() (err error) {
		active, err = uc.repos.Users.ListActive(gctx)
		return wrap("usuarios", err)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	authors, err := uc.commentAuthors(ctx, comments)
	if err != nil {
		return nil, err
	}

	out := &dto.ProjectDetailDTO{
		Project:          dto.ToProjectResponse(project),
		Tasks:            dto.ToTaskList(tasks),
		PurchaseRequests: dto.ToPurchaseRequestList(purchases),
		Invoices:         dto.ToInvoiceList(invoices),
		Comments:         make([]dto.CommentResponse, 0, len(comments)),
		ActiveUsers:      make([]dto.UserSummary, 0, len(active)),
		CommentAuthors:   authors,
	}
	for _, c := range comments {
		out.Comments = append(out.Comments, dto.ToCommentResponse(c))
	}
	for _, u := range active {
		out.ActiveUsers = append(out.ActiveUsers, dto.ToUserSummary(u))
	}
	return out, nil
}

// EligibleProjects proyectos que pueden recibir compras (approved, in_progress) o
// facturas (approved, in_progress, completed).
func (uc *ViewUseCase) EligibleProjects(ctx context.Context, s entity.Session, purpose Purpose) ([]dto.ProjectResponse, error) {
	if !s.Authenticated() {
		return nil, domain.ErrUnauthenticated
	}
	var statuses []entity.ProjectStatus
	switch purpose {
	case PurposePurchase:
		statuses = policy.PurchaseEligible
	case PurposeInvoice:
		statuses = policy.InvoiceEligible
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repos.Projects.List(ctx, repository.ProjectFilter{Statuses: statuses})
	if err != nil {
		return nil, fmt.Errorf("proyectos elegibles: %w", err)
	}
	return dto.ToProjectList(list), nil
}

// projectFilterFor traduce el rol al filtro de proyectos del dashboard.
func projectFilterFor(s entity.Session) repository.ProjectFilter {
	switch s.Role {
	case entity.RoleMaster:
		return repository.ProjectFilter{}
	case entity.RoleSales:
		return repository.ProjectFilter{CreatedBy: s.UserID}
	case entity.RoleManagement:
		return repository.ProjectFilter{Statuses: []entity.ProjectStatus{entity.ProjectPendingApproval}}
	default:
		return repository.ProjectFilter{Statuses: policy.ExecutionVisible}
	}
}

// visiblePurchases sin permiso de listado devuelve vacío; sin list_all solo las propias.
func (uc *ViewUseCase) visiblePurchases(ctx context.Context, s entity.Session) ([]*entity.PurchaseRequest, error) {
	if !uc.authz.Allowed(s.Role, policy.ResourcePurchaseRequest, policy.ActionList) {
		return nil, nil
	}
	filter := repository.PurchaseRequestFilter{}
	if !uc.authz.Allowed(s.Role, policy.ResourcePurchaseRequest, policy.ActionListAll) {
		filter.RequestedBy = s.UserID
	}
	return uc.repos.PurchaseRequests.List(ctx, filter)
}

func (uc *ViewUseCase) commentAuthors(ctx context.Context, comments []*entity.Comment) (map[string]dto.UserSummary, error) {
	out := make(map[string]dto.UserSummary, len(comments))
	if len(comments) == 0 {
		return out, nil
	}
	ids := make([]string, 0, len(comments))
	seen := make(map[string]bool, len(comments))
	for _, c := range comments {
		if !seen[c.UserID] {
			seen[c.UserID] = true
			ids = append(ids, c.UserID)
		}
	}
	users, err := uc.repos.Users.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("detalle: autores: %w", err)
	}
	for _, c := range comments {
		if u, ok := users[c.UserID]; ok {
			out[c.ID] = dto.ToUserSummary(u)
		} else {
			uc.log.Debug().Str("comment_id", c.ID).Str("user_id", c.UserID).Msg("autor de comentario no encontrado")
		}
	}
	return out, nil
}

func toStatsDTO(st repository.ProjectStats) dto.DashboardStatsDTO {
	return dto.DashboardStatsDTO{
		Total:      st.Total,
		Pending:    st.PendingApproval,
		InProgress: st.InProgress,
		Completed:  st.Completed,
	}
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("detalle: %s: %w", what, err)
	}
	return nil
}
