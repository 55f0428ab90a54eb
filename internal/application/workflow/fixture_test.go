package workflow_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/Proyectos-api/internal/application/auth"
	"github.com/jhoicas/Proyectos-api/internal/application/authz"
	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/application/workflow"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/policy"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
)

type fixture struct {
	store       *memory.Store
	projects    *workflow.ProjectUseCase
	tasks       *workflow.TaskUseCase
	procurement *workflow.ProcurementUseCase
	invoices    *workflow.InvoiceUseCase
	comments    *workflow.CommentUseCase
	employees   *workflow.EmployeeUseCase
}

type fakePDF struct{ calls int }

func (f *fakePDF) GenerateInvoicePDF(_ context.Context, inv *entity.Invoice, p *entity.Project) ([]byte, error) {
	f.calls++
	return []byte("%PDF-" + p.ProjectCode + "-" + inv.ID), nil
}

// tickingClock avanza un segundo por llamada para que created_at sea estrictamente creciente.
func tickingClock() func() time.Time {
	t := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newFixture(t *testing.T, strict bool) *fixture {
	t.Helper()
	store := memory.NewStore()
	opts := workflow.Options{
		Authz:  authz.MustNew(),
		Guards: policy.Guards{Strict: strict},
		Log:    zerolog.Nop(),
		Clock:  tickingClock(),
	}
	return &fixture{
		store:       store,
		projects:    workflow.NewProjectUseCase(store.Projects(), opts),
		tasks:       workflow.NewTaskUseCase(store.Tasks(), store.Projects(), store.Users(), opts),
		procurement: workflow.NewProcurementUseCase(store.PurchaseRequests(), store.Suppliers(), store.Projects(), opts),
		invoices:    workflow.NewInvoiceUseCase(store.Invoices(), store.Projects(), &fakePDF{}, opts),
		comments:    workflow.NewCommentUseCase(store.Comments(), store.Projects(), opts),
		employees:   workflow.NewEmployeeUseCase(store.Users(), auth.NewPasswordHasher(bcrypt.MinCost), opts),
	}
}

func sessionFor(role entity.Role) entity.Session {
	return entity.Session{UserID: uuid.New().String(), Username: string(role), Role: role}
}

var (
	master      = sessionFor(entity.RoleMaster)
	sales       = sessionFor(entity.RoleSales)
	manager     = sessionFor(entity.RoleManagement)
	projectsRol = sessionFor(entity.RoleProjects)
	operations  = sessionFor(entity.RoleOperations)
	procurement = sessionFor(entity.RoleProcurement)
	finance     = sessionFor(entity.RoleFinance)
	hr          = sessionFor(entity.RoleHR)
)

func (f *fixture) createProject(t *testing.T, code string) *dto.ProjectResponse {
	t.Helper()
	p, err := f.projects.Create(context.Background(), sales, dto.CreateProjectRequest{
		ProjectCode:   code,
		Name:          "Proyecto " + code,
		ClientName:    "Cliente",
		EstimatedCost: decimal.NewFromInt(1000),
		StartDate:     "2024-03-01",
		EndDate:       "2024-06-30",
	})
	require.NoError(t, err)
	return p
}

func (f *fixture) getProject(t *testing.T, id string) *entity.Project {
	t.Helper()
	p, err := f.store.Projects().GetByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p
}
