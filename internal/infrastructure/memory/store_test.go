package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
	"github.com/jhoicas/Proyectos-api/internal/infrastructure/memory"
)

var t0 = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

func project(id, code, createdBy string, status entity.ProjectStatus, at time.Time) *entity.Project {
	return &entity.Project{ID: id, ProjectCode: code, Name: code, CreatedBy: createdBy, Status: status, CreatedAt: at}
}

func ids[T any](list []*T, id func(*T) string) []string {
	out := make([]string, 0, len(list))
	for _, v := range list {
		out = append(out, id(v))
	}
	return out
}

func TestProjects_ListMasRecientePrimeroYFiltros(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Projects()
	require.NoError(t, repo.Create(ctx, project("p1", "A", "u1", entity.ProjectPendingApproval, t0)))
	require.NoError(t, repo.Create(ctx, project("p2", "B", "u2", entity.ProjectApproved, t0.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, project("p3", "C", "u1", entity.ProjectInProgress, t0.Add(2*time.Hour))))
	// mismo created_at que p3: desempata el orden de inserción
	require.NoError(t, repo.Create(ctx, project("p4", "D", "u1", entity.ProjectInProgress, t0.Add(2*time.Hour))))

	projectID := func(p *entity.Project) string { return p.ID }

	all, err := repo.List(ctx, repository.ProjectFilter{})
	require.NoError(t, err)
	assert.Equal(t, []string{"p4", "p3", "p2", "p1"}, ids(all, projectID))

	mine, err := repo.List(ctx, repository.ProjectFilter{CreatedBy: "u1", Statuses: []entity.ProjectStatus{entity.ProjectInProgress}})
	require.NoError(t, err)
	assert.Equal(t, []string{"p4", "p3"}, ids(mine, projectID))

	st, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, repository.ProjectStats{Total: 4, PendingApproval: 1, InProgress: 2}, st)
}

func TestProjects_CodigoDuplicado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Projects()
	require.NoError(t, repo.Create(ctx, project("p1", "A", "u1", entity.ProjectPendingApproval, t0)))

	err := repo.Create(ctx, project("p2", "A", "u1", entity.ProjectPendingApproval, t0))
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProjects_CopiasAisladas(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Projects()
	require.NoError(t, repo.Create(ctx, project("p1", "A", "u1", entity.ProjectPendingApproval, t0)))

	got, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	got.Status = entity.ProjectCancelled

	again, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, entity.ProjectPendingApproval, again.Status)

	missing, err := repo.GetByID(ctx, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestComments_MasRecientePrimero_TareasMasAntiguaPrimero(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	for i, id := range []string{"c1", "c2", "c3"} {
		require.NoError(t, store.Comments().Create(ctx, &entity.Comment{ID: id, ProjectID: "p1", CommentText: id, CreatedAt: t0.Add(time.Duration(i) * time.Minute)}))
		require.NoError(t, store.Tasks().Create(ctx, &entity.Task{ID: "t" + id, ProjectID: "p1", Name: id, CreatedAt: t0.Add(time.Duration(i) * time.Minute)}))
	}
	require.NoError(t, store.Comments().Create(ctx, &entity.Comment{ID: "otro", ProjectID: "p2", CreatedAt: t0}))

	comments, err := store.Comments().ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c3", "c2", "c1"}, ids(comments, func(c *entity.Comment) string { return c.ID }))

	tasks, err := store.Tasks().ListByProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, []string{"tc1", "tc2", "tc3"}, ids(tasks, func(tk *entity.Task) string { return tk.ID }))
}

func TestUsers_ListActiveOrdenadoYUnico(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().Users()
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "1", Username: "zeta", IsActive: true}))
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "2", Username: "alfa", IsActive: true}))
	require.NoError(t, repo.Create(ctx, &entity.User{ID: "3", Username: "beta", IsActive: false}))

	assert.ErrorIs(t, repo.Create(ctx, &entity.User{ID: "4", Username: "alfa"}), domain.ErrDuplicate)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"alfa", "zeta"}, ids(active, func(u *entity.User) string { return u.Username }))

	byID, err := repo.GetByIDs(ctx, []string{"1", "3", "x"})
	require.NoError(t, err)
	assert.Len(t, byID, 2)
}

func TestRunUsers_RevierteSiFalla(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	boom := errors.New("boom")

	err := store.RunUsers(ctx, func(users repository.UserRepository) error {
		require.NoError(t, users.Create(ctx, &entity.User{ID: "1", Username: "uno"}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	n, err := store.Users().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPurchaseRequests_FiltroYEstado(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewStore().PurchaseRequests()
	require.NoError(t, repo.Create(ctx, &entity.PurchaseRequest{ID: "r1", ProjectID: "p1", RequestedBy: "u1", Status: entity.PurchasePending, CreatedAt: t0}))
	require.NoError(t, repo.Create(ctx, &entity.PurchaseRequest{ID: "r2", ProjectID: "p1", RequestedBy: "u2", Status: entity.PurchasePending, CreatedAt: t0.Add(time.Minute)}))

	own, err := repo.List(ctx, repository.PurchaseRequestFilter{RequestedBy: "u2"})
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "r2", own[0].ID)

	require.NoError(t, repo.UpdateStatus(ctx, "r1", entity.PurchaseApproved))
	got, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseApproved, got.Status)

	assert.ErrorIs(t, repo.UpdateStatus(ctx, "nope", entity.PurchaseApproved), domain.ErrNotFound)
}
