package workflow_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Proyectos-api/internal/application/dto"
	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

func TestAddPurchaseRequest(t *testing.T) {
	f := newFixture(t, false)
	p := f.createProject(t, "P-PR1")
	ctx := context.Background()

	pr, err := f.procurement.AddPurchaseRequest(ctx, operations, dto.CreatePurchaseRequest{
		ProjectID:     p.ID,
		Description:   "Cemento",
		EstimatedCost: decimal.RequireFromString("250.50"),
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.PurchasePending), pr.Status)
	assert.Equal(t, operations.UserID, pr.RequestedBy)
	assert.Nil(t, pr.SupplierID)
	assert.True(t, pr.EstimatedCost.Equal(decimal.RequireFromString("250.5")))

	for _, s := range []entity.Session{sales, manager, finance, hr, procurement} {
		_, err := f.procurement.AddPurchaseRequest(ctx, s, dto.CreatePurchaseRequest{ProjectID: p.ID})
		assert.ErrorIs(t, err, domain.ErrForbidden, "rol %s", s.Role)
	}

	_, err = f.procurement.AddPurchaseRequest(ctx, projectsRol, dto.CreatePurchaseRequest{ProjectID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.procurement.AddPurchaseRequest(ctx, projectsRol, dto.CreatePurchaseRequest{ProjectID: p.ID, SupplierID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAddPurchaseRequest_ConProveedor(t *testing.T) {
	f := newFixture(t, false)
	p := f.createProject(t, "P-PR2")
	ctx := context.Background()

	sup, err := f.procurement.AddSupplier(ctx, procurement, dto.CreateSupplierRequest{Name: "Aceros SA"})
	require.NoError(t, err)
	assert.True(t, sup.IsActive)

	pr, err := f.procurement.AddPurchaseRequest(ctx, master, dto.CreatePurchaseRequest{ProjectID: p.ID, SupplierID: sup.ID})
	require.NoError(t, err)
	require.NotNil(t, pr.SupplierID)
	assert.Equal(t, sup.ID, *pr.SupplierID)
}

func TestDecidePurchaseRequest(t *testing.T) {
	f := newFixture(t, false)
	p := f.createProject(t, "P-PR3")
	ctx := context.Background()
	pr, err := f.procurement.AddPurchaseRequest(ctx, operations, dto.CreatePurchaseRequest{ProjectID: p.ID})
	require.NoError(t, err)

	_, err = f.procurement.ApprovePurchaseRequest(ctx, operations, pr.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.procurement.ApprovePurchaseRequest(ctx, procurement, pr.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.PurchaseApproved), out.Status)

	// Sin modo estricto la escritura es incondicional.
	out, err = f.procurement.RejectPurchaseRequest(ctx, master, pr.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.PurchaseRejected), out.Status)

	_, err = f.procurement.RejectPurchaseRequest(ctx, master, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDecidePurchaseRequest_Estricto(t *testing.T) {
	f := newFixture(t, true)
	p := f.createProject(t, "P-PR4")
	ctx := context.Background()
	pr, err := f.procurement.AddPurchaseRequest(ctx, operations, dto.CreatePurchaseRequest{ProjectID: p.ID})
	require.NoError(t, err)

	_, err = f.procurement.RejectPurchaseRequest(ctx, procurement, pr.ID)
	require.NoError(t, err)
	_, err = f.procurement.ApprovePurchaseRequest(ctx, procurement, pr.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	stored, err := f.store.PurchaseRequests().GetByID(ctx, pr.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PurchaseRejected, stored.Status)
}

func TestSuppliers(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.procurement.AddSupplier(ctx, operations, dto.CreateSupplierRequest{Name: "X"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.procurement.AddSupplier(ctx, procurement, dto.CreateSupplierRequest{Name: "  "})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.procurement.AddSupplier(ctx, master, dto.CreateSupplierRequest{Name: "Ferretería Norte"})
	require.NoError(t, err)

	list, err := f.procurement.ListSuppliers(ctx, operations)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Ferretería Norte", list[0].Name)

	_, err = f.procurement.ListSuppliers(ctx, hr)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
