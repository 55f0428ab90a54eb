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

func TestAddInvoice(t *testing.T) {
	f := newFixture(t, false)
	p := f.createProject(t, "P-INV1")
	ctx := context.Background()

	inv, err := f.invoices.Add(ctx, finance, dto.CreateInvoiceRequest{ProjectID: p.ID, InvoiceType: "advance", Amount: decimal.NewFromInt(500)})
	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentPending), inv.PaymentStatus)
	assert.Equal(t, finance.UserID, inv.CreatedBy)

	_, err = f.invoices.Add(ctx, sales, dto.CreateInvoiceRequest{ProjectID: p.ID})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = f.invoices.Add(ctx, finance, dto.CreateInvoiceRequest{ProjectID: "no-existe"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	_, err = f.invoices.Add(ctx, finance, dto.CreateInvoiceRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(-5)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarkInvoicePaid(t *testing.T) {
	f := newFixture(t, false)
	p := f.createProject(t, "P-INV2")
	ctx := context.Background()
	inv, err := f.invoices.Add(ctx, master, dto.CreateInvoiceRequest{ProjectID: p.ID, InvoiceType: "final", Amount: decimal.NewFromInt(900)})
	require.NoError(t, err)

	_, err = f.invoices.MarkPaid(ctx, operations, inv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.invoices.MarkPaid(ctx, finance, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.PaymentPaid), out.PaymentStatus)

	_, err = f.invoices.MarkPaid(ctx, finance, inv.ID)
	assert.NoError(t, err, "sin modo estricto se puede repetir")

	_, err = f.invoices.MarkPaid(ctx, finance, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMarkInvoicePaid_Estricto(t *testing.T) {
	f := newFixture(t, true)
	p := f.createProject(t, "P-INV3")
	ctx := context.Background()
	inv, err := f.invoices.Add(ctx, finance, dto.CreateInvoiceRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(1)})
	require.NoError(t, err)

	_, err = f.invoices.MarkPaid(ctx, finance, inv.ID)
	require.NoError(t, err)
	_, err = f.invoices.MarkPaid(ctx, finance, inv.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestDownloadInvoicePDF(t *testing.T) {
	f := newFixture(t, false)
	p := f.createProject(t, "P-INV4")
	ctx := context.Background()
	inv, err := f.invoices.Add(ctx, finance, dto.CreateInvoiceRequest{ProjectID: p.ID, Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	data, name, err := f.invoices.DownloadPDF(ctx, finance, inv.ID)
	require.NoError(t, err)
	assert.Contains(t, string(data), "%PDF-P-INV4")
	assert.Equal(t, "factura-P-INV4-"+inv.ID+".pdf", name)

	_, _, err = f.invoices.DownloadPDF(ctx, projectsRol, inv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, _, err = f.invoices.DownloadPDF(ctx, finance, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
