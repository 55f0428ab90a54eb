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

// InvoicePDFGenerator puerto de salida para la representación imprimible de una factura.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, project *entity.Project) ([]byte, error)
}

// InvoiceUseCase facturación de proyectos.
type InvoiceUseCase struct {
	base
	invoices  repository.InvoiceRepository
	projects  repository.ProjectRepository
	generator InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso. generator puede ser nil si no se sirven PDFs.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, projects repository.ProjectRepository, generator InvoicePDFGenerator, opts Options) *InvoiceUseCase {
	return &InvoiceUseCase{
		base:      newBase(opts, "workflow.invoice"),
		invoices:  invoices,
		projects:  projects,
		generator: generator,
	}
}

// Add emite una factura pending sobre un proyecto existente.
func (uc *InvoiceUseCase) Add(ctx context.Context, s entity.Session, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if err := uc.authorize(s, policy.ResourceInvoice, policy.ActionCreate); err != nil {
		return nil, err
	}
	if in.Amount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := loadProject(ctx, uc.projects, in.ProjectID); err != nil {
		return nil, err
	}
	inv := &entity.Invoice{
		ID:            uuid.New().String(),
		ProjectID:     in.ProjectID,
		InvoiceType:   strings.TrimSpace(in.InvoiceType),
		Amount:        in.Amount,
		PaymentStatus: entity.PaymentPending,
		CreatedBy:     s.UserID,
		CreatedAt:     uc.now(),
	}
	if err := uc.invoices.Create(ctx, inv); err != nil {
		return nil, fmt.Errorf("crear factura: %w", err)
	}
	uc.logChange(s, "invoice", inv.ID, "", string(inv.PaymentStatus))
	out := dto.ToInvoiceResponse(inv)
	return &out, nil
}

// MarkPaid marca la factura como pagada.
func (uc *InvoiceUseCase) MarkPaid(ctx context.Context, s entity.Session, id string) (*dto.InvoiceResponse, error) {
	if err := uc.authorize(s, policy.ResourceInvoice, policy.ActionMarkPaid); err != nil {
		return nil, err
	}
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.guards.CanMarkPaid(inv.PaymentStatus) {
		return nil, domain.ErrInvalidTransition
	}
	from := inv.PaymentStatus
	if err := uc.invoices.UpdatePaymentStatus(ctx, id, entity.PaymentPaid); err != nil {
		return nil, fmt.Errorf("actualizar factura: %w", err)
	}
	inv.PaymentStatus = entity.PaymentPaid
	uc.logChange(s, "invoice", id, string(from), string(inv.PaymentStatus))
	out := dto.ToInvoiceResponse(inv)
	return &out, nil
}

// DownloadPDF genera el PDF de la factura y el nombre de archivo sugerido.
func (uc *InvoiceUseCase) DownloadPDF(ctx context.Context, s entity.Session, id string) ([]byte, string, error) {
	if err := uc.authorize(s, policy.ResourceInvoice, policy.ActionDownload); err != nil {
		return nil, "", err
	}
	if uc.generator == nil {
		return nil, "", fmt.Errorf("pdf: generador no configurado")
	}
	inv, err := uc.invoices.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("obtener factura: %w", err)
	}
	if inv == nil {
		return nil, "", domain.ErrNotFound
	}
	project, err := loadProject(ctx, uc.projects, inv.ProjectID)
	if err != nil {
		return nil, "", err
	}
	data, err := uc.generator.GenerateInvoicePDF(ctx, inv, project)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: %w", err)
	}
	filename := fmt.Sprintf("factura-%s-%s.pdf", project.ProjectCode, inv.ID)
	return data, filename, nil
}
