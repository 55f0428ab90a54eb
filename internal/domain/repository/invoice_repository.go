package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entity.PaymentStatus) error
	// List con projectID vacío devuelve todas las facturas.
	List(ctx context.Context, projectID string) ([]*entity.Invoice, error)
}
