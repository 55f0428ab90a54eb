package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para emitir una factura sobre un proyecto.
type CreateInvoiceRequest struct {
	ProjectID   string          `json:"project_id" validate:"required,uuid"`
	InvoiceType string          `json:"invoice_type" validate:"omitempty,max=50"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	InvoiceType   string          `json:"invoice_type"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentStatus string          `json:"payment_status"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
}
