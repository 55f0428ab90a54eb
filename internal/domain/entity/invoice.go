package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus estado de cobro de una factura.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

// Invoice factura emitida contra un proyecto.
type Invoice struct {
	ID            string
	ProjectID     string
	InvoiceType   string // ej. advance, progress, final
	Amount        decimal.Decimal
	PaymentStatus PaymentStatus
	CreatedBy     string
	CreatedAt     time.Time
}
