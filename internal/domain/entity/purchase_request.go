package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PurchaseStatus estado de una solicitud de compra.
type PurchaseStatus string

const (
	PurchasePending  PurchaseStatus = "pending"
	PurchaseApproved PurchaseStatus = "approved"
	PurchaseRejected PurchaseStatus = "rejected"
)

// PurchaseRequest solicitud de compra asociada a un proyecto.
type PurchaseRequest struct {
	ID            string
	ProjectID     string
	RequestedBy   string
	SupplierID    *string
	Description   string
	EstimatedCost decimal.Decimal
	Status        PurchaseStatus
	CreatedAt     time.Time
}
