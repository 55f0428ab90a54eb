package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreatePurchaseRequest entrada para una solicitud de compra.
type CreatePurchaseRequest struct {
	ProjectID     string          `json:"project_id" validate:"required,uuid"`
	SupplierID    string          `json:"supplier_id" validate:"omitempty,uuid"`
	Description   string          `json:"description"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
}

// PurchaseRequestResponse salida de una solicitud de compra.
type PurchaseRequestResponse struct {
	ID            string          `json:"id"`
	ProjectID     string          `json:"project_id"`
	RequestedBy   string          `json:"requested_by"`
	SupplierID    *string         `json:"supplier_id"`
	Description   string          `json:"description"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Status        string          `json:"status"`
	CreatedAt     time.Time       `json:"created_at"`
}

// CreateSupplierRequest entrada para registrar un proveedor.
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	ContactPerson string `json:"contact_person" validate:"omitempty,max=100"`
	Email         string `json:"email" validate:"omitempty,email"`
	Phone         string `json:"phone" validate:"omitempty,max=20"`
	Address       string `json:"address"`
}

// SupplierResponse salida de un proveedor.
type SupplierResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
}
