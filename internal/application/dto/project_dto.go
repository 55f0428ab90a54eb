package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProjectRequest entrada para registrar un proyecto. Las fechas van en YYYY-MM-DD;
// una fecha vacía o mal formada se guarda como nula sin error.
type CreateProjectRequest struct {
	ProjectCode   string          `json:"project_code" validate:"required,max=50"`
	Name          string          `json:"name" validate:"required,max=200"`
	ClientName    string          `json:"client_name" validate:"omitempty,max=200"`
	Description   string          `json:"description"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
}

// UpdateProgressRequest entrada para fijar el avance de un proyecto.
type UpdateProgressRequest struct {
	ProgressPercent int `json:"progress_percent"`
}

// ProjectResponse salida de un proyecto.
type ProjectResponse struct {
	ID              string          `json:"id"`
	ProjectCode     string          `json:"project_code"`
	Name            string          `json:"name"`
	ClientName      string          `json:"client_name"`
	Description     string          `json:"description"`
	EstimatedCost   decimal.Decimal `json:"estimated_cost"`
	StartDate       *string         `json:"start_date"`
	EndDate         *string         `json:"end_date"`
	Status          string          `json:"status"`
	ProgressPercent int             `json:"progress_percent"`
	CreatedBy       string          `json:"created_by"`
	ApprovedBy      *string         `json:"approved_by"`
	CreatedAt       time.Time       `json:"created_at"`
}
