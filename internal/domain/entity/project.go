package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProjectStatus estado del ciclo de vida de un proyecto.
type ProjectStatus string

const (
	ProjectPendingApproval ProjectStatus = "pending_approval"
	ProjectApproved        ProjectStatus = "approved"
	ProjectRejected        ProjectStatus = "rejected"
	ProjectInProgress      ProjectStatus = "in_progress"
	ProjectOnHold          ProjectStatus = "on_hold"
	ProjectCompleted       ProjectStatus = "completed"
	ProjectCancelled       ProjectStatus = "cancelled"
)

// Project raíz del agregado: posee tareas, solicitudes de compra, facturas y comentarios.
type Project struct {
	ID              string
	ProjectCode     string
	Name            string
	ClientName      string
	Description     string
	EstimatedCost   decimal.Decimal
	StartDate       *time.Time
	EndDate         *time.Time
	Status          ProjectStatus
	ProgressPercent int
	CreatedBy       string
	ApprovedBy      *string // solo lo escribe la aprobación; nunca se limpia
	CreatedAt       time.Time
}
