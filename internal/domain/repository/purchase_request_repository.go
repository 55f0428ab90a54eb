package repository

import (
	"context"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
)

// PurchaseRequestFilter criterios de listado; los campos vacíos no filtran.
type PurchaseRequestFilter struct {
	ProjectID   string
	RequestedBy string
}

// PurchaseRequestRepository define el puerto de persistencia para PurchaseRequest.
type PurchaseRequestRepository interface {
	Create(ctx context.Context, pr *entity.PurchaseRequest) error
	GetByID(ctx context.Context, id string) (*entity.PurchaseRequest, error)
	UpdateStatus(ctx context.Context, id string, status entity.PurchaseStatus) error
	List(ctx context.Context, filter PurchaseRequestFilter) ([]*entity.PurchaseRequest, error)
}
