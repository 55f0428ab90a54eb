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

// ProcurementUseCase solicitudes de compra y proveedores.
type ProcurementUseCase struct {
	base
	requests  repository.PurchaseRequestRepository
	suppliers repository.SupplierRepository
	projects  repository.ProjectRepository
}

// NewProcurementUseCase construye el caso de uso.
func NewProcurementUseCase(
	requests repository.PurchaseRequestRepository,
	suppliers repository.SupplierRepository,
	projects repository.ProjectRepository,
	opts Options,
) *ProcurementUseCase {
	return &ProcurementUseCase{
		base:      newBase(opts, "workflow.procurement"),
		requests:  requests,
		suppliers: suppliers,
		projects:  projects,
	}
}

// AddPurchaseRequest registra una solicitud pending a nombre del actor.
func (uc *ProcurementUseCase) AddPurchaseRequest(ctx context.Context, s entity.Session, in dto.CreatePurchaseRequest) (*dto.PurchaseRequestResponse, error) {
	if err := uc.authorize(s, policy.ResourcePurchaseRequest, policy.ActionCreate); err != nil {
		return nil, err
	}
	if in.EstimatedCost.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	if _, err := loadProject(ctx, uc.projects, in.ProjectID); err != nil {
		return nil, err
	}
	supplierID := optionalID(in.SupplierID)
	if supplierID != nil {
		sup, err := uc.suppliers.GetByID(ctx, *supplierID)
		if err != nil {
			return nil, fmt.Errorf("obtener proveedor: %w", err)
		}
		if sup == nil {
			return nil, domain.ErrNotFound
		}
	}
	pr := &entity.PurchaseRequest{
		ID:            uuid.New().String(),
		ProjectID:     in.ProjectID,
		RequestedBy:   s.UserID,
		SupplierID:    supplierID,
		Description:   in.Description,
		EstimatedCost: in.EstimatedCost,
		Status:        entity.PurchasePending,
		CreatedAt:     uc.now(),
	}
	if err := uc.requests.Create(ctx, pr); err != nil {
		return nil, fmt.Errorf("crear solicitud de compra: %w", err)
	}
	uc.logChange(s, "purchase_request", pr.ID, "", string(pr.Status))
	out := dto.ToPurchaseRequestResponse(pr)
	return &out, nil
}

// ApprovePurchaseRequest marca la solicitud approved.
func (uc *ProcurementUseCase) ApprovePurchaseRequest(ctx context.Context, s entity.Session, id string) (*dto.PurchaseRequestResponse, error) {
	if err := uc.authorize(s, policy.ResourcePurchaseRequest, policy.ActionApprove); err != nil {
		return nil, err
	}
	return uc.decide(ctx, s, id, entity.PurchaseApproved)
}

// RejectPurchaseRequest marca la solicitud rejected.
func (uc *ProcurementUseCase) RejectPurchaseRequest(ctx context.Context, s entity.Session, id string) (*dto.PurchaseRequestResponse, error) {
	if err := uc.authorize(s, policy.ResourcePurchaseRequest, policy.ActionReject); err != nil {
		return nil, err
	}
	return uc.decide(ctx, s, id, entity.PurchaseRejected)
}

func (uc *ProcurementUseCase) decide(ctx context.Context, s entity.Session, id string, to entity.PurchaseStatus) (*dto.PurchaseRequestResponse, error) {
	pr, err := uc.requests.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("obtener solicitud de compra: %w", err)
	}
	if pr == nil {
		return nil, domain.ErrNotFound
	}
	if !uc.guards.CanDecidePurchase(pr.Status) {
		return nil, domain.ErrInvalidTransition
	}
	from := pr.Status
	if err := uc.requests.UpdateStatus(ctx, id, to); err != nil {
		return nil, fmt.Errorf("actualizar solicitud de compra: %w", err)
	}
	pr.Status = to
	uc.logChange(s, "purchase_request", id, string(from), string(to))
	out := dto.ToPurchaseRequestResponse(pr)
	return &out, nil
}

// AddSupplier registra un proveedor activo.
func (uc *ProcurementUseCase) AddSupplier(ctx context.Context, s entity.Session, in dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	if err := uc.authorize(s, policy.ResourceSupplier, policy.ActionCreate); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	sup := &entity.Supplier{
		ID:            uuid.New().String(),
		Name:          name,
		ContactPerson: in.ContactPerson,
		Email:         in.Email,
		Phone:         in.Phone,
		Address:       in.Address,
		IsActive:      true,
		CreatedAt:     uc.now(),
	}
	if err := uc.suppliers.Create(ctx, sup); err != nil {
		return nil, fmt.Errorf("crear proveedor: %w", err)
	}
	uc.log.Info().Str("supplier_id", sup.ID).Str("actor", s.UserID).Msg("proveedor registrado")
	out := dto.ToSupplierResponse(sup)
	return &out, nil
}

// ListSuppliers lista los proveedores para los formularios de compra.
func (uc *ProcurementUseCase) ListSuppliers(ctx context.Context, s entity.Session) ([]dto.SupplierResponse, error) {
	if err := uc.authorize(s, policy.ResourceSupplier, policy.ActionList); err != nil {
		return nil, err
	}
	list, err := uc.suppliers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listar proveedores: %w", err)
	}
	out := make([]dto.SupplierResponse, 0, len(list))
	for _, sup := range list {
		out = append(out, dto.ToSupplierResponse(sup))
	}
	return out, nil
}
