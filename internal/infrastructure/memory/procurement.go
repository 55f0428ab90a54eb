package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var (
	_ repository.PurchaseRequestRepository = (*PurchaseRequestRepo)(nil)
	_ repository.SupplierRepository        = (*SupplierRepo)(nil)
)

// PurchaseRequestRepo solicitudes de compra en memoria.
type PurchaseRequestRepo struct{ s *Store }

func clonePurchase(pr entity.PurchaseRequest) *entity.PurchaseRequest {
	pr.SupplierID = cloneStr(pr.SupplierID)
	return &pr
}

func (r *PurchaseRequestRepo) Create(_ context.Context, pr *entity.PurchaseRequest) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.purchases[pr.ID] = record[entity.PurchaseRequest]{seq: r.s.nextSeq(), val: *clonePurchase(*pr)}
	return nil
}

func (r *PurchaseRequestRepo) GetByID(_ context.Context, id string) (*entity.PurchaseRequest, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.purchases[id]
	if !ok {
		return nil, nil
	}
	return clonePurchase(rec.val), nil
}

func (r *PurchaseRequestRepo) UpdateStatus(_ context.Context, id string, status entity.PurchaseStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.purchases[id]
	if !ok {
		return errNotFound("purchase_request", id)
	}
	rec.val.Status = status
	r.s.purchases[id] = rec
	return nil
}

// List devuelve las solicitudes en orden de creación.
func (r *PurchaseRequestRepo) List(_ context.Context, filter repository.PurchaseRequestFilter) ([]*entity.PurchaseRequest, error) {
	r.s.mu.RLock()
	var recs []record[entity.PurchaseRequest]
	for _, rec := range r.s.purchases {
		if filter.ProjectID != "" && rec.val.ProjectID != filter.ProjectID {
			continue
		}
		if filter.RequestedBy != "" && rec.val.RequestedBy != filter.RequestedBy {
			continue
		}
		recs = append(recs, rec)
	}
	r.s.mu.RUnlock()
	sorted := sortOldestFirst(recs, func(pr entity.PurchaseRequest) time.Time { return pr.CreatedAt })
	out := make([]*entity.PurchaseRequest, 0, len(sorted))
	for _, pr := range sorted {
		out = append(out, clonePurchase(pr))
	}
	return out, nil
}

// SupplierRepo proveedores en memoria.
type SupplierRepo struct{ s *Store }

func (r *SupplierRepo) Create(_ context.Context, supplier *entity.Supplier) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.suppliers[supplier.ID] = record[entity.Supplier]{seq: r.s.nextSeq(), val: *supplier}
	return nil
}

func (r *SupplierRepo) GetByID(_ context.Context, id string) (*entity.Supplier, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.suppliers[id]
	if !ok {
		return nil, nil
	}
	s := rec.val
	return &s, nil
}

func (r *SupplierRepo) List(_ context.Context) ([]*entity.Supplier, error) {
	r.s.mu.RLock()
	recs := make([]record[entity.Supplier], 0, len(r.s.suppliers))
	for _, rec := range r.s.suppliers {
		recs = append(recs, rec)
	}
	r.s.mu.RUnlock()
	sorted := sortOldestFirst(recs, func(s entity.Supplier) time.Time { return s.CreatedAt })
	out := make([]*entity.Supplier, 0, len(sorted))
	for i := range sorted {
		out = append(out, &sorted[i])
	}
	return out, nil
}
