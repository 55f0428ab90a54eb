package memory

import (
	"context"
	"time"

	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var (
	_ repository.InvoiceRepository = (*InvoiceRepo)(nil)
	_ repository.CommentRepository = (*CommentRepo)(nil)
)

// InvoiceRepo facturas en memoria.
type InvoiceRepo struct{ s *Store }

func (r *InvoiceRepo) Create(_ context.Context, invoice *entity.Invoice) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.invoices[invoice.ID] = record[entity.Invoice]{seq: r.s.nextSeq(), val: *invoice}
	return nil
}

func (r *InvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	rec, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	inv := rec.val
	return &inv, nil
}

func (r *InvoiceRepo) UpdatePaymentStatus(_ context.Context, id string, status entity.PaymentStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.invoices[id]
	if !ok {
		return errNotFound("invoice", id)
	}
	rec.val.PaymentStatus = status
	r.s.invoices[id] = rec
	return nil
}

func (r *InvoiceRepo) List(_ context.Context, projectID string) ([]*entity.Invoice, error) {
	r.s.mu.RLock()
	var recs []record[entity.Invoice]
	for _, rec := range r.s.invoices {
		if projectID != "" && rec.val.ProjectID != projectID {
			continue
		}
		recs = append(recs, rec)
	}
	r.s.mu.RUnlock()
	sorted := sortOldestFirst(recs, func(inv entity.Invoice) time.Time { return inv.CreatedAt })
	out := make([]*entity.Invoice, 0, len(sorted))
	for i := range sorted {
		out = append(out, &sorted[i])
	}
	return out, nil
}

// CommentRepo comentarios en memoria.
type CommentRepo struct{ s *Store }

func (r *CommentRepo) Create(_ context.Context, comment *entity.Comment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.comments[comment.ID] = record[entity.Comment]{seq: r.s.nextSeq(), val: *comment}
	return nil
}

func (r *CommentRepo) ListByProject(_ context.Context, projectID string) ([]*entity.Comment, error) {
	r.s.mu.RLock()
	var recs []record[entity.Comment]
	for _, rec := range r.s.comments {
		if rec.val.ProjectID == projectID {
			recs = append(recs, rec)
		}
	}
	r.s.mu.RUnlock()
	sorted := sortNewestFirst(recs, func(c entity.Comment) time.Time { return c.CreatedAt })
	out := make([]*entity.Comment, 0, len(sorted))
	for i := range sorted {
		out = append(out, &sorted[i])
	}
	return out, nil
}
