package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var (
	_ repository.PurchaseRequestRepository = (*PurchaseRequestRepo)(nil)
	_ repository.SupplierRepository        = (*SupplierRepo)(nil)
)

// PurchaseRequestRepo implementación de PurchaseRequestRepository.
type PurchaseRequestRepo struct {
	q Querier
}

// NewPurchaseRequestRepository construye el adaptador.
func NewPurchaseRequestRepository(q Querier) *PurchaseRequestRepo {
	return &PurchaseRequestRepo{q: q}
}

const purchaseColumns = `id, project_id, requested_by, supplier_id, description, estimated_cost, status, created_at`

func scanPurchase(row pgx.Row) (*entity.PurchaseRequest, error) {
	var pr entity.PurchaseRequest
	var status string
	if err := row.Scan(&pr.ID, &pr.ProjectID, &pr.RequestedBy, &pr.SupplierID, &pr.Description,
		&pr.EstimatedCost, &status, &pr.CreatedAt); err != nil {
		return nil, err
	}
	pr.Status = entity.PurchaseStatus(status)
	return &pr, nil
}

func (r *PurchaseRequestRepo) Create(ctx context.Context, pr *entity.PurchaseRequest) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO purchase_requests (`+purchaseColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pr.ID, pr.ProjectID, pr.RequestedBy, pr.SupplierID, pr.Description,
		pr.EstimatedCost, string(pr.Status), pr.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert purchase request: %w", err)
	}
	return nil
}

func (r *PurchaseRequestRepo) GetByID(ctx context.Context, id string) (*entity.PurchaseRequest, error) {
	if !validID(id) {
		return nil, nil
	}
	pr, err := scanPurchase(r.q.QueryRow(ctx, `SELECT `+purchaseColumns+` FROM purchase_requests WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase request: %w", err)
	}
	return pr, nil
}

func (r *PurchaseRequestRepo) UpdateStatus(ctx context.Context, id string, status entity.PurchaseStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE purchase_requests SET status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update purchase request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update purchase request %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List solicitudes en orden de creación, filtradas por proyecto y/o solicitante.
func (r *PurchaseRequestRepo) List(ctx context.Context, filter repository.PurchaseRequestFilter) ([]*entity.PurchaseRequest, error) {
	var (
		where []string
		args  []any
	)
	for _, f := range [...]struct{ col, val string }{
		{"project_id", filter.ProjectID},
		{"requested_by", filter.RequestedBy},
	} {
		if f.val == "" {
			continue
		}
		if !validID(f.val) {
			return nil, nil
		}
		args = append(args, f.val)
		where = append(where, fmt.Sprintf("%s = $%d", f.col, len(args)))
	}
	query := `SELECT ` + purchaseColumns + ` FROM purchase_requests`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list purchase requests: %w", err)
	}
	list, err := collectRows(rows, func(rs pgx.Rows) (*entity.PurchaseRequest, error) { return scanPurchase(rs) })
	if err != nil {
		return nil, fmt.Errorf("scan purchase requests: %w", err)
	}
	return list, nil
}

// SupplierRepo implementación de SupplierRepository.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

const supplierColumns = `id, name, contact_person, email, phone, address, is_active, created_at`

func scanSupplier(row pgx.Row) (*entity.Supplier, error) {
	var s entity.Supplier
	if err := row.Scan(&s.ID, &s.Name, &s.ContactPerson, &s.Email, &s.Phone, &s.Address,
		&s.IsActive, &s.CreatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SupplierRepo) Create(ctx context.Context, s *entity.Supplier) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO suppliers (`+supplierColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.IsActive, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert supplier: %w", err)
	}
	return nil
}

func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*entity.Supplier, error) {
	if !validID(id) {
		return nil, nil
	}
	s, err := scanSupplier(r.q.QueryRow(ctx, `SELECT `+supplierColumns+` FROM suppliers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get supplier: %w", err)
	}
	return s, nil
}

// List proveedores en orden de registro.
func (r *SupplierRepo) List(ctx context.Context) ([]*entity.Supplier, error) {
	rows, err := r.q.Query(ctx, `SELECT `+supplierColumns+` FROM suppliers ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}
	list, err := collectRows(rows, func(rs pgx.Rows) (*entity.Supplier, error) { return scanSupplier(rs) })
	if err != nil {
		return nil, fmt.Errorf("scan suppliers: %w", err)
	}
	return list, nil
}
