package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Proyectos-api/internal/domain"
	"github.com/jhoicas/Proyectos-api/internal/domain/entity"
	"github.com/jhoicas/Proyectos-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador.
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

const invoiceColumns = `id, project_id, invoice_type, amount, payment_status, created_by, created_at`

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	var status string
	if err := row.Scan(&inv.ID, &inv.ProjectID, &inv.InvoiceType, &inv.Amount, &status,
		&inv.CreatedBy, &inv.CreatedAt); err != nil {
		return nil, err
	}
	inv.PaymentStatus = entity.PaymentStatus(status)
	return &inv, nil
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO invoices (`+invoiceColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		inv.ID, inv.ProjectID, inv.InvoiceType, inv.Amount, string(inv.PaymentStatus), inv.CreatedBy, inv.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	if !validID(id) {
		return nil, nil
	}
	inv, err := scanInvoice(r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM invoices WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) UpdatePaymentStatus(ctx context.Context, id string, status entity.PaymentStatus) error {
	tag, err := r.q.Exec(ctx, `UPDATE invoices SET payment_status = $2 WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update invoice %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// List facturas del proyecto (o todas con projectID vacío) en orden de emisión.
func (r *InvoiceRepo) List(ctx context.Context, projectID string) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices`
	var args []any
	if projectID != "" {
		if !validID(projectID) {
			return nil, nil
		}
		query += ` WHERE project_id = $1`
		args = append(args, projectID)
	}
	query += ` ORDER BY created_at`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	list, err := collectRows(rows, func(rs pgx.Rows) (*entity.Invoice, error) { return scanInvoice(rs) })
	if err != nil {
		return nil, fmt.Errorf("scan invoices: %w", err)
	}
	return list, nil
}
