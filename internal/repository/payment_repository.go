package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/property-management/internal/model"
)

// PaymentRepo encapsulates all database queries for payments. Payments
// carry no manager column of their own; manager scope is enforced by
// joining through the owning tenant.
type PaymentRepo struct {
	db *sql.DB
}

func NewPaymentRepo(db *sql.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

const paymentCols = "p.id, p.tenant_id, p.amount, p.paid_on, p.method, p.status, p.notes, p.provider_ref, p.created_at, p.updated_at"

func scanPayment(row interface{ Scan(...any) error }) (*model.Payment, error) {
	var (
		p           model.Payment
		notes       sql.NullString
		providerRef sql.NullString
	)
	err := row.Scan(&p.ID, &p.TenantID, &p.Amount, &p.PaidOn, &p.Method, &p.Status,
		&notes, &providerRef, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Notes = notes.String
	if providerRef.Valid {
		p.ProviderRef = &providerRef.String
	}
	return &p, nil
}

// Create inserts a payment and re-reads the stored row.
func (r *PaymentRepo) Create(ctx context.Context, p *model.Payment) error {
	const q = `INSERT INTO payments (tenant_id, amount, paid_on, method, status, notes, provider_ref)
	           VALUES (?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q, p.TenantID, p.Amount, p.PaidOn, p.Method, p.Status,
		p.Notes, p.ProviderRef)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	stored, err := r.getByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *stored
	return nil
}

func (r *PaymentRepo) getByID(ctx context.Context, id uint64) (*model.Payment, error) {
	p, err := scanPayment(r.db.QueryRowContext(ctx,
		"SELECT "+paymentCols+" FROM payments p WHERE p.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	return p, err
}

// GetByIDAndManager fetches a payment only if the owning tenant belongs
// to the manager.
func (r *PaymentRepo) GetByIDAndManager(ctx context.Context, id, managerID uint64) (*model.Payment, error) {
	const q = `SELECT ` + paymentCols + `
	           FROM payments p
	           JOIN tenants t ON t.id = p.tenant_id
	           WHERE p.id = ? AND t.manager_id = ?`
	p, err := scanPayment(r.db.QueryRowContext(ctx, q, id, managerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPaymentNotFound
	}
	return p, err
}

// ListByManager returns all payments across the manager's tenants,
// newest payment date first.
func (r *PaymentRepo) ListByManager(ctx context.Context, managerID uint64) ([]*model.Payment, error) {
	const q = `SELECT ` + paymentCols + `
	           FROM payments p
	           JOIN tenants t ON t.id = p.tenant_id
	           WHERE t.manager_id = ?
	           ORDER BY p.paid_on DESC, p.id DESC`
	return r.list(ctx, q, managerID)
}

// ListByTenant returns one tenant's payments, newest first. The portal
// uses this with the tenant row resolved from the authenticated user.
func (r *PaymentRepo) ListByTenant(ctx context.Context, tenantID uint64) ([]*model.Payment, error) {
	const q = `SELECT ` + paymentCols + `
	           FROM payments p
	           WHERE p.tenant_id = ?
	           ORDER BY p.paid_on DESC, p.id DESC`
	return r.list(ctx, q, tenantID)
}

func (r *PaymentRepo) list(ctx context.Context, query string, arg any) ([]*model.Payment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpdateStatus sets the payment status, typically after a provider
// status sync.
func (r *PaymentRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE payments SET status=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
