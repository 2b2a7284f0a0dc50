package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/property-management/internal/model"
)

// TenantRepo encapsulates all database queries for tenants.
type TenantRepo struct {
	db *sql.DB
}

func NewTenantRepo(db *sql.DB) *TenantRepo {
	return &TenantRepo{db: db}
}

const tenantCols = `id, manager_id, property_id, user_id, name, email, phone, unit_number,
	lease_start, lease_end, rent_amount, deposit, balance, status, created_at, updated_at`

func scanTenant(row interface{ Scan(...any) error }) (*model.Tenant, error) {
	var (
		t          model.Tenant
		propertyID sql.NullInt64
		userID     sql.NullInt64
	)
	err := row.Scan(&t.ID, &t.ManagerID, &propertyID, &userID, &t.Name, &t.Email, &t.Phone,
		&t.UnitNumber, &t.LeaseStart, &t.LeaseEnd, &t.RentAmount, &t.Deposit, &t.Balance,
		&t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if propertyID.Valid {
		v := uint64(propertyID.Int64)
		t.PropertyID = &v
	}
	if userID.Valid {
		v := uint64(userID.Int64)
		t.UserID = &v
	}
	return &t, nil
}

// Create inserts a new tenant and re-reads the stored row so the caller
// gets populated timestamps and defaults.
func (r *TenantRepo) Create(ctx context.Context, t *model.Tenant) error {
	const q = `INSERT INTO tenants
	           (manager_id, property_id, user_id, name, email, phone, unit_number,
	            lease_start, lease_end, rent_amount, deposit, balance, status)
	           VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q, t.ManagerID, nullableID(t.PropertyID), nullableID(t.UserID),
		t.Name, t.Email, t.Phone, t.UnitNumber, t.LeaseStart, t.LeaseEnd,
		t.RentAmount, t.Deposit, t.Balance, t.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	stored, err := r.getByID(ctx, t.ID)
	if err != nil {
		return err
	}
	*t = *stored
	return nil
}

func (r *TenantRepo) getByID(ctx context.Context, id uint64) (*model.Tenant, error) {
	t, err := scanTenant(r.db.QueryRowContext(ctx,
		"SELECT "+tenantCols+" FROM tenants WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	return t, err
}

// GetByIDAndManager fetches a tenant only if it belongs to the manager.
func (r *TenantRepo) GetByIDAndManager(ctx context.Context, id, managerID uint64) (*model.Tenant, error) {
	t, err := scanTenant(r.db.QueryRowContext(ctx,
		"SELECT "+tenantCols+" FROM tenants WHERE id = ? AND manager_id = ?", id, managerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	return t, err
}

// GetByUserID fetches the tenant row linked to a portal user account.
// Portal endpoints use this to scope every query to the caller's own
// records.
func (r *TenantRepo) GetByUserID(ctx context.Context, userID uint64) (*model.Tenant, error) {
	t, err := scanTenant(r.db.QueryRowContext(ctx,
		"SELECT "+tenantCols+" FROM tenants WHERE user_id = ? LIMIT 1", userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTenantNotFound
	}
	return t, err
}

// ListByManager returns all tenants of a manager ordered by id.
func (r *TenantRepo) ListByManager(ctx context.Context, managerID uint64) ([]*model.Tenant, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+tenantCols+" FROM tenants WHERE manager_id = ? ORDER BY id", managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Tenant
	for rows.Next() {
		t, err := scanTenant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update replaces the editable fields of a tenant owned by the manager.
func (r *TenantRepo) Update(ctx context.Context, t *model.Tenant) error {
	const q = `UPDATE tenants
	           SET property_id=?, user_id=?, name=?, email=?, phone=?, unit_number=?,
	               lease_start=?, lease_end=?, rent_amount=?, deposit=?, balance=?, status=?,
	               updated_at=CURRENT_TIMESTAMP
	           WHERE id=? AND manager_id=?`
	res, err := r.db.ExecContext(ctx, q, nullableID(t.PropertyID), nullableID(t.UserID),
		t.Name, t.Email, t.Phone, t.UnitNumber, t.LeaseStart, t.LeaseEnd,
		t.RentAmount, t.Deposit, t.Balance, t.Status, t.ID, t.ManagerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdateBalance adjusts only the running balance, used when payments are
// recorded or synced.
func (r *TenantRepo) UpdateBalance(ctx context.Context, id uint64, balance float64) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE tenants SET balance=?, updated_at=CURRENT_TIMESTAMP WHERE id=?", balance, id)
	return err
}

// DeleteByIDAndManager removes a tenant and its dependent payments and
// maintenance requests within one transaction.
func (r *TenantRepo) DeleteByIDAndManager(ctx context.Context, id, managerID uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var dbManagerID uint64
	if err = tx.QueryRowContext(ctx, "SELECT manager_id FROM tenants WHERE id = ?", id).Scan(&dbManagerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrTenantNotFound
		}
		return err
	}
	if dbManagerID != managerID {
		err = ErrForbidden
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM payments WHERE tenant_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM maintenance_requests WHERE tenant_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM documents WHERE tenant_id = ?", id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM tenants WHERE id = ?", id)
	return err
}

// nullableID converts an optional foreign key into a driver-friendly
// value (nil writes SQL NULL).
func nullableID(id *uint64) any {
	if id == nil {
		return nil
	}
	return *id
}
