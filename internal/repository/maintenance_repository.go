package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/property-management/internal/model"
)

// MaintenanceRepo encapsulates all database queries for maintenance
// requests. Manager scope is enforced through the owning property.
type MaintenanceRepo struct {
	db *sql.DB
}

func NewMaintenanceRepo(db *sql.DB) *MaintenanceRepo {
	return &MaintenanceRepo{db: db}
}

const maintenanceCols = `m.id, m.property_id, m.tenant_id, m.title, m.description, m.priority,
	m.status, m.submitted_at, m.completed_at, m.assigned_to, m.cost, m.created_at, m.updated_at`

func scanMaintenance(row interface{ Scan(...any) error }) (*model.MaintenanceRequest, error) {
	var (
		m           model.MaintenanceRequest
		completedAt sql.NullTime
		assignedTo  sql.NullString
		cost        sql.NullFloat64
	)
	err := row.Scan(&m.ID, &m.PropertyID, &m.TenantID, &m.Title, &m.Description, &m.Priority,
		&m.Status, &m.SubmittedAt, &completedAt, &assignedTo, &cost, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if completedAt.Valid {
		m.CompletedAt = &completedAt.Time
	}
	if assignedTo.Valid {
		m.AssignedTo = &assignedTo.String
	}
	if cost.Valid {
		m.Cost = &cost.Float64
	}
	return &m, nil
}

// Create inserts a maintenance request and re-reads the stored row.
func (r *MaintenanceRepo) Create(ctx context.Context, m *model.MaintenanceRequest) error {
	const q = `INSERT INTO maintenance_requests
	           (property_id, tenant_id, title, description, priority, status, submitted_at)
	           VALUES (?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q, m.PropertyID, m.TenantID, m.Title, m.Description,
		m.Priority, m.Status, m.SubmittedAt)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	m.ID = uint64(id)
	stored, err := r.getByID(ctx, m.ID)
	if err != nil {
		return err
	}
	*m = *stored
	return nil
}

func (r *MaintenanceRepo) getByID(ctx context.Context, id uint64) (*model.MaintenanceRequest, error) {
	m, err := scanMaintenance(r.db.QueryRowContext(ctx,
		"SELECT "+maintenanceCols+" FROM maintenance_requests m WHERE m.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMaintenanceNotFound
	}
	return m, err
}

// GetByIDAndManager fetches a request only if its property belongs to
// the manager.
func (r *MaintenanceRepo) GetByIDAndManager(ctx context.Context, id, managerID uint64) (*model.MaintenanceRequest, error) {
	const q = `SELECT ` + maintenanceCols + `
	           FROM maintenance_requests m
	           JOIN properties pr ON pr.id = m.property_id
	           WHERE m.id = ? AND pr.manager_id = ?`
	m, err := scanMaintenance(r.db.QueryRowContext(ctx, q, id, managerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrMaintenanceNotFound
	}
	return m, err
}

// ListByManager returns all requests across the manager's properties,
// newest submission first.
func (r *MaintenanceRepo) ListByManager(ctx context.Context, managerID uint64) ([]*model.MaintenanceRequest, error) {
	const q = `SELECT ` + maintenanceCols + `
	           FROM maintenance_requests m
	           JOIN properties pr ON pr.id = m.property_id
	           WHERE pr.manager_id = ?
	           ORDER BY m.submitted_at DESC, m.id DESC`
	return r.list(ctx, q, managerID)
}

// ListByTenant returns one tenant's requests, newest first.
func (r *MaintenanceRepo) ListByTenant(ctx context.Context, tenantID uint64) ([]*model.MaintenanceRequest, error) {
	const q = `SELECT ` + maintenanceCols + `
	           FROM maintenance_requests m
	           WHERE m.tenant_id = ?
	           ORDER BY m.submitted_at DESC, m.id DESC`
	return r.list(ctx, q, tenantID)
}

func (r *MaintenanceRepo) list(ctx context.Context, query string, arg any) ([]*model.MaintenanceRequest, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.MaintenanceRequest
	for rows.Next() {
		m, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// Update replaces the workflow fields of a request (status, priority,
// assignee, cost, completion time). Ownership is checked through the
// property join before writing.
func (r *MaintenanceRepo) Update(ctx context.Context, managerID uint64, m *model.MaintenanceRequest) error {
	if _, err := r.GetByIDAndManager(ctx, m.ID, managerID); err != nil {
		return err
	}
	const q = `UPDATE maintenance_requests
	           SET title=?, description=?, priority=?, status=?, completed_at=?, assigned_to=?, cost=?,
	               updated_at=CURRENT_TIMESTAMP
	           WHERE id=?`
	_, err := r.db.ExecContext(ctx, q, m.Title, m.Description, m.Priority, m.Status,
		m.CompletedAt, m.AssignedTo, m.Cost, m.ID)
	return err
}

// DeleteByIDAndManager removes a request if its property belongs to the
// manager.
func (r *MaintenanceRepo) DeleteByIDAndManager(ctx context.Context, id, managerID uint64) error {
	if _, err := r.GetByIDAndManager(ctx, id, managerID); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, "DELETE FROM maintenance_requests WHERE id = ?", id)
	return err
}
