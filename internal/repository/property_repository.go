package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/property-management/internal/model"
)

// PropertyRepo encapsulates all database queries for properties. Every
// read is scoped to the owning manager; there is no cross-manager view.
type PropertyRepo struct {
	db *sql.DB
}

func NewPropertyRepo(db *sql.DB) *PropertyRepo {
	return &PropertyRepo{db: db}
}

const propertyCols = "id, manager_id, name, street, city, state, zip, units, type, image_url, created_at, updated_at"

func scanProperty(row interface{ Scan(...any) error }) (*model.Property, error) {
	var (
		p   model.Property
		img sql.NullString
	)
	err := row.Scan(&p.ID, &p.ManagerID, &p.Name, &p.Street, &p.City, &p.State, &p.Zip,
		&p.Units, &p.Type, &img, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if img.Valid {
		p.ImageURL = &img.String
	}
	return &p, nil
}

// Create inserts a new property. On success the ID, CreatedAt and
// UpdatedAt fields are populated from the stored row so callers receive
// a fully populated record.
func (r *PropertyRepo) Create(ctx context.Context, p *model.Property) error {
	const q = `INSERT INTO properties (manager_id, name, street, city, state, zip, units, type, image_url)
	           VALUES (?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q, p.ManagerID, p.Name, p.Street, p.City, p.State, p.Zip,
		p.Units, p.Type, p.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	stored, err := r.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *stored
	return nil
}

// GetByID fetches a property regardless of manager. It returns
// ErrPropertyNotFound if no row is found.
func (r *PropertyRepo) GetByID(ctx context.Context, id uint64) (*model.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx,
		"SELECT "+propertyCols+" FROM properties WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPropertyNotFound
	}
	return p, err
}

// GetByIDAndManager fetches a property only if it belongs to the given
// manager; otherwise ErrPropertyNotFound.
func (r *PropertyRepo) GetByIDAndManager(ctx context.Context, id, managerID uint64) (*model.Property, error) {
	p, err := scanProperty(r.db.QueryRowContext(ctx,
		"SELECT "+propertyCols+" FROM properties WHERE id = ? AND manager_id = ?", id, managerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPropertyNotFound
	}
	return p, err
}

// ListByManager returns all properties of a manager ordered by id.
func (r *PropertyRepo) ListByManager(ctx context.Context, managerID uint64) ([]*model.Property, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+propertyCols+" FROM properties WHERE manager_id = ? ORDER BY id", managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Property
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Update replaces the editable fields of a property owned by the manager.
// It returns sql.ErrNoRows when nothing is affected (not found / not owned).
func (r *PropertyRepo) Update(ctx context.Context, p *model.Property) error {
	const q = `UPDATE properties
	           SET name=?, street=?, city=?, state=?, zip=?, units=?, type=?, image_url=?, updated_at=CURRENT_TIMESTAMP
	           WHERE id=? AND manager_id=?`
	res, err := r.db.ExecContext(ctx, q, p.Name, p.Street, p.City, p.State, p.Zip, p.Units,
		p.Type, p.ImageURL, p.ID, p.ManagerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByIDAndManager removes a property together with its dependent
// rows (maintenance requests and document links), unassigns its tenants,
// and does all of it in one transaction. ErrPropertyNotFound is returned
// for a missing row, ErrForbidden when the property belongs to someone
// else.
func (r *PropertyRepo) DeleteByIDAndManager(ctx context.Context, id, managerID uint64) error {
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
	if err = tx.QueryRowContext(ctx, "SELECT manager_id FROM properties WHERE id = ?", id).Scan(&dbManagerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrPropertyNotFound
		}
		return err
	}
	if dbManagerID != managerID {
		err = ErrForbidden
		return err
	}
	// Tenants survive a property deletion; they become unassigned.
	if _, err = tx.ExecContext(ctx, "UPDATE tenants SET property_id = NULL WHERE property_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM maintenance_requests WHERE property_id = ?", id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM documents WHERE property_id = ?", id); err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, "DELETE FROM properties WHERE id = ?", id)
	return err
}
