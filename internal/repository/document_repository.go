package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/property-management/internal/model"
)

// DocumentRepo stores document metadata rows. File contents live in
// external storage; only the URL reference is persisted here.
type DocumentRepo struct {
	db *sql.DB
}

func NewDocumentRepo(db *sql.DB) *DocumentRepo {
	return &DocumentRepo{db: db}
}

const documentCols = "id, manager_id, property_id, tenant_id, name, kind, url, created_at"

func scanDocument(row interface{ Scan(...any) error }) (*model.Document, error) {
	var (
		d          model.Document
		propertyID sql.NullInt64
		tenantID   sql.NullInt64
	)
	err := row.Scan(&d.ID, &d.ManagerID, &propertyID, &tenantID, &d.Name, &d.Kind, &d.URL, &d.CreatedAt)
	if err != nil {
		return nil, err
	}
	if propertyID.Valid {
		v := uint64(propertyID.Int64)
		d.PropertyID = &v
	}
	if tenantID.Valid {
		v := uint64(tenantID.Int64)
		d.TenantID = &v
	}
	return &d, nil
}

// Create inserts a document metadata row.
func (r *DocumentRepo) Create(ctx context.Context, d *model.Document) error {
	const q = `INSERT INTO documents (manager_id, property_id, tenant_id, name, kind, url)
	           VALUES (?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, q, d.ManagerID, nullableID(d.PropertyID), nullableID(d.TenantID),
		d.Name, d.Kind, d.URL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.ID = uint64(id)
	stored, err := r.GetByIDAndManager(ctx, d.ID, d.ManagerID)
	if err != nil {
		return err
	}
	*d = *stored
	return nil
}

// GetByIDAndManager fetches a document only if it belongs to the manager.
func (r *DocumentRepo) GetByIDAndManager(ctx context.Context, id, managerID uint64) (*model.Document, error) {
	d, err := scanDocument(r.db.QueryRowContext(ctx,
		"SELECT "+documentCols+" FROM documents WHERE id = ? AND manager_id = ?", id, managerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrDocumentNotFound
	}
	return d, err
}

// ListByManager returns all of a manager's documents, newest first.
func (r *DocumentRepo) ListByManager(ctx context.Context, managerID uint64) ([]*model.Document, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+documentCols+" FROM documents WHERE manager_id = ? ORDER BY created_at DESC, id DESC", managerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// DeleteByIDAndManager removes a document metadata row. The external
// file itself is not touched.
func (r *DocumentRepo) DeleteByIDAndManager(ctx context.Context, id, managerID uint64) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM documents WHERE id = ? AND manager_id = ?", id, managerID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
