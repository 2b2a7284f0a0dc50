package model

import "time"

// Document is a metadata row in the `documents` table pointing at a file
// held in external storage. The service never stores file contents, only
// the reference and its associations.
type Document struct {
	ID         uint64    // documents.id
	ManagerID  uint64    // documents.manager_id
	PropertyID *uint64   // documents.property_id (nullable)
	TenantID   *uint64   // documents.tenant_id (nullable)
	Name       string    // documents.name
	Kind       string    // documents.kind (lease, invoice, photo, other)
	URL        string    // documents.url (external storage location)
	CreatedAt  time.Time // documents.created_at
}
