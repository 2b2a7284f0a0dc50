// Package snapshot turns raw persisted rows into the normalized, fully
// denormalized records the dashboard and list views consume. A snapshot is
// an immutable read of a manager's four collections; refreshes replace it
// wholesale, never merge partially.
package snapshot

import "time"

// Property is the normalized view of a property row. Optional raw fields
// are substituted with documented defaults (missing image -> "").
type Property struct {
	ID        uint64 `json:"id"`
	ManagerID uint64 `json:"manager_id"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zip       string `json:"zip"`
	Address   string `json:"address"`
	Units     int    `json:"units"`
	Type      string `json:"type"`
	ImageURL  string `json:"image_url"`
}

// Tenant is the normalized view of a tenant row. PropertyID and UserID are
// 0 when unassigned; PropertyName is resolved by lookup and empty when the
// tenant has no property or the reference is dangling.
type Tenant struct {
	ID           uint64    `json:"id"`
	ManagerID    uint64    `json:"manager_id"`
	PropertyID   uint64    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	UserID       uint64    `json:"user_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	UnitNumber   string    `json:"unit_number"`
	LeaseStart   time.Time `json:"lease_start"`
	LeaseEnd     time.Time `json:"lease_end"`
	RentAmount   float64   `json:"rent_amount"`
	Deposit      float64   `json:"deposit"`
	Balance      float64   `json:"balance"`
	Status       string    `json:"status"`
}

// Payment is the normalized view of a payment row with the tenant and
// property display fields resolved transitively (payment -> tenant ->
// property). Display fields stay empty on dangling references.
type Payment struct {
	ID           uint64    `json:"id"`
	TenantID     uint64    `json:"tenant_id"`
	TenantName   string    `json:"tenant_name"`
	PropertyID   uint64    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	UnitNumber   string    `json:"unit_number"`
	Amount       float64   `json:"amount"`
	PaidOn       time.Time `json:"paid_on"`
	Method       string    `json:"method"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
}

// MaintenanceRequest is the normalized view of a maintenance row. Optional
// raw fields default to the zero value ("" assignee, 0 cost, zero time).
type MaintenanceRequest struct {
	ID           uint64    `json:"id"`
	PropertyID   uint64    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	TenantID     uint64    `json:"tenant_id"`
	TenantName   string    `json:"tenant_name"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	SubmittedAt  time.Time `json:"submitted_at"`
	CompletedAt  time.Time `json:"completed_at,omitzero"`
	AssignedTo   string    `json:"assigned_to"`
	Cost         float64   `json:"cost"`
}

// SearchFields lists the stringified fields the list views match search
// queries against.
func (p Property) SearchFields() []string {
	return []string{p.Name, p.Address, p.Type}
}

func (t Tenant) SearchFields() []string {
	return []string{t.Name, t.Email, t.UnitNumber, t.Status, t.PropertyName}
}

func (p Payment) SearchFields() []string {
	return []string{p.TenantName, p.PropertyName, p.Method, p.Status, p.Notes}
}

func (m MaintenanceRequest) SearchFields() []string {
	return []string{m.Title, m.Description, m.Status, m.Priority, m.PropertyName, m.TenantName}
}
