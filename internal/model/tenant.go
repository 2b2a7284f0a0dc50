package model

import "time"

// Tenant status vocabulary.
const (
	TenantStatusActive   = "active"
	TenantStatusInactive = "inactive"
	TenantStatusPending  = "pending"
)

// Tenant represents a leaseholder as stored in the `tenants` table. A
// tenant optionally references the property they occupy and optionally a
// portal user account. Status transitions are not constrained here; the
// row reflects whatever the manager last recorded.
//
// Fields:
//  ID         – primary key identifier.
//  ManagerID  – users.id of the manager this tenant belongs to.
//  PropertyID – properties.id of the occupied property (nullable; a tenant
//               may be recorded before being assigned a unit).
//  UserID     – users.id of the linked portal account (nullable).
//  Name       – full name.
//  Email      – contact email.
//  Phone      – contact phone; empty string when unknown.
//  UnitNumber – unit designation within the property (e.g. "2B").
//  LeaseStart – lease start date.
//  LeaseEnd   – lease end date.
//  RentAmount – monthly rent; never negative.
//  Deposit    – security deposit held.
//  Balance    – running balance still owed for the current period; zero
//               means fully paid, negative means overpaid.
//  Status     – tenant status (active, inactive, pending).
type Tenant struct {
	ID         uint64     // tenants.id
	ManagerID  uint64     // tenants.manager_id
	PropertyID *uint64    // tenants.property_id (nullable)
	UserID     *uint64    // tenants.user_id (nullable)
	Name       string     // tenants.name
	Email      string     // tenants.email
	Phone      string     // tenants.phone
	UnitNumber string     // tenants.unit_number
	LeaseStart time.Time  // tenants.lease_start
	LeaseEnd   time.Time  // tenants.lease_end
	RentAmount float64    // tenants.rent_amount
	Deposit    float64    // tenants.deposit
	Balance    float64    // tenants.balance
	Status     string     // tenants.status
	CreatedAt  time.Time  // tenants.created_at
	UpdatedAt  time.Time  // tenants.updated_at
}

// ValidTenantStatus reports whether s is one of the known tenant statuses.
func ValidTenantStatus(s string) bool {
	switch s {
	case TenantStatusActive, TenantStatusInactive, TenantStatusPending:
		return true
	}
	return false
}
