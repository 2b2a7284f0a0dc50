package snapshot

import (
	"github.com/iliyamo/property-management/internal/model"
)

// Snapshot is one manager's fully normalized data set. The lookup maps
// are built once per refresh; aggregation and list code reads the maps,
// never rescans the slices for joins.
type Snapshot struct {
	Properties  []Property
	Tenants     []Tenant
	Payments    []Payment
	Maintenance []MaintenanceRequest

	PropertyByID map[uint64]*Property
	TenantByID   map[uint64]*Tenant
}

// Build normalizes the four raw collections in dependency order:
// properties first, then tenants (which resolve property names), then
// payments and maintenance (which resolve through both).
func Build(properties []*model.Property, tenants []*model.Tenant, payments []*model.Payment, maintenance []*model.MaintenanceRequest) *Snapshot {
	s := &Snapshot{
		Properties:   NormalizeProperties(properties),
		PropertyByID: make(map[uint64]*Property, len(properties)),
		TenantByID:   make(map[uint64]*Tenant, len(tenants)),
	}
	for i := range s.Properties {
		s.PropertyByID[s.Properties[i].ID] = &s.Properties[i]
	}
	s.Tenants = NormalizeTenants(tenants, s.PropertyByID)
	for i := range s.Tenants {
		s.TenantByID[s.Tenants[i].ID] = &s.Tenants[i]
	}
	s.Payments = NormalizePayments(payments, s.TenantByID)
	s.Maintenance = NormalizeMaintenance(maintenance, s.PropertyByID, s.TenantByID)
	return s
}

// AppendProperty applies an optimistic local append after a successful
// create. The locally built view may diverge from what the store returns
// on the next full refresh; Build replaces everything, so the append is
// reconciled by id automatically.
func (s *Snapshot) AppendProperty(row *model.Property) {
	s.Properties = append(s.Properties, NormalizeProperties([]*model.Property{row})...)
	// Re-key: appending may have reallocated the backing array.
	s.PropertyByID = make(map[uint64]*Property, len(s.Properties))
	for i := range s.Properties {
		s.PropertyByID[s.Properties[i].ID] = &s.Properties[i]
	}
}

// AppendTenant optimistically appends a freshly created tenant.
func (s *Snapshot) AppendTenant(row *model.Tenant) {
	s.Tenants = append(s.Tenants, NormalizeTenants([]*model.Tenant{row}, s.PropertyByID)...)
	s.TenantByID = make(map[uint64]*Tenant, len(s.Tenants))
	for i := range s.Tenants {
		s.TenantByID[s.Tenants[i].ID] = &s.Tenants[i]
	}
}

// AppendPayment optimistically appends a freshly created payment.
func (s *Snapshot) AppendPayment(row *model.Payment) {
	s.Payments = append(s.Payments, NormalizePayments([]*model.Payment{row}, s.TenantByID)...)
}

// AppendMaintenance optimistically appends a freshly created request.
func (s *Snapshot) AppendMaintenance(row *model.MaintenanceRequest) {
	s.Maintenance = append(s.Maintenance, NormalizeMaintenance([]*model.MaintenanceRequest{row}, s.PropertyByID, s.TenantByID)...)
}
