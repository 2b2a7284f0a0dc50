package snapshot

import (
	"log"
	"strings"

	"github.com/iliyamo/property-management/internal/model"
)

// Normalization never drops or fails a row: the output slice always has
// the same length as the input, a malformed enum value is kept verbatim
// (with a logged warning) so one bad record cannot blank an entire list.

// NormalizeProperties converts persisted property rows into view records.
func NormalizeProperties(rows []*model.Property) []Property {
	out := make([]Property, 0, len(rows))
	for _, r := range rows {
		if !model.ValidPropertyType(r.Type) {
			log.Printf("snapshot: property %d has unknown type %q", r.ID, r.Type)
		}
		img := ""
		if r.ImageURL != nil {
			img = *r.ImageURL
		}
		out = append(out, Property{
			ID:        r.ID,
			ManagerID: r.ManagerID,
			Name:      r.Name,
			Street:    r.Street,
			City:      r.City,
			State:     r.State,
			Zip:       r.Zip,
			Address:   FormatAddress(r.Street, r.City, r.State, r.Zip),
			Units:     r.Units,
			Type:      r.Type,
			ImageURL:  img,
		})
	}
	return out
}

// NormalizeTenants converts tenant rows, resolving the property display
// name from the already-normalized property map. Properties must be
// normalized first; a missing or dangling reference yields PropertyID 0
// or an empty PropertyName rather than an error.
func NormalizeTenants(rows []*model.Tenant, properties map[uint64]*Property) []Tenant {
	out := make([]Tenant, 0, len(rows))
	for _, r := range rows {
		if !model.ValidTenantStatus(r.Status) {
			log.Printf("snapshot: tenant %d has unknown status %q", r.ID, r.Status)
		}
		t := Tenant{
			ID:         r.ID,
			ManagerID:  r.ManagerID,
			Name:       r.Name,
			Email:      r.Email,
			Phone:      r.Phone,
			UnitNumber: r.UnitNumber,
			LeaseStart: r.LeaseStart,
			LeaseEnd:   r.LeaseEnd,
			RentAmount: r.RentAmount,
			Deposit:    r.Deposit,
			Balance:    r.Balance,
			Status:     r.Status,
		}
		if r.UserID != nil {
			t.UserID = *r.UserID
		}
		if r.PropertyID != nil {
			t.PropertyID = *r.PropertyID
			if p, ok := properties[*r.PropertyID]; ok {
				t.PropertyName = p.Name
			}
		}
		out = append(out, t)
	}
	return out
}

// NormalizePayments converts payment rows, resolving tenant and property
// display fields transitively through the tenant map.
func NormalizePayments(rows []*model.Payment, tenants map[uint64]*Tenant) []Payment {
	out := make([]Payment, 0, len(rows))
	for _, r := range rows {
		if !model.ValidPaymentMethod(r.Method) {
			log.Printf("snapshot: payment %d has unknown method %q", r.ID, r.Method)
		}
		if !model.ValidPaymentStatus(r.Status) {
			log.Printf("snapshot: payment %d has unknown status %q", r.ID, r.Status)
		}
		p := Payment{
			ID:       r.ID,
			TenantID: r.TenantID,
			Amount:   r.Amount,
			PaidOn:   r.PaidOn,
			Method:   r.Method,
			Status:   r.Status,
			Notes:    r.Notes,
		}
		if t, ok := tenants[r.TenantID]; ok {
			p.TenantName = t.Name
			p.PropertyID = t.PropertyID
			p.PropertyName = t.PropertyName
			p.UnitNumber = t.UnitNumber
		}
		out = append(out, p)
	}
	return out
}

// NormalizeMaintenance converts maintenance rows, resolving both the
// property and the tenant display names directly.
func NormalizeMaintenance(rows []*model.MaintenanceRequest, properties map[uint64]*Property, tenants map[uint64]*Tenant) []MaintenanceRequest {
	out := make([]MaintenanceRequest, 0, len(rows))
	for _, r := range rows {
		if !model.ValidMaintenancePriority(r.Priority) {
			log.Printf("snapshot: maintenance %d has unknown priority %q", r.ID, r.Priority)
		}
		if !model.ValidMaintenanceStatus(r.Status) {
			log.Printf("snapshot: maintenance %d has unknown status %q", r.ID, r.Status)
		}
		m := MaintenanceRequest{
			ID:          r.ID,
			PropertyID:  r.PropertyID,
			TenantID:    r.TenantID,
			Title:       r.Title,
			Description: r.Description,
			Priority:    r.Priority,
			Status:      r.Status,
			SubmittedAt: r.SubmittedAt,
		}
		if r.CompletedAt != nil {
			m.CompletedAt = *r.CompletedAt
		}
		if r.AssignedTo != nil {
			m.AssignedTo = *r.AssignedTo
		}
		if r.Cost != nil {
			m.Cost = *r.Cost
		}
		if p, ok := properties[r.PropertyID]; ok {
			m.PropertyName = p.Name
		}
		if t, ok := tenants[r.TenantID]; ok {
			m.TenantName = t.Name
		}
		out = append(out, m)
	}
	return out
}

// FormatAddress joins the address parts into a single display line,
// skipping empty components ("12 Oak St, Springfield, IL 62704").
func FormatAddress(street, city, state, zip string) string {
	region := strings.TrimSpace(state + " " + zip)
	parts := make([]string, 0, 3)
	for _, p := range []string{street, city, region} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}
