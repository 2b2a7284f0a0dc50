package listing

import (
	"sort"
	"strings"

	"github.com/iliyamo/property-management/internal/snapshot"
)

// Direction values accepted by SortBy. Anything other than "desc" sorts
// ascending.
const (
	Ascending  = "asc"
	Descending = "desc"
)

// SortBy orders items by the comparator, descending when dir is "desc".
// A nil comparator (unknown sort field) leaves the order untouched
// rather than failing. The sort is stable: ties keep their original
// relative order. The input slice is never modified.
func SortBy[T any](items []T, cmp func(a, b T) int, dir string) []T {
	out := make([]T, len(items))
	copy(out, items)
	if cmp == nil {
		return out
	}
	desc := strings.EqualFold(strings.TrimSpace(dir), Descending)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

// String comparisons are byte-wise over lowercased values: locale
// insensitive, but consistent across calls.
func cmpString(a, b string) int { return strings.Compare(strings.ToLower(a), strings.ToLower(b)) }

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// PropertyComparator maps a sort field name to a comparator, or nil for
// an unrecognized field.
func PropertyComparator(field string) func(a, b snapshot.Property) int {
	switch field {
	case "name":
		return func(a, b snapshot.Property) int { return cmpString(a.Name, b.Name) }
	case "address":
		return func(a, b snapshot.Property) int { return cmpString(a.Address, b.Address) }
	case "units":
		return func(a, b snapshot.Property) int { return cmpInt(a.Units, b.Units) }
	case "type":
		return func(a, b snapshot.Property) int { return cmpString(a.Type, b.Type) }
	}
	return nil
}

// TenantComparator maps a sort field name to a comparator, or nil for an
// unrecognized field.
func TenantComparator(field string) func(a, b snapshot.Tenant) int {
	switch field {
	case "name":
		return func(a, b snapshot.Tenant) int { return cmpString(a.Name, b.Name) }
	case "email":
		return func(a, b snapshot.Tenant) int { return cmpString(a.Email, b.Email) }
	case "property":
		return func(a, b snapshot.Tenant) int { return cmpString(a.PropertyName, b.PropertyName) }
	case "unit":
		return func(a, b snapshot.Tenant) int { return cmpString(a.UnitNumber, b.UnitNumber) }
	case "rent":
		return func(a, b snapshot.Tenant) int { return cmpFloat(a.RentAmount, b.RentAmount) }
	case "balance":
		return func(a, b snapshot.Tenant) int { return cmpFloat(a.Balance, b.Balance) }
	case "lease_start":
		return func(a, b snapshot.Tenant) int { return a.LeaseStart.Compare(b.LeaseStart) }
	case "lease_end":
		return func(a, b snapshot.Tenant) int { return a.LeaseEnd.Compare(b.LeaseEnd) }
	case "status":
		return func(a, b snapshot.Tenant) int { return cmpString(a.Status, b.Status) }
	}
	return nil
}

// PaymentComparator maps a sort field name to a comparator, or nil for an
// unrecognized field.
func PaymentComparator(field string) func(a, b snapshot.Payment) int {
	switch field {
	case "tenant":
		return func(a, b snapshot.Payment) int { return cmpString(a.TenantName, b.TenantName) }
	case "property":
		return func(a, b snapshot.Payment) int { return cmpString(a.PropertyName, b.PropertyName) }
	case "amount":
		return func(a, b snapshot.Payment) int { return cmpFloat(a.Amount, b.Amount) }
	case "date":
		return func(a, b snapshot.Payment) int { return a.PaidOn.Compare(b.PaidOn) }
	case "method":
		return func(a, b snapshot.Payment) int { return cmpString(a.Method, b.Method) }
	case "status":
		return func(a, b snapshot.Payment) int { return cmpString(a.Status, b.Status) }
	}
	return nil
}

// MaintenanceComparator maps a sort field name to a comparator, or nil
// for an unrecognized field. Priority sorts by severity, not
// alphabetically.
func MaintenanceComparator(field string) func(a, b snapshot.MaintenanceRequest) int {
	switch field {
	case "title":
		return func(a, b snapshot.MaintenanceRequest) int { return cmpString(a.Title, b.Title) }
	case "property":
		return func(a, b snapshot.MaintenanceRequest) int { return cmpString(a.PropertyName, b.PropertyName) }
	case "priority":
		return func(a, b snapshot.MaintenanceRequest) int {
			return cmpInt(priorityRank(a.Priority), priorityRank(b.Priority))
		}
	case "status":
		return func(a, b snapshot.MaintenanceRequest) int { return cmpString(a.Status, b.Status) }
	case "submitted":
		return func(a, b snapshot.MaintenanceRequest) int { return a.SubmittedAt.Compare(b.SubmittedAt) }
	case "cost":
		return func(a, b snapshot.MaintenanceRequest) int { return cmpFloat(a.Cost, b.Cost) }
	}
	return nil
}

func priorityRank(p string) int {
	switch p {
	case "low":
		return 0
	case "medium":
		return 1
	case "high":
		return 2
	case "emergency":
		return 3
	}
	return -1 // unknown priorities sort first, keeping them visible
}
