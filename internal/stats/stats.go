// Package stats computes the derived figures shown on the manager
// dashboard and summary cards. Every function is a pure reduction over
// normalized snapshot records: no side effects, empty input is the zero
// case, and every division is guarded so rates are always plain integers
// (never NaN or Inf).
package stats

import (
	"math"

	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/snapshot"
)

// roundPct returns round(100*part/whole) as an integer percentage, or 0
// when whole is zero. Halves round up (away from zero) for the
// non-negative inputs rates are computed from.
func roundPct(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(100 * part / whole))
}

// OccupiedUnits counts the active tenants assigned to the property.
func OccupiedUnits(propertyID uint64, tenants []snapshot.Tenant) int {
	n := 0
	for _, t := range tenants {
		if t.PropertyID == propertyID && t.Status == model.TenantStatusActive {
			n++
		}
	}
	return n
}

// OccupancyRate returns the percentage of the property's units held by
// active tenants. A property with zero units is 0% occupied.
func OccupancyRate(p snapshot.Property, tenants []snapshot.Tenant) int {
	return roundPct(float64(OccupiedUnits(p.ID, tenants)), float64(p.Units))
}

// VacancyCount returns units minus occupied units. The result can go
// negative when more active tenants are assigned than the property has
// units; that over-assignment is surfaced as-is, not clamped.
func VacancyCount(p snapshot.Property, tenants []snapshot.Tenant) int {
	return p.Units - OccupiedUnits(p.ID, tenants)
}

// OverallOccupancyRate returns the portfolio-wide occupancy: active
// tenants over total units across all properties.
func OverallOccupancyRate(properties []snapshot.Property, tenants []snapshot.Tenant) int {
	return roundPct(float64(countActive(tenants)), float64(totalUnits(properties)))
}

// OverallOccupancyRateAllTenants is the legacy variant of
// OverallOccupancyRate that counts every tenant regardless of status.
// Some summary views historically used this figure; both variants are
// kept distinct on purpose until the intended behavior is settled, so
// callers choose explicitly instead of inheriting a silent fix.
func OverallOccupancyRateAllTenants(properties []snapshot.Property, tenants []snapshot.Tenant) int {
	return roundPct(float64(len(tenants)), float64(totalUnits(properties)))
}

// ExpectedRent sums the rent of all active tenants.
func ExpectedRent(tenants []snapshot.Tenant) float64 {
	var sum float64
	for _, t := range tenants {
		if t.Status == model.TenantStatusActive {
			sum += t.RentAmount
		}
	}
	return sum
}

// CollectedRent sums rent-minus-balance over active tenants, i.e. what
// has effectively been collected for the current period.
func CollectedRent(tenants []snapshot.Tenant) float64 {
	var sum float64
	for _, t := range tenants {
		if t.Status == model.TenantStatusActive {
			sum += t.RentAmount - t.Balance
		}
	}
	return sum
}

// CollectionRate returns collected over expected rent as an integer
// percentage, 0 when no rent is expected regardless of balances.
func CollectionRate(tenants []snapshot.Tenant) int {
	return roundPct(CollectedRent(tenants), ExpectedRent(tenants))
}

// OutstandingBalance returns expected minus collected rent. A negative
// result means overpayment and is reported as-is.
func OutstandingBalance(tenants []snapshot.Tenant) float64 {
	return ExpectedRent(tenants) - CollectedRent(tenants)
}

func countActive(tenants []snapshot.Tenant) int {
	n := 0
	for _, t := range tenants {
		if t.Status == model.TenantStatusActive {
			n++
		}
	}
	return n
}

func totalUnits(properties []snapshot.Property) int {
	n := 0
	for _, p := range properties {
		n += p.Units
	}
	return n
}
