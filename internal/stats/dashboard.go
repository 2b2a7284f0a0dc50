package stats

import (
	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/snapshot"
)

// Dashboard bundles the headline figures for the manager overview page.
// Collected rent here is the sum of completed payment amounts, which is
// why its collection rate is computed from totalRent/collectedRent and
// not via CollectionRate (that one derives collection from balances).
type Dashboard struct {
	ActiveTenants      int     `json:"active_tenants"`
	TotalUnits         int     `json:"total_units"`
	VacantUnits        int     `json:"vacant_units"`
	TotalRent          float64 `json:"total_rent"`
	CollectedRent      float64 `json:"collected_rent"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	PendingMaintenance int     `json:"pending_maintenance"`
	OccupancyRate      int     `json:"occupancy_rate"`
	CollectionRate     int     `json:"collection_rate"`
}

// DashboardStats reduces the four collections into the overview bundle.
// All empty collections yield the all-zero dashboard.
func DashboardStats(payments []snapshot.Payment, tenants []snapshot.Tenant, properties []snapshot.Property, maintenance []snapshot.MaintenanceRequest) Dashboard {
	d := Dashboard{
		ActiveTenants: countActive(tenants),
		TotalUnits:    totalUnits(properties),
		TotalRent:     ExpectedRent(tenants),
	}
	d.VacantUnits = d.TotalUnits - d.ActiveTenants

	for _, p := range payments {
		if p.Status == model.PaymentStatusCompleted {
			d.CollectedRent += p.Amount
		}
	}
	for _, m := range maintenance {
		if m.Status == model.MaintenanceStatusPending || m.Status == model.MaintenanceStatusInProgress {
			d.PendingMaintenance++
		}
	}

	d.OccupancyRate = roundPct(float64(d.ActiveTenants), float64(d.TotalUnits))
	d.CollectionRate = roundPct(d.CollectedRent, d.TotalRent)
	d.OutstandingBalance = d.TotalRent - d.CollectedRent
	return d
}
