package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/snapshot"
)

func TestDashboardStats(t *testing.T) {
	t.Run("empty collections yield the zero dashboard", func(t *testing.T) {
		d := DashboardStats(nil, nil, nil, nil)
		require.Equal(t, Dashboard{}, d)
	})

	t.Run("portfolio scenario", func(t *testing.T) {
		properties := []snapshot.Property{
			{ID: 1, Units: 3},
			{ID: 2, Units: 1},
		}
		tenants := []snapshot.Tenant{
			activeTenant(1, 1, 1200, 0),
			activeTenant(2, 1, 800, 0),
			{ID: 3, PropertyID: 2, RentAmount: 1000, Status: "pending"},
		}
		payments := []snapshot.Payment{
			{ID: 10, TenantID: 1, Amount: 1200, Status: "completed"},
			{ID: 11, TenantID: 2, Amount: 300, Status: "completed"},
			{ID: 12, TenantID: 2, Amount: 500, Status: "pending"}, // not collected
			{ID: 13, TenantID: 3, Amount: 100, Status: "failed"},  // not collected
		}
		maintenance := []snapshot.MaintenanceRequest{
			{ID: 20, Status: "pending"},
			{ID: 21, Status: "in_progress"},
			{ID: 22, Status: "completed"},
			{ID: 23, Status: "cancelled"},
		}

		d := DashboardStats(payments, tenants, properties, maintenance)
		require.Equal(t, 2, d.ActiveTenants)
		require.Equal(t, 4, d.TotalUnits)
		require.Equal(t, 2, d.VacantUnits)
		require.Equal(t, 2000.0, d.TotalRent)
		require.Equal(t, 1500.0, d.CollectedRent)
		require.Equal(t, 500.0, d.OutstandingBalance)
		require.Equal(t, 2, d.PendingMaintenance)
		require.Equal(t, 50, d.OccupancyRate)
		require.Equal(t, 75, d.CollectionRate)
	})

	t.Run("more active tenants than units goes negative, not clamped", func(t *testing.T) {
		properties := []snapshot.Property{{ID: 1, Units: 1}}
		tenants := []snapshot.Tenant{
			activeTenant(1, 1, 500, 0),
			activeTenant(2, 1, 500, 0),
		}
		d := DashboardStats(nil, tenants, properties, nil)
		require.Equal(t, -1, d.VacantUnits)
		require.Equal(t, 200, d.OccupancyRate)
	})

	t.Run("collected above expected gives negative outstanding", func(t *testing.T) {
		tenants := []snapshot.Tenant{activeTenant(1, 1, 100, 0)}
		payments := []snapshot.Payment{{ID: 1, TenantID: 1, Amount: 150, Status: "completed"}}
		d := DashboardStats(payments, tenants, nil, nil)
		require.Equal(t, -50.0, d.OutstandingBalance)
		require.Equal(t, 150, d.CollectionRate)
	})
}
