package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/snapshot"
)

func activeTenant(id, propertyID uint64, rent, balance float64) snapshot.Tenant {
	return snapshot.Tenant{ID: id, PropertyID: propertyID, RentAmount: rent, Balance: balance, Status: "active"}
}

func TestRoundPct(t *testing.T) {
	t.Run("zero whole never divides", func(t *testing.T) {
		require.Equal(t, 0, roundPct(5, 0))
		require.Equal(t, 0, roundPct(0, 0))
	})
	t.Run("halves round up", func(t *testing.T) {
		require.Equal(t, 13, roundPct(1, 8))  // 12.5
		require.Equal(t, 38, roundPct(3, 8))  // 37.5
		require.Equal(t, 67, roundPct(2, 3))  // 66.67
		require.Equal(t, 33, roundPct(1, 3))  // 33.33
		require.Equal(t, 50, roundPct(1, 2))
		require.Equal(t, 100, roundPct(4, 4))
	})
}

func TestOccupancyRate(t *testing.T) {
	p := snapshot.Property{ID: 1, Units: 4}
	tenants := []snapshot.Tenant{
		activeTenant(1, 1, 1000, 0),
		activeTenant(2, 1, 900, 0),
		{ID: 3, PropertyID: 1, Status: "inactive"},
		activeTenant(4, 2, 800, 0), // other property
	}

	require.Equal(t, 2, OccupiedUnits(1, tenants))
	require.Equal(t, 50, OccupancyRate(p, tenants))
	require.Equal(t, 2, VacancyCount(p, tenants))

	t.Run("zero units is zero percent", func(t *testing.T) {
		empty := snapshot.Property{ID: 9, Units: 0}
		require.Equal(t, 0, OccupancyRate(empty, tenants))
	})

	t.Run("over-assignment yields negative vacancy", func(t *testing.T) {
		tiny := snapshot.Property{ID: 1, Units: 1}
		require.Equal(t, -1, VacancyCount(tiny, tenants))
		require.Equal(t, 200, OccupancyRate(tiny, tenants))
	})
}

func TestOverallOccupancyVariants(t *testing.T) {
	properties := []snapshot.Property{{ID: 1, Units: 4}, {ID: 2, Units: 4}}
	tenants := []snapshot.Tenant{
		activeTenant(1, 1, 1000, 0),
		activeTenant(2, 1, 900, 0),
		{ID: 3, PropertyID: 2, Status: "pending"},
		{ID: 4, PropertyID: 2, Status: "inactive"},
	}

	// The two variants differ exactly when non-active tenants exist.
	require.Equal(t, 25, OverallOccupancyRate(properties, tenants))           // 2/8
	require.Equal(t, 50, OverallOccupancyRateAllTenants(properties, tenants)) // 4/8

	t.Run("no properties", func(t *testing.T) {
		require.Equal(t, 0, OverallOccupancyRate(nil, tenants))
		require.Equal(t, 0, OverallOccupancyRateAllTenants(nil, tenants))
	})
}

func TestRentFigures(t *testing.T) {
	tenants := []snapshot.Tenant{
		activeTenant(1, 1, 1000, 200), // collected 800
		activeTenant(2, 1, 500, 0),    // collected 500
		{ID: 3, RentAmount: 700, Balance: 700, Status: "inactive"}, // ignored
	}

	require.Equal(t, 1500.0, ExpectedRent(tenants))
	require.Equal(t, 1300.0, CollectedRent(tenants))
	require.Equal(t, 87, CollectionRate(tenants)) // 86.67 rounds up
	require.Equal(t, 200.0, OutstandingBalance(tenants))

	t.Run("no active tenants", func(t *testing.T) {
		inactive := []snapshot.Tenant{{ID: 1, RentAmount: 900, Status: "inactive"}}
		require.Equal(t, 0.0, ExpectedRent(inactive))
		require.Equal(t, 0, CollectionRate(inactive))
		require.Equal(t, 0.0, OutstandingBalance(inactive))
	})

	t.Run("overpaid tenant pushes balance negative", func(t *testing.T) {
		over := []snapshot.Tenant{activeTenant(1, 1, 1000, -100)}
		require.Equal(t, 1100.0, CollectedRent(over))
		require.Equal(t, -100.0, OutstandingBalance(over))
		require.Equal(t, 110, CollectionRate(over))
	})
}
