package listing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/snapshot"
)

func day(d int) time.Time { return time.Date(2026, 1, d, 0, 0, 0, 0, time.UTC) }

func TestSortBy(t *testing.T) {
	items := []snapshot.Tenant{
		{ID: 1, Name: "carol", RentAmount: 900, LeaseEnd: day(10)},
		{ID: 2, Name: "Alice", RentAmount: 1200, LeaseEnd: day(5)},
		{ID: 3, Name: "bob", RentAmount: 900, LeaseEnd: day(10)},
	}

	t.Run("ascending by name is case-insensitive", func(t *testing.T) {
		out := SortBy(items, TenantComparator("name"), Ascending)
		require.Equal(t, []uint64{2, 3, 1}, ids(out))
	})

	t.Run("descending flips the order", func(t *testing.T) {
		out := SortBy(items, TenantComparator("name"), Descending)
		require.Equal(t, []uint64{1, 3, 2}, ids(out))
	})

	t.Run("ties keep original relative order", func(t *testing.T) {
		out := SortBy(items, TenantComparator("lease_end"), Ascending)
		// tenants 1 and 3 share a lease end; 1 precedes 3 in the input
		require.Equal(t, []uint64{2, 1, 3}, ids(out))

		out = SortBy(items, TenantComparator("rent"), Ascending)
		require.Equal(t, []uint64{1, 3, 2}, ids(out))
	})

	t.Run("unknown field is a no-op, not an error", func(t *testing.T) {
		out := SortBy(items, TenantComparator("nope"), Ascending)
		require.Equal(t, []uint64{1, 2, 3}, ids(out))
	})

	t.Run("input slice is untouched", func(t *testing.T) {
		_ = SortBy(items, TenantComparator("name"), Ascending)
		require.Equal(t, []uint64{1, 2, 3}, ids(items))
	})
}

func TestMaintenancePrioritySort(t *testing.T) {
	items := []snapshot.MaintenanceRequest{
		{ID: 1, Priority: "medium"},
		{ID: 2, Priority: "emergency"},
		{ID: 3, Priority: "low"},
		{ID: 4, Priority: "high"},
		{ID: 5, Priority: "bogus"}, // unknown sorts first
	}
	out := SortBy(items, MaintenanceComparator("priority"), Ascending)
	require.Equal(t, "bogus", out[0].Priority)
	require.Equal(t, "low", out[1].Priority)
	require.Equal(t, "medium", out[2].Priority)
	require.Equal(t, "high", out[3].Priority)
	require.Equal(t, "emergency", out[4].Priority)
}

func TestPaymentComparators(t *testing.T) {
	items := []snapshot.Payment{
		{ID: 1, Amount: 50, PaidOn: day(3), Status: "pending"},
		{ID: 2, Amount: 200, PaidOn: day(1), Status: "completed"},
		{ID: 3, Amount: 100, PaidOn: day(2), Status: "failed"},
	}
	out := SortBy(items, PaymentComparator("amount"), Ascending)
	require.Equal(t, 50.0, out[0].Amount)
	require.Equal(t, 200.0, out[2].Amount)

	out = SortBy(items, PaymentComparator("date"), Descending)
	require.Equal(t, uint64(1), out[0].ID)
}

func ids(tenants []snapshot.Tenant) []uint64 {
	out := make([]uint64, len(tenants))
	for i, t := range tenants {
		out[i] = t.ID
	}
	return out
}
