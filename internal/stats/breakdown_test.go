package stats

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/snapshot"
)

func TestPaymentBreakdown(t *testing.T) {
	t.Run("no tenants at all is the No Payment placeholder", func(t *testing.T) {
		b := PaymentBreakdown(nil, nil)
		require.Equal(t, BreakdownNoPayment, b.Kind)
		require.Equal(t, []ChartSlice{{Name: "No Payment", Value: 1}}, b.ChartSlices())
	})

	t.Run("tenants but none active is the No Tenants placeholder", func(t *testing.T) {
		tenants := []snapshot.Tenant{
			{ID: 1, Status: "inactive"},
			{ID: 2, Status: "pending"},
		}
		b := PaymentBreakdown(nil, tenants)
		require.Equal(t, BreakdownNoTenants, b.Kind)
		require.Equal(t, []ChartSlice{{Name: "No Tenants", Value: 1}}, b.ChartSlices())
	})

	t.Run("two active tenants with no payments are both unpaid", func(t *testing.T) {
		tenants := []snapshot.Tenant{
			{ID: 1, Status: "active"},
			{ID: 2, Status: "active"},
		}
		b := PaymentBreakdown(nil, tenants)
		require.Equal(t, BreakdownCounts, b.Kind)
		require.Equal(t, 0, b.Paid)
		require.Equal(t, 2, b.Unpaid)
		// The real count of 2 shares the "No Payment" label with the
		// placeholder; the kind tag is what tells them apart.
		require.Equal(t, []ChartSlice{{Name: "No Payment", Value: 2}}, b.ChartSlices())
	})

	t.Run("completed payments mark tenants paid", func(t *testing.T) {
		tenants := []snapshot.Tenant{
			{ID: 1, Status: "active"},
			{ID: 2, Status: "active"},
			{ID: 3, Status: "active"},
			{ID: 4, Status: "inactive"},
		}
		payments := []snapshot.Payment{
			{ID: 10, TenantID: 1, Status: "completed"},
			{ID: 11, TenantID: 2, Status: "pending"}, // pending does not count
			{ID: 12, TenantID: 4, Status: "completed"}, // inactive tenant ignored
		}
		b := PaymentBreakdown(payments, tenants)
		require.Equal(t, BreakdownCounts, b.Kind)
		require.Equal(t, 1, b.Paid)
		require.Equal(t, 2, b.Unpaid)
		require.Equal(t, []ChartSlice{
			{Name: "Paid", Value: 1},
			{Name: "No Payment", Value: 2},
		}, b.ChartSlices())
	})

	t.Run("all paid omits the empty unpaid slice", func(t *testing.T) {
		tenants := []snapshot.Tenant{{ID: 1, Status: "active"}}
		payments := []snapshot.Payment{{ID: 10, TenantID: 1, Status: "completed"}}
		b := PaymentBreakdown(payments, tenants)
		require.Equal(t, []ChartSlice{{Name: "Paid", Value: 1}}, b.ChartSlices())
	})

	t.Run("multiple payments for one tenant count once", func(t *testing.T) {
		tenants := []snapshot.Tenant{{ID: 1, Status: "active"}}
		payments := []snapshot.Payment{
			{ID: 10, TenantID: 1, Status: "completed"},
			{ID: 11, TenantID: 1, Status: "completed"},
		}
		b := PaymentBreakdown(payments, tenants)
		require.Equal(t, 1, b.Paid)
	})
}
