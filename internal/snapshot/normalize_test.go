package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

func strptr(s string) *string    { return &s }
func idptr(v uint64) *uint64     { return &v }
func fptr(v float64) *float64    { return &v }

func TestNormalizeProperties(t *testing.T) {
	rows := []*model.Property{
		{ID: 1, ManagerID: 7, Name: "Oakwood", Street: "12 Oak St", City: "Springfield",
			State: "IL", Zip: "62704", Units: 8, Type: "apartment", ImageURL: strptr("http://img/1.png")},
		{ID: 2, ManagerID: 7, Name: "Bare", Units: 1, Type: "house"}, // no image, no address
	}
	out := NormalizeProperties(rows)
	require.Len(t, out, 2)
	require.Equal(t, "12 Oak St, Springfield, IL 62704", out[0].Address)
	require.Equal(t, "http://img/1.png", out[0].ImageURL)
	require.Equal(t, "", out[1].ImageURL)
	require.Equal(t, "", out[1].Address)

	t.Run("unknown type passes through verbatim", func(t *testing.T) {
		odd := NormalizeProperties([]*model.Property{{ID: 3, Type: "warehouse"}})
		require.Len(t, odd, 1)
		require.Equal(t, "warehouse", odd[0].Type)
	})
}

func TestFormatAddress(t *testing.T) {
	require.Equal(t, "12 Oak St, Springfield, IL 62704", FormatAddress("12 Oak St", "Springfield", "IL", "62704"))
	require.Equal(t, "Springfield, IL", FormatAddress("", "Springfield", "IL", ""))
	require.Equal(t, "62704", FormatAddress("", "", "", "62704"))
	require.Equal(t, "", FormatAddress("", "", "", ""))
}

func TestNormalizeTenants(t *testing.T) {
	props := map[uint64]*Property{1: {ID: 1, Name: "Oakwood"}}
	rows := []*model.Tenant{
		{ID: 1, ManagerID: 7, PropertyID: idptr(1), UserID: idptr(42), Name: "Ada", Status: "active"},
		{ID: 2, ManagerID: 7, Name: "Noel", Status: "pending"},              // unassigned
		{ID: 3, ManagerID: 7, PropertyID: idptr(99), Name: "Dangling", Status: "active"}, // dangling ref
	}
	out := NormalizeTenants(rows, props)
	require.Len(t, out, 3)
	require.Equal(t, "Oakwood", out[0].PropertyName)
	require.Equal(t, uint64(42), out[0].UserID)
	require.Equal(t, uint64(0), out[1].PropertyID)
	require.Equal(t, "", out[1].PropertyName)
	// dangling reference keeps the id but resolves no name
	require.Equal(t, uint64(99), out[2].PropertyID)
	require.Equal(t, "", out[2].PropertyName)
}

func TestNormalizePayments(t *testing.T) {
	tenants := map[uint64]*Tenant{
		5: {ID: 5, Name: "Ada", PropertyID: 1, PropertyName: "Oakwood", UnitNumber: "2B"},
	}
	rows := []*model.Payment{
		{ID: 1, TenantID: 5, Amount: 1200, Method: "cash", Status: "completed"},
		{ID: 2, TenantID: 77, Amount: 100, Method: "check", Status: "pending"}, // dangling tenant
	}
	out := NormalizePayments(rows, tenants)
	require.Len(t, out, 2)
	// transitively resolved display fields: payment -> tenant -> property
	require.Equal(t, "Ada", out[0].TenantName)
	require.Equal(t, "Oakwood", out[0].PropertyName)
	require.Equal(t, "2B", out[0].UnitNumber)
	require.Equal(t, "", out[1].TenantName)
	require.Equal(t, uint64(0), out[1].PropertyID)
}

func TestNormalizeMaintenance(t *testing.T) {
	props := map[uint64]*Property{1: {ID: 1, Name: "Oakwood"}}
	tenants := map[uint64]*Tenant{5: {ID: 5, Name: "Ada"}}
	done := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	rows := []*model.MaintenanceRequest{
		{ID: 1, PropertyID: 1, TenantID: 5, Title: "Leak", Priority: "high", Status: "completed",
			CompletedAt: &done, AssignedTo: strptr("Bob"), Cost: fptr(250)},
		{ID: 2, PropertyID: 1, TenantID: 5, Title: "Noise", Priority: "low", Status: "pending"},
	}
	out := NormalizeMaintenance(rows, props, tenants)
	require.Len(t, out, 2)
	require.Equal(t, "Oakwood", out[0].PropertyName)
	require.Equal(t, "Ada", out[0].TenantName)
	require.Equal(t, done, out[0].CompletedAt)
	require.Equal(t, "Bob", out[0].AssignedTo)
	require.Equal(t, 250.0, out[0].Cost)
	// optional fields default to zero values
	require.True(t, out[1].CompletedAt.IsZero())
	require.Equal(t, "", out[1].AssignedTo)
	require.Equal(t, 0.0, out[1].Cost)
}
