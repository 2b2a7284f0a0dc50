package snapshot

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/model"
)

func TestBuild(t *testing.T) {
	properties := []*model.Property{{ID: 1, Name: "Oakwood", Units: 4}}
	tenants := []*model.Tenant{{ID: 5, PropertyID: idptr(1), Name: "Ada", Status: "active"}}
	payments := []*model.Payment{{ID: 9, TenantID: 5, Amount: 100, Method: "cash", Status: "completed"}}
	maintenance := []*model.MaintenanceRequest{{ID: 3, PropertyID: 1, TenantID: 5, Title: "Leak", Priority: "high", Status: "pending"}}

	s := Build(properties, tenants, payments, maintenance)

	require.Len(t, s.Properties, 1)
	require.Len(t, s.Tenants, 1)
	require.Len(t, s.Payments, 1)
	require.Len(t, s.Maintenance, 1)

	// lookup maps point into the slices
	require.Same(t, &s.Properties[0], s.PropertyByID[1])
	require.Same(t, &s.Tenants[0], s.TenantByID[5])

	// joins resolved in dependency order
	require.Equal(t, "Oakwood", s.Tenants[0].PropertyName)
	require.Equal(t, "Ada", s.Payments[0].TenantName)
	require.Equal(t, "Oakwood", s.Payments[0].PropertyName)
	require.Equal(t, "Oakwood", s.Maintenance[0].PropertyName)
	require.Equal(t, "Ada", s.Maintenance[0].TenantName)
}

func TestAppendRekeysMaps(t *testing.T) {
	s := Build([]*model.Property{{ID: 1, Name: "A", Units: 1}}, nil, nil, nil)
	s.AppendProperty(&model.Property{ID: 2, Name: "B", Units: 2})
	require.Len(t, s.Properties, 2)
	// both entries must resolve even if the append reallocated the slice
	require.Equal(t, "A", s.PropertyByID[1].Name)
	require.Equal(t, "B", s.PropertyByID[2].Name)

	s.AppendTenant(&model.Tenant{ID: 7, PropertyID: idptr(2), Name: "Noel", Status: "active"})
	require.Equal(t, "B", s.TenantByID[7].PropertyName)

	s.AppendPayment(&model.Payment{ID: 11, TenantID: 7, Amount: 50, Method: "cash", Status: "pending"})
	require.Equal(t, "Noel", s.Payments[len(s.Payments)-1].TenantName)
}

// fixed sources for loader tests

type propSource struct {
	rows []*model.Property
	err  error
}

func (s propSource) ListByManager(context.Context, uint64) ([]*model.Property, error) {
	return s.rows, s.err
}

type tenantSource struct{ rows []*model.Tenant }

func (s tenantSource) ListByManager(context.Context, uint64) ([]*model.Tenant, error) {
	return s.rows, nil
}

type paymentSource struct{ rows []*model.Payment }

func (s paymentSource) ListByManager(context.Context, uint64) ([]*model.Payment, error) {
	return s.rows, nil
}

type maintSource struct{ rows []*model.MaintenanceRequest }

func (s maintSource) ListByManager(context.Context, uint64) ([]*model.MaintenanceRequest, error) {
	return s.rows, nil
}

func TestLoader(t *testing.T) {
	t.Run("builds from all four sources", func(t *testing.T) {
		l := &Loader{
			Properties:  propSource{rows: []*model.Property{{ID: 1, Name: "Oakwood", Units: 2}}},
			Tenants:     tenantSource{rows: []*model.Tenant{{ID: 5, PropertyID: idptr(1), Name: "Ada", Status: "active"}}},
			Payments:    paymentSource{rows: []*model.Payment{{ID: 9, TenantID: 5, Method: "cash", Status: "completed"}}},
			Maintenance: maintSource{},
		}
		s, err := l.Load(context.Background(), 7)
		require.NoError(t, err)
		require.Equal(t, "Oakwood", s.Payments[0].PropertyName)
	})

	t.Run("any source failure fails the whole load", func(t *testing.T) {
		l := &Loader{
			Properties:  propSource{err: errors.New("db down")},
			Tenants:     tenantSource{},
			Payments:    paymentSource{},
			Maintenance: maintSource{},
		}
		s, err := l.Load(context.Background(), 7)
		require.Error(t, err)
		require.Nil(t, s)
	})

	t.Run("cancelled context fails the load", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		l := &Loader{
			Properties:  propSource{},
			Tenants:     tenantSource{},
			Payments:    paymentSource{},
			Maintenance: maintSource{},
		}
		s, err := l.Load(ctx, 7)
		require.Error(t, err)
		require.Nil(t, s)
	})
}
