package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/property-management/internal/config"
	"github.com/iliyamo/property-management/internal/repository"
	"github.com/iliyamo/property-management/internal/stats"
)

// newTestHandler wires a ManagerHandler over a sqlmock database. The
// loader issues its four list queries concurrently, so expectations are
// matched out of order.
func newTestHandler(t *testing.T) (*ManagerHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(
		sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(false)

	h := NewManagerHandler(config.Config{},
		repository.NewPropertyRepo(db),
		repository.NewTenantRepo(db),
		repository.NewPaymentRepo(db),
		repository.NewMaintenanceRepo(db),
		repository.NewDocumentRepo(db),
		nil)
	return h, mock
}

func expectSnapshotQueries(mock sqlmock.Sqlmock) {
	now := time.Now().UTC()

	mock.ExpectQuery("FROM properties WHERE manager_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "name", "street", "city", "state", "zip",
			"units", "type", "image_url", "created_at", "updated_at"}).
			AddRow(1, 7, "Oakwood", "12 Oak St", "Springfield", "IL", "62704", 4, "apartment", nil, now, now))

	mock.ExpectQuery("FROM tenants WHERE manager_id = \\?").
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id", "property_id", "user_id", "name", "email",
			"phone", "unit_number", "lease_start", "lease_end", "rent_amount", "deposit", "balance", "status",
			"created_at", "updated_at"}).
			AddRow(5, 7, 1, nil, "Ada", "ada@x.y", "", "2B", now, now.AddDate(1, 0, 0), 1000.0, 500.0, 0.0, "active", now, now).
			AddRow(6, 7, 1, nil, "Noel", "noel@x.y", "", "3A", now, now.AddDate(1, 0, 0), 1000.0, 500.0, 1000.0, "active", now, now))

	mock.ExpectQuery("JOIN tenants t ON t.id = p.tenant_id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "tenant_id", "amount", "paid_on", "method", "status",
			"notes", "provider_ref", "created_at", "updated_at"}).
			AddRow(9, 5, 1000.0, now, "cash", "completed", nil, nil, now, now))

	mock.ExpectQuery("JOIN properties pr ON pr.id = m.property_id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "property_id", "tenant_id", "title", "description",
			"priority", "status", "submitted_at", "completed_at", "assigned_to", "cost", "created_at", "updated_at"}).
			AddRow(3, 1, 5, "Leak", "kitchen sink", "high", "pending", now, nil, nil, nil, now, now))
}

func TestDashboardHandler(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSnapshotQueries(mock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7))
	c.Set("role", "MANAGER")

	require.NoError(t, h.Dashboard(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var d stats.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	require.Equal(t, 2, d.ActiveTenants)
	require.Equal(t, 4, d.TotalUnits)
	require.Equal(t, 2, d.VacantUnits)
	require.Equal(t, 2000.0, d.TotalRent)
	require.Equal(t, 1000.0, d.CollectedRent)
	require.Equal(t, 1, d.PendingMaintenance)
	require.Equal(t, 50, d.OccupancyRate)
	require.Equal(t, 50, d.CollectionRate)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentStatusChartHandler(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSnapshotQueries(mock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/payment-status", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7))

	require.NoError(t, h.PaymentStatusChart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Slices []stats.ChartSlice `json:"slices"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	// one tenant paid, one without a completed payment
	require.Equal(t, []stats.ChartSlice{
		{Name: "Paid", Value: 1},
		{Name: "No Payment", Value: 1},
	}, resp.Slices)
}

func TestListPaymentsSearchAndSort(t *testing.T) {
	h, mock := newTestHandler(t)
	expectSnapshotQueries(mock)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/payments?search=ada&sort=amount&dir=desc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", uint64(7))

	require.NoError(t, h.ListPayments(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []map[string]any `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	require.Equal(t, "Ada", resp.Items[0]["tenant_name"])
	require.Equal(t, "Oakwood", resp.Items[0]["property_name"])
}

func TestGetUserIDShapes(t *testing.T) {
	e := echo.New()
	for _, v := range []any{uint64(7), int(7), int64(7), float64(7), "7"} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.Set("user_id", v)
		got, err := getUserID(c)
		require.NoError(t, err)
		require.Equal(t, uint64(7), got)
	}

	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, err := getUserID(c)
	require.Error(t, err)
}
