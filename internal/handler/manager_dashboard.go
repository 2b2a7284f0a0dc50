package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/stats"
)

// Dashboard handles GET /v1/dashboard: the headline overview figures
// reduced from a fresh snapshot of all four collections.
func (h *ManagerHandler) Dashboard(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	snap, err := h.Loader.Load(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load dashboard data"})
	}
	return c.JSON(http.StatusOK, stats.DashboardStats(snap.Payments, snap.Tenants, snap.Properties, snap.Maintenance))
}

// PaymentStatusChart handles GET /v1/dashboard/payment-status and
// returns the pie-chart slices for the paid/unpaid tenant breakdown.
func (h *ManagerHandler) PaymentStatusChart(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	snap, err := h.Loader.Load(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load dashboard data"})
	}
	breakdown := stats.PaymentBreakdown(snap.Payments, snap.Tenants)
	return c.JSON(http.StatusOK, echo.Map{"slices": breakdown.ChartSlices()})
}

// OccupancySummary handles GET /v1/dashboard/occupancy with the two
// portfolio occupancy readings side by side.
func (h *ManagerHandler) OccupancySummary(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	snap, err := h.Loader.Load(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load dashboard data"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"occupancy_rate":             stats.OverallOccupancyRate(snap.Properties, snap.Tenants),
		"occupancy_rate_all_tenants": stats.OverallOccupancyRateAllTenants(snap.Properties, snap.Tenants),
		"collection_rate":            stats.CollectionRate(snap.Tenants),
		"outstanding_balance":        stats.OutstandingBalance(snap.Tenants),
	})
}
