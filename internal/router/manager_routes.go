package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/handler"
	"github.com/iliyamo/property-management/internal/middleware"
)

// RegisterManager registers MANAGER-scoped endpoints under /v1. All
// routes require a valid JWT and the MANAGER role; every handler scopes
// its queries to the authenticated manager's own records. The optional
// cached middleware (Redis response cache) wraps the read-heavy
// dashboard endpoints when non-nil.
func RegisterManager(e *echo.Echo, m *handler.ManagerHandler, jwtSecret string, cached echo.MiddlewareFunc) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("MANAGER"),
	)

	// ---- Properties ----
	g.POST("/properties", m.CreateProperty)
	g.GET("/properties", m.ListProperties)
	g.GET("/properties/:id", m.GetProperty)
	g.PUT("/properties/:id", m.UpdateProperty)
	g.PATCH("/properties/:id", m.UpdateProperty)
	g.DELETE("/properties/:id", m.DeleteProperty)
	g.GET("/properties/:id/stats", m.PropertyStats)

	// ---- Tenants ----
	g.POST("/tenants", m.CreateTenant)
	g.GET("/tenants", m.ListTenants)
	g.GET("/tenants/:id", m.GetTenant)
	g.PUT("/tenants/:id", m.UpdateTenant)
	g.PATCH("/tenants/:id", m.UpdateTenant)
	g.DELETE("/tenants/:id", m.DeleteTenant)

	// ---- Payments ----
	g.GET("/payments", m.ListPayments)
	g.POST("/payments", m.RecordPayment)
	g.POST("/payments/charge", m.ChargePayment)
	g.POST("/payments/:id/sync", m.SyncPayment)

	// ---- Maintenance ----
	g.GET("/maintenance", m.ListMaintenance)
	g.POST("/maintenance", m.CreateMaintenance)
	g.GET("/maintenance/:id", m.GetMaintenance)
	g.PUT("/maintenance/:id", m.UpdateMaintenance)
	g.PATCH("/maintenance/:id", m.UpdateMaintenance)
	g.DELETE("/maintenance/:id", m.DeleteMaintenance)

	// ---- Documents ----
	g.POST("/documents", m.CreateDocument)
	g.GET("/documents", m.ListDocuments)
	g.GET("/documents/:id", m.GetDocument)
	g.DELETE("/documents/:id", m.DeleteDocument)

	// ---- Dashboard ----
	var mw []echo.MiddlewareFunc
	if cached != nil {
		mw = append(mw, cached)
	}
	g.GET("/dashboard", m.Dashboard, mw...)
	g.GET("/dashboard/payment-status", m.PaymentStatusChart, mw...)
	g.GET("/dashboard/occupancy", m.OccupancySummary, mw...)
}
