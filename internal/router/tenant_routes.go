package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/handler"
	"github.com/iliyamo/property-management/internal/middleware"
)

// RegisterTenantPortal registers TENANT-scoped endpoints under
// /v1/portal. All routes require a valid JWT and the TENANT role; the
// handler resolves the caller's tenant record from the user id claim, so
// every route only ever serves the caller's own data.
func RegisterTenantPortal(e *echo.Echo, h *handler.TenantPortalHandler, jwtSecret string) {
	g := e.Group(
		"/v1/portal",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("TENANT"),
	)

	g.GET("/lease", h.Lease)
	g.GET("/payments", h.Payments)
	g.GET("/maintenance", h.Maintenance)
	g.POST("/maintenance", h.CreateMaintenance)
}
