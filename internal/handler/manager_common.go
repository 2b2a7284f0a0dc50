package handler // handler defines http handlers

import (
	"errors"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/config"
	"github.com/iliyamo/property-management/internal/payments"
	"github.com/iliyamo/property-management/internal/repository"
	"github.com/iliyamo/property-management/internal/snapshot"
)

// ManagerHandler bundles everything the manager-facing endpoints need:
// the entity repositories, the snapshot loader for dashboard/list views,
// and the payment gateway for card charges.
type ManagerHandler struct {
	Cfg             config.Config
	PropertyRepo    *repository.PropertyRepo
	TenantRepo      *repository.TenantRepo
	PaymentRepo     *repository.PaymentRepo
	MaintenanceRepo *repository.MaintenanceRepo
	DocumentRepo    *repository.DocumentRepo
	Loader          *snapshot.Loader
	Gateway         payments.Gateway
}

// NewManagerHandler constructs a ManagerHandler and panics if a required
// dependency is nil (the gateway may be nil when charges are disabled).
func NewManagerHandler(cfg config.Config, props *repository.PropertyRepo, tenants *repository.TenantRepo,
	pays *repository.PaymentRepo, maint *repository.MaintenanceRepo, docs *repository.DocumentRepo,
	gateway payments.Gateway) *ManagerHandler {
	if props == nil || tenants == nil || pays == nil || maint == nil || docs == nil {
		panic("nil repository passed to NewManagerHandler")
	}
	return &ManagerHandler{
		Cfg:             cfg,
		PropertyRepo:    props,
		TenantRepo:      tenants,
		PaymentRepo:     pays,
		MaintenanceRepo: maint,
		DocumentRepo:    docs,
		Loader: &snapshot.Loader{
			Properties:  props,
			Tenants:     tenants,
			Payments:    pays,
			Maintenance: maint,
		},
		Gateway: gateway,
	}
}

// getUserID extracts the user_id from echo.Context and converts it to
// uint64. JWT numeric claims arrive as float64, so several shapes are
// accepted.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (uint64, error) {
	return strconv.ParseUint(c.Param("id"), 10, 64)
}
