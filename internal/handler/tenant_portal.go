package handler

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/queue"
	"github.com/iliyamo/property-management/internal/repository"
	queue_publisher "github.com/iliyamo/property-management/internal/service"
	"github.com/iliyamo/property-management/internal/snapshot"
)

// TenantPortalHandler serves the tenant-facing endpoints. Every query is
// scoped through the tenant row linked to the authenticated user; a user
// with no linked tenant gets 404 on all portal routes.
type TenantPortalHandler struct {
	TenantRepo      *repository.TenantRepo
	PropertyRepo    *repository.PropertyRepo
	PaymentRepo     *repository.PaymentRepo
	MaintenanceRepo *repository.MaintenanceRepo
}

func NewTenantPortalHandler(tenants *repository.TenantRepo, props *repository.PropertyRepo,
	pays *repository.PaymentRepo, maint *repository.MaintenanceRepo) *TenantPortalHandler {
	if tenants == nil || props == nil || pays == nil || maint == nil {
		panic("nil repository passed to NewTenantPortalHandler")
	}
	return &TenantPortalHandler{
		TenantRepo:      tenants,
		PropertyRepo:    props,
		PaymentRepo:     pays,
		MaintenanceRepo: maint,
	}
}

// self resolves the caller's tenant row from the JWT user id.
func (h *TenantPortalHandler) self(c echo.Context) (*model.Tenant, error) {
	userID, err := getUserID(c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	t, err := h.TenantRepo.GetByUserID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return nil, echo.NewHTTPError(http.StatusNotFound, "no tenant record linked to this account")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return t, nil
}

// Lease handles GET /v1/portal/lease: the caller's own lease details with
// the property display fields resolved.
func (h *TenantPortalHandler) Lease(c echo.Context) error {
	t, err := h.self(c)
	if err != nil {
		return err
	}
	props := map[uint64]*snapshot.Property{}
	if t.PropertyID != nil {
		// portal lookups bypass manager scoping; the linkage itself is the authorization
		if p, perr := h.PropertyRepo.GetByID(c.Request().Context(), *t.PropertyID); perr == nil {
			v := snapshot.NormalizeProperties([]*model.Property{p})[0]
			props[v.ID] = &v
		}
	}
	view := snapshot.NormalizeTenants([]*model.Tenant{t}, props)[0]
	resp := echo.Map{"lease": view}
	if p, ok := props[view.PropertyID]; ok {
		resp["property"] = p
	}
	return c.JSON(http.StatusOK, resp)
}

// Payments handles GET /v1/portal/payments: the caller's payment history,
// newest first.
func (h *TenantPortalHandler) Payments(c echo.Context) error {
	t, err := h.self(c)
	if err != nil {
		return err
	}
	rows, err := h.PaymentRepo.ListByTenant(c.Request().Context(), t.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load payments"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rows, "balance": t.Balance})
}

// Maintenance handles GET /v1/portal/maintenance: the caller's own
// requests, newest first.
func (h *TenantPortalHandler) Maintenance(c echo.Context) error {
	t, err := h.self(c)
	if err != nil {
		return err
	}
	rows, err := h.MaintenanceRepo.ListByTenant(c.Request().Context(), t.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load requests"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": rows})
}

type portalMaintenanceReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// CreateMaintenance handles POST /v1/portal/maintenance: a tenant files a
// request against their own property. A broker event notifies listeners.
func (h *TenantPortalHandler) CreateMaintenance(c echo.Context) error {
	t, err := h.self(c)
	if err != nil {
		return err
	}
	if t.PropertyID == nil {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no property is linked to your lease"})
	}
	var req portalMaintenanceReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Title = strings.TrimSpace(req.Title)
	req.Priority = strings.TrimSpace(strings.ToLower(req.Priority))
	if req.Title == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title is required"})
	}
	if req.Priority == "" {
		req.Priority = model.MaintenancePriorityMedium
	}
	if !model.ValidMaintenancePriority(req.Priority) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "priority must be one of low, medium, high, emergency"})
	}

	ctx := c.Request().Context()
	m := &model.MaintenanceRequest{
		PropertyID:  *t.PropertyID,
		TenantID:    t.ID,
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Priority:    req.Priority,
		Status:      model.MaintenanceStatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	if err := h.MaintenanceRepo.Create(ctx, m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create request"})
	}

	ev := queue.MaintenanceRequestedEvent{
		RequestID:   m.ID,
		PropertyID:  m.PropertyID,
		TenantID:    t.ID,
		TenantName:  t.Name,
		Title:       m.Title,
		Priority:    m.Priority,
		SubmittedAt: m.SubmittedAt.Format(time.RFC3339),
	}
	if p, perr := h.PropertyRepo.GetByID(ctx, m.PropertyID); perr == nil {
		ev.PropertyName = p.Name
	}
	if err := queue_publisher.PublishMaintenanceRequested(ctx, ev); err != nil {
		log.Printf("portal: maintenance event publish failed request_id=%d: %v", m.ID, err)
	}
	return c.JSON(http.StatusCreated, m)
}
