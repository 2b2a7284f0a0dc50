package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/listing"
	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/repository"
)

type maintenanceCreateReq struct {
	PropertyID  uint64 `json:"property_id"`
	TenantID    uint64 `json:"tenant_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

type maintenanceUpdateReq struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	Status      string   `json:"status"`
	AssignedTo  *string  `json:"assigned_to"`
	Cost        *float64 `json:"cost"`
}

// ListMaintenance handles GET /v1/maintenance with ?search=&sort=&dir=.
func (h *ManagerHandler) ListMaintenance(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	snap, err := h.Loader.Load(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load maintenance requests"})
	}
	items := listing.Filter(snap.Maintenance, c.QueryParam("search"))
	items = listing.SortBy(items, listing.MaintenanceComparator(c.QueryParam("sort")), c.QueryParam("dir"))
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// CreateMaintenance handles POST /v1/maintenance: a request filed by the
// manager on a tenant's behalf.
func (h *ManagerHandler) CreateMaintenance(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req maintenanceCreateReq
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
	if _, err := h.PropertyRepo.GetByIDAndManager(ctx, req.PropertyID, managerID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "property_id does not reference one of your properties"})
	}
	if _, err := h.TenantRepo.GetByIDAndManager(ctx, req.TenantID, managerID); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id does not reference one of your tenants"})
	}

	m := &model.MaintenanceRequest{
		PropertyID:  req.PropertyID,
		TenantID:    req.TenantID,
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Priority:    req.Priority,
		Status:      model.MaintenanceStatusPending,
		SubmittedAt: time.Now().UTC(),
	}
	if err := h.MaintenanceRepo.Create(ctx, m); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create request"})
	}
	return c.JSON(http.StatusCreated, m)
}

// GetMaintenance handles GET /v1/maintenance/:id.
func (h *ManagerHandler) GetMaintenance(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	m, err := h.MaintenanceRepo.GetByIDAndManager(c.Request().Context(), id, managerID)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, m)
}

// UpdateMaintenance handles PUT/PATCH /v1/maintenance/:id and drives the
// workflow: priority and status changes, assignment, cost. Moving into
// the completed status stamps completed_at; moving out clears it.
func (h *ManagerHandler) UpdateMaintenance(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req maintenanceUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	ctx := c.Request().Context()
	m, err := h.MaintenanceRepo.GetByIDAndManager(ctx, id, managerID)
	if err != nil {
		if errors.Is(err, repository.ErrMaintenanceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	if v := strings.TrimSpace(req.Title); v != "" {
		m.Title = v
	}
	if v := strings.TrimSpace(req.Description); v != "" {
		m.Description = v
	}
	if v := strings.TrimSpace(strings.ToLower(req.Priority)); v != "" {
		if !model.ValidMaintenancePriority(v) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "priority must be one of low, medium, high, emergency"})
		}
		m.Priority = v
	}
	if v := strings.TrimSpace(strings.ToLower(req.Status)); v != "" {
		if !model.ValidMaintenanceStatus(v) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be one of pending, in_progress, completed, cancelled"})
		}
		if v == model.MaintenanceStatusCompleted && m.Status != model.MaintenanceStatusCompleted {
			now := time.Now().UTC()
			m.CompletedAt = &now
		}
		if v != model.MaintenanceStatusCompleted {
			m.CompletedAt = nil
		}
		m.Status = v
	}
	if req.AssignedTo != nil {
		m.AssignedTo = req.AssignedTo
	}
	if req.Cost != nil {
		if *req.Cost < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "cost must not be negative"})
		}
		m.Cost = req.Cost
	}

	if err := h.MaintenanceRepo.Update(ctx, managerID, m); err != nil {
		if errors.Is(err, repository.ErrMaintenanceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, m)
}

// DeleteMaintenance handles DELETE /v1/maintenance/:id.
func (h *ManagerHandler) DeleteMaintenance(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.MaintenanceRepo.DeleteByIDAndManager(c.Request().Context(), id, managerID); err != nil {
		if errors.Is(err, repository.ErrMaintenanceNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "request not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
