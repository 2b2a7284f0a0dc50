package handler // handler package contains manager-facing property handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/listing"
	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/repository"
	"github.com/iliyamo/property-management/internal/snapshot"
	"github.com/iliyamo/property-management/internal/stats"
)

type propertyReq struct {
	Name     string  `json:"name"`
	Street   string  `json:"street"`
	City     string  `json:"city"`
	State    string  `json:"state"`
	Zip      string  `json:"zip"`
	Units    int     `json:"units"`
	Type     string  `json:"type"`
	ImageURL *string `json:"image_url"`
}

func (r *propertyReq) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	r.Type = strings.TrimSpace(strings.ToLower(r.Type))
	if r.Name == "" {
		return "name is required"
	}
	if r.Units < 0 {
		return "units must not be negative"
	}
	if !model.ValidPropertyType(r.Type) {
		return "type must be one of apartment, house, duplex, commercial"
	}
	return ""
}

// CreateProperty handles POST /v1/properties.
func (h *ManagerHandler) CreateProperty(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	p := &model.Property{
		ManagerID: managerID,
		Name:      req.Name,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Units:     req.Units,
		Type:      req.Type,
		ImageURL:  req.ImageURL,
	}
	if err := h.PropertyRepo.Create(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create property"})
	}
	return c.JSON(http.StatusCreated, snapshot.NormalizeProperties([]*model.Property{p})[0])
}

// ListProperties handles GET /v1/properties with optional
// ?search=&sort=&dir= query parameters.
func (h *ManagerHandler) ListProperties(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	rows, err := h.PropertyRepo.ListByManager(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load properties"})
	}
	items := snapshot.NormalizeProperties(rows)
	items = listing.Filter(items, c.QueryParam("search"))
	items = listing.SortBy(items, listing.PropertyComparator(c.QueryParam("sort")), c.QueryParam("dir"))
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetProperty handles GET /v1/properties/:id.
func (h *ManagerHandler) GetProperty(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.PropertyRepo.GetByIDAndManager(c.Request().Context(), id, managerID)
	if err != nil {
		if errors.Is(err, repository.ErrPropertyNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, snapshot.NormalizeProperties([]*model.Property{p})[0])
}

// UpdateProperty handles PUT/PATCH /v1/properties/:id.
func (h *ManagerHandler) UpdateProperty(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req propertyReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	p := &model.Property{
		ID:        id,
		ManagerID: managerID,
		Name:      req.Name,
		Street:    req.Street,
		City:      req.City,
		State:     req.State,
		Zip:       req.Zip,
		Units:     req.Units,
		Type:      req.Type,
		ImageURL:  req.ImageURL,
	}
	if err := h.PropertyRepo.Update(c.Request().Context(), p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.PropertyRepo.GetByIDAndManager(c.Request().Context(), id, managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, snapshot.NormalizeProperties([]*model.Property{updated})[0])
}

// DeleteProperty handles DELETE /v1/properties/:id. Tenants assigned to
// the property are unassigned, not deleted.
func (h *ManagerHandler) DeleteProperty(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.PropertyRepo.DeleteByIDAndManager(c.Request().Context(), id, managerID); err != nil {
		switch {
		case errors.Is(err, repository.ErrPropertyNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// PropertyStats handles GET /v1/properties/:id/stats and returns the
// occupancy figures for one property.
func (h *ManagerHandler) PropertyStats(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	snap, err := h.Loader.Load(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load data"})
	}
	p, ok := snap.PropertyByID[id]
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"property_id":    p.ID,
		"units":          p.Units,
		"occupied_units": stats.OccupiedUnits(p.ID, snap.Tenants),
		"vacancy_count":  stats.VacancyCount(*p, snap.Tenants),
		"occupancy_rate": stats.OccupancyRate(*p, snap.Tenants),
	})
}
