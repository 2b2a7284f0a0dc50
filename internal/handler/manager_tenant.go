package handler

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/listing"
	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/repository"
	"github.com/iliyamo/property-management/internal/snapshot"
)

const dateLayout = "2006-01-02"

type tenantReq struct {
	PropertyID *uint64 `json:"property_id"`
	UserID     *uint64 `json:"user_id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Phone      string  `json:"phone"`
	UnitNumber string  `json:"unit_number"`
	LeaseStart string  `json:"lease_start"` // YYYY-MM-DD
	LeaseEnd   string  `json:"lease_end"`   // YYYY-MM-DD
	RentAmount float64 `json:"rent_amount"`
	Deposit    float64 `json:"deposit"`
	Balance    float64 `json:"balance"`
	Status     string  `json:"status"`
}

// toModel validates the request and builds the persisted row. Returns a
// human-readable message on the first validation failure.
func (r *tenantReq) toModel(managerID uint64) (*model.Tenant, string) {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Status = strings.TrimSpace(strings.ToLower(r.Status))
	if r.Name == "" {
		return nil, "name is required"
	}
	if r.RentAmount < 0 {
		return nil, "rent_amount must not be negative"
	}
	if r.Status == "" {
		r.Status = model.TenantStatusPending
	}
	if !model.ValidTenantStatus(r.Status) {
		return nil, "status must be one of active, inactive, pending"
	}
	start, err := time.Parse(dateLayout, r.LeaseStart)
	if err != nil {
		return nil, "lease_start must be YYYY-MM-DD"
	}
	end, err := time.Parse(dateLayout, r.LeaseEnd)
	if err != nil {
		return nil, "lease_end must be YYYY-MM-DD"
	}
	return &model.Tenant{
		ManagerID:  managerID,
		PropertyID: r.PropertyID,
		UserID:     r.UserID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      strings.TrimSpace(r.Phone),
		UnitNumber: strings.TrimSpace(r.UnitNumber),
		LeaseStart: start,
		LeaseEnd:   end,
		RentAmount: r.RentAmount,
		Deposit:    r.Deposit,
		Balance:    r.Balance,
		Status:     r.Status,
	}, ""
}

// normalizeOne resolves the property display name for a single tenant by
// loading just the referenced property, avoiding a full snapshot build.
func (h *ManagerHandler) normalizeOne(c echo.Context, managerID uint64, t *model.Tenant) (snapshot.Tenant, error) {
	props := map[uint64]*snapshot.Property{}
	if t.PropertyID != nil {
		if p, err := h.PropertyRepo.GetByIDAndManager(c.Request().Context(), *t.PropertyID, managerID); err == nil {
			v := snapshot.NormalizeProperties([]*model.Property{p})[0]
			props[v.ID] = &v
		}
	}
	return snapshot.NormalizeTenants([]*model.Tenant{t}, props)[0], nil
}

// CreateTenant handles POST /v1/tenants.
func (h *ManagerHandler) CreateTenant(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req tenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t, msg := req.toModel(managerID)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	// a referenced property must exist and belong to this manager
	if t.PropertyID != nil {
		if _, err := h.PropertyRepo.GetByIDAndManager(c.Request().Context(), *t.PropertyID, managerID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "property_id does not reference one of your properties"})
		}
	}
	if err := h.TenantRepo.Create(c.Request().Context(), t); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create tenant"})
	}
	view, _ := h.normalizeOne(c, managerID, t)
	return c.JSON(http.StatusCreated, view)
}

// ListTenants handles GET /v1/tenants with ?search=&sort=&dir=.
func (h *ManagerHandler) ListTenants(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	snap, err := h.Loader.Load(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load tenants"})
	}
	items := listing.Filter(snap.Tenants, c.QueryParam("search"))
	items = listing.SortBy(items, listing.TenantComparator(c.QueryParam("sort")), c.QueryParam("dir"))
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetTenant handles GET /v1/tenants/:id.
func (h *ManagerHandler) GetTenant(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	t, err := h.TenantRepo.GetByIDAndManager(c.Request().Context(), id, managerID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	view, _ := h.normalizeOne(c, managerID, t)
	return c.JSON(http.StatusOK, view)
}

// UpdateTenant handles PUT/PATCH /v1/tenants/:id.
func (h *ManagerHandler) UpdateTenant(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req tenantReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	t, msg := req.toModel(managerID)
	if msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}
	t.ID = id
	if t.PropertyID != nil {
		if _, err := h.PropertyRepo.GetByIDAndManager(c.Request().Context(), *t.PropertyID, managerID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "property_id does not reference one of your properties"})
		}
	}
	if err := h.TenantRepo.Update(c.Request().Context(), t); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	updated, err := h.TenantRepo.GetByIDAndManager(c.Request().Context(), id, managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	view, _ := h.normalizeOne(c, managerID, updated)
	return c.JSON(http.StatusOK, view)
}

// DeleteTenant handles DELETE /v1/tenants/:id. Dependent payments,
// maintenance requests and documents go with the tenant.
func (h *ManagerHandler) DeleteTenant(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.TenantRepo.DeleteByIDAndManager(c.Request().Context(), id, managerID); err != nil {
		switch {
		case errors.Is(err, repository.ErrTenantNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "tenant not found"})
		case errors.Is(err, repository.ErrForbidden):
			return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
