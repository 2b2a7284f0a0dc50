package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/repository"
)

type documentReq struct {
	PropertyID *uint64 `json:"property_id"`
	TenantID   *uint64 `json:"tenant_id"`
	Name       string  `json:"name"`
	Kind       string  `json:"kind"` // lease, invoice, photo, other
	URL        string  `json:"url"`
}

var documentKinds = map[string]bool{
	"lease": true, "invoice": true, "photo": true, "other": true,
}

// CreateDocument handles POST /v1/documents. Only metadata is stored;
// the URL points at external storage.
func (h *ManagerHandler) CreateDocument(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req documentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Kind = strings.TrimSpace(strings.ToLower(req.Kind))
	req.URL = strings.TrimSpace(req.URL)
	if req.Name == "" || req.URL == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and url are required"})
	}
	if req.Kind == "" {
		req.Kind = "other"
	}
	if !documentKinds[req.Kind] {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "kind must be one of lease, invoice, photo, other"})
	}

	ctx := c.Request().Context()
	if req.PropertyID != nil {
		if _, err := h.PropertyRepo.GetByIDAndManager(ctx, *req.PropertyID, managerID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "property_id does not reference one of your properties"})
		}
	}
	if req.TenantID != nil {
		if _, err := h.TenantRepo.GetByIDAndManager(ctx, *req.TenantID, managerID); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id does not reference one of your tenants"})
		}
	}

	d := &model.Document{
		ManagerID:  managerID,
		PropertyID: req.PropertyID,
		TenantID:   req.TenantID,
		Name:       req.Name,
		Kind:       req.Kind,
		URL:        req.URL,
	}
	if err := h.DocumentRepo.Create(ctx, d); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create document"})
	}
	return c.JSON(http.StatusCreated, d)
}

// ListDocuments handles GET /v1/documents.
func (h *ManagerHandler) ListDocuments(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	docs, err := h.DocumentRepo.ListByManager(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load documents"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": docs})
}

// GetDocument handles GET /v1/documents/:id.
func (h *ManagerHandler) GetDocument(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	d, err := h.DocumentRepo.GetByIDAndManager(c.Request().Context(), id, managerID)
	if err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "document not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, d)
}

// DeleteDocument handles DELETE /v1/documents/:id. The external file is
// untouched.
func (h *ManagerHandler) DeleteDocument(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.DocumentRepo.DeleteByIDAndManager(c.Request().Context(), id, managerID); err != nil {
		if errors.Is(err, repository.ErrDocumentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "document not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
