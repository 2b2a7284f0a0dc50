package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/property-management/internal/listing"
	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/payments"
	"github.com/iliyamo/property-management/internal/queue"
	"github.com/iliyamo/property-management/internal/repository"
	queue_publisher "github.com/iliyamo/property-management/internal/service"
)

type recordPaymentReq struct {
	TenantID uint64  `json:"tenant_id"`
	Amount   float64 `json:"amount"`
	PaidOn   string  `json:"paid_on"` // YYYY-MM-DD, defaults to today
	Method   string  `json:"method"`
	Status   string  `json:"status"` // defaults to completed
	Notes    string  `json:"notes"`
}

type chargePaymentReq struct {
	TenantID    uint64  `json:"tenant_id"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
}

// ListPayments handles GET /v1/payments with ?search=&sort=&dir=. The
// list carries denormalized tenant/property display fields.
func (h *ManagerHandler) ListPayments(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	snap, err := h.Loader.Load(c.Request().Context(), managerID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not load payments"})
	}
	items := listing.Filter(snap.Payments, c.QueryParam("search"))
	items = listing.SortBy(items, listing.PaymentComparator(c.QueryParam("sort")), c.QueryParam("dir"))
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// RecordPayment handles POST /v1/payments: a manually recorded payment
// (cash, check, transfer). A completed payment reduces the tenant's
// balance and publishes a broker event.
func (h *ManagerHandler) RecordPayment(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	req.Method = strings.TrimSpace(strings.ToLower(req.Method))
	req.Status = strings.TrimSpace(strings.ToLower(req.Status))
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}
	if !model.ValidPaymentMethod(req.Method) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "method must be one of cash, check, bank_transfer, credit_card"})
	}
	if req.Status == "" {
		req.Status = model.PaymentStatusCompleted
	}
	if !model.ValidPaymentStatus(req.Status) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be one of pending, completed, failed"})
	}
	paidOn := time.Now().UTC()
	if req.PaidOn != "" {
		paidOn, err = time.Parse(dateLayout, req.PaidOn)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "paid_on must be YYYY-MM-DD"})
		}
	}

	ctx := c.Request().Context()
	tenant, err := h.TenantRepo.GetByIDAndManager(ctx, req.TenantID, managerID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id does not reference one of your tenants"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	p := &model.Payment{
		TenantID: req.TenantID,
		Amount:   req.Amount,
		PaidOn:   paidOn,
		Method:   req.Method,
		Status:   req.Status,
		Notes:    strings.TrimSpace(req.Notes),
	}
	if err := h.PaymentRepo.Create(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not record payment"})
	}
	if p.Status == model.PaymentStatusCompleted {
		h.settleCompleted(ctx, p, tenant)
	}
	return c.JSON(http.StatusCreated, p)
}

// ChargePayment handles POST /v1/payments/charge: creates a card charge
// with the payment processor and records it locally with the mapped
// status and the provider reference.
func (h *ManagerHandler) ChargePayment(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if h.Gateway == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "card charges are not enabled"})
	}
	var req chargePaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if req.Amount <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "amount must be positive"})
	}

	ctx := c.Request().Context()
	tenant, err := h.TenantRepo.GetByIDAndManager(ctx, req.TenantID, managerID)
	if err != nil {
		if errors.Is(err, repository.ErrTenantNotFound) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "tenant_id does not reference one of your tenants"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	desc := strings.TrimSpace(req.Description)
	if desc == "" {
		desc = "Rent payment for " + tenant.Name + " (" + h.Cfg.PaymentCurrency + ")"
	}
	charge, err := h.Gateway.CreateCharge(ctx, payments.ChargeRequest{
		Amount:      req.Amount,
		PayerEmail:  tenant.Email,
		Description: desc,
	})
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "payment processor rejected the charge"})
	}

	ref := charge.ProviderID
	p := &model.Payment{
		TenantID:    req.TenantID,
		Amount:      req.Amount,
		PaidOn:      time.Now().UTC(),
		Method:      model.PaymentMethodCreditCard,
		Status:      charge.Status,
		Notes:       desc,
		ProviderRef: &ref,
	}
	if err := h.PaymentRepo.Create(ctx, p); err != nil {
		log.Printf("[payments] charge %s created but local insert failed: %v", charge.ProviderID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not record payment"})
	}
	if p.Status == model.PaymentStatusCompleted {
		h.settleCompleted(ctx, p, tenant)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"payment":         p,
		"provider_status": charge.ProviderStatus,
	})
}

// SyncPayment handles POST /v1/payments/:id/sync: re-reads the charge
// from the processor and applies the mapped status locally. A payment
// reaching completed settles the tenant balance and publishes the event.
func (h *ManagerHandler) SyncPayment(c echo.Context) error {
	managerID, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	if h.Gateway == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "card charges are not enabled"})
	}
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx := c.Request().Context()
	p, err := h.PaymentRepo.GetByIDAndManager(ctx, id, managerID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "payment not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	if p.ProviderRef == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "payment has no provider reference"})
	}

	charge, err := h.Gateway.FetchCharge(ctx, *p.ProviderRef)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"error": "could not reach the payment processor"})
	}
	if charge.Status != p.Status {
		if err := h.PaymentRepo.UpdateStatus(ctx, p.ID, charge.Status); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not update payment"})
		}
		if charge.Status == model.PaymentStatusCompleted {
			prev := p.Status
			p.Status = charge.Status
			if tenant, terr := h.TenantRepo.GetByIDAndManager(ctx, p.TenantID, managerID); terr == nil && prev != model.PaymentStatusCompleted {
				h.settleCompleted(ctx, p, tenant)
			}
		} else {
			p.Status = charge.Status
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"payment":         p,
		"provider_status": charge.ProviderStatus,
	})
}

// settleCompleted applies the side effects of a payment reaching the
// completed status: the tenant balance drops by the amount and a broker
// event goes out. Both are best effort; failures are logged, never
// surfaced to the client that already has a stored payment.
func (h *ManagerHandler) settleCompleted(ctx context.Context, p *model.Payment, tenant *model.Tenant) {
	if err := h.TenantRepo.UpdateBalance(ctx, tenant.ID, tenant.Balance-p.Amount); err != nil {
		log.Printf("[payments] balance update failed tenant_id=%d: %v", tenant.ID, err)
	}

	ev := queue.PaymentRecordedEvent{
		PaymentID:  p.ID,
		TenantID:   tenant.ID,
		TenantName: tenant.Name,
		Amount:     p.Amount,
		Method:     p.Method,
		PaidOn:     p.PaidOn.UTC().Format(dateLayout),
		RecordedAt: time.Now().UTC().Format(time.RFC3339),
	}
	if tenant.PropertyID != nil {
		ev.PropertyID = *tenant.PropertyID
		if prop, err := h.PropertyRepo.GetByIDAndManager(ctx, *tenant.PropertyID, tenant.ManagerID); err == nil {
			ev.PropertyName = prop.Name
		}
	}
	if err := queue_publisher.PublishPaymentRecorded(ctx, ev); err != nil {
		log.Printf("[payments] event publish failed payment_id=%d: %v", p.ID, err)
	}
}
