// Package payments wraps the external payment processor behind a small
// gateway interface. The rest of the service only ever sees provider ids
// and mapped internal statuses; provider schemas stay inside this package.
package payments

import (
	"context"
	"errors"
	"log"
	"strconv"

	"github.com/google/uuid"
	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingAccessToken = errors.New("missing payment processor access token")
var ErrNotConfigured = errors.New("payment gateway not configured")

// ChargeRequest describes a card charge to create with the processor.
// Reference is the idempotency/external reference; when empty the gateway
// generates one.
type ChargeRequest struct {
	Amount      float64
	PayerEmail  string
	Description string
	Reference   string
}

// Charge is the gateway's view of a processor payment: the provider's id
// and raw status, plus the status mapped into the internal vocabulary.
type Charge struct {
	ProviderID     string
	ProviderStatus string
	Status         string
	Reference      string
}

// Gateway is the capability handlers depend on; *MercadoPagoGateway is
// the production implementation.
type Gateway interface {
	CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error)
	FetchCharge(ctx context.Context, providerID string) (Charge, error)
}

// MercadoPagoGateway calls the Mercado Pago payments API. With mock mode
// enabled (local runs, tests) no network calls are made and every charge
// is approved immediately.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

// NewMercadoPagoGateway builds a gateway from the access token. Pass
// mock=true to run without credentials.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		log.Printf("[payments] gateway running in mock mode")
		return &MercadoPagoGateway{mockMode: true}, nil
	}
	if accessToken == "" {
		return nil, ErrMissingAccessToken
	}
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}
	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// CreateCharge creates a payment with the processor and returns its
// provider id along with the mapped internal status.
func (g *MercadoPagoGateway) CreateCharge(ctx context.Context, req ChargeRequest) (Charge, error) {
	if req.Reference == "" {
		req.Reference = uuid.NewString()
	}
	if g.mockMode {
		id := uuid.NewString()
		log.Printf("[payments] mock charge approved provider_id=%s reference=%s amount=%.2f", id, req.Reference, req.Amount)
		return Charge{ProviderID: id, ProviderStatus: "approved", Status: MapProviderStatus("approved"), Reference: req.Reference}, nil
	}
	if g.client == nil {
		return Charge{}, ErrNotConfigured
	}

	resp, err := g.client.Create(ctx, payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		ExternalReference: req.Reference,
		Payer:             &payment.PayerRequest{Email: req.PayerEmail},
	})
	if err != nil {
		log.Printf("[payments] create charge failed reference=%s err=%v", req.Reference, err)
		return Charge{}, err
	}
	log.Printf("[payments] charge created provider_id=%d provider_status=%s reference=%s", resp.ID, resp.Status, req.Reference)
	return Charge{
		ProviderID:     strconv.Itoa(resp.ID),
		ProviderStatus: resp.Status,
		Status:         MapProviderStatus(resp.Status),
		Reference:      req.Reference,
	}, nil
}

// FetchCharge re-reads a provider payment so its current status can be
// synced onto the local row.
func (g *MercadoPagoGateway) FetchCharge(ctx context.Context, providerID string) (Charge, error) {
	if g.mockMode {
		return Charge{ProviderID: providerID, ProviderStatus: "approved", Status: MapProviderStatus("approved")}, nil
	}
	if g.client == nil {
		return Charge{}, ErrNotConfigured
	}
	id, err := strconv.Atoi(providerID)
	if err != nil {
		return Charge{}, errors.New("invalid provider payment id")
	}
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payments] fetch charge failed provider_id=%s err=%v", providerID, err)
		return Charge{}, err
	}
	return Charge{
		ProviderID:     providerID,
		ProviderStatus: resp.Status,
		Status:         MapProviderStatus(resp.Status),
		Reference:      resp.ExternalReference,
	}, nil
}
