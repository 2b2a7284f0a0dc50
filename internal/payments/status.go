package payments

import (
	"strings"

	"github.com/iliyamo/property-management/internal/model"
)

// MapProviderStatus translates a payment processor's terminal status into
// the internal payment status vocabulary. Anything unrecognized stays
// pending so a new provider state never surfaces as paid or failed.
func MapProviderStatus(provider string) string {
	switch strings.ToLower(strings.TrimSpace(provider)) {
	case "succeeded", "approved":
		return model.PaymentStatusCompleted
	case "processing", "in_process", "pending":
		return model.PaymentStatusPending
	case "canceled", "cancelled", "rejected", "requires_payment_method":
		return model.PaymentStatusFailed
	}
	return model.PaymentStatusPending
}
