package model

import "time"

// Payment method vocabulary.
const (
	PaymentMethodCash         = "cash"
	PaymentMethodCheck        = "check"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCreditCard   = "credit_card"
)

// Payment status vocabulary.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

// Payment records a rent payment in the `payments` table. Display fields
// such as the tenant name and property name are not stored here; they are
// derived by lookup during snapshot normalization.
//
// Fields:
//  ID          – primary key identifier.
//  TenantID    – tenants.id of the payer.
//  Amount      – amount paid.
//  PaidOn      – date the payment was made or initiated.
//  Method      – payment method (cash, check, bank_transfer, credit_card).
//  Status      – payment status (pending, completed, failed).
//  Notes       – free-form notes (nullable in DB, empty string when absent).
//  ProviderRef – external payment-processor reference for card charges
//                (nullable; manual payments have none).
type Payment struct {
	ID          uint64    // payments.id
	TenantID    uint64    // payments.tenant_id
	Amount      float64   // payments.amount
	PaidOn      time.Time // payments.paid_on
	Method      string    // payments.method
	Status      string    // payments.status
	Notes       string    // payments.notes
	ProviderRef *string   // payments.provider_ref (nullable)
	CreatedAt   time.Time // payments.created_at
	UpdatedAt   time.Time // payments.updated_at
}

// ValidPaymentMethod reports whether s is one of the known payment methods.
func ValidPaymentMethod(s string) bool {
	switch s {
	case PaymentMethodCash, PaymentMethodCheck, PaymentMethodBankTransfer, PaymentMethodCreditCard:
		return true
	}
	return false
}

// ValidPaymentStatus reports whether s is one of the known payment statuses.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return true
	}
	return false
}
