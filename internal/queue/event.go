// Package queue defines message payloads exchanged over the message broker.
package queue

// PaymentRecordedEvent is published when a payment reaches the completed
// status, either recorded manually or confirmed by the payment processor.
// It carries enough display context for downstream consumers to log or
// notify without querying the primary database.
type PaymentRecordedEvent struct {
	PaymentID    uint64  `json:"payment_id"`
	TenantID     uint64  `json:"tenant_id"`
	TenantName   string  `json:"tenant_name"`
	PropertyID   uint64  `json:"property_id"`
	PropertyName string  `json:"property_name"`
	Amount       float64 `json:"amount"`
	Method       string  `json:"method"`
	PaidOn       string  `json:"paid_on"`
	RecordedAt   string  `json:"recorded_at"`
}

// MaintenanceRequestedEvent is published when a tenant files a new
// maintenance request through the portal.
type MaintenanceRequestedEvent struct {
	RequestID    uint64 `json:"request_id"`
	PropertyID   uint64 `json:"property_id"`
	PropertyName string `json:"property_name"`
	TenantID     uint64 `json:"tenant_id"`
	TenantName   string `json:"tenant_name"`
	Title        string `json:"title"`
	Priority     string `json:"priority"`
	SubmittedAt  string `json:"submitted_at"`
}
