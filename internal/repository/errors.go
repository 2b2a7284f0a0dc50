// Package repository contains the data access layer, separated from HTTP
// handlers. This file defines sentinel errors reused across multiple
// repositories so handlers can map failure scenarios onto HTTP statuses
// with errors.Is instead of string matching.
package repository

import "errors"

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not manage. Handlers translate this into HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when a delete or update cannot proceed because
// of dependent state. Handlers translate this into HTTP 409.
var ErrConflict = errors.New("conflict")

// Not-found sentinels, one per entity, so callers can distinguish a
// missing parent from a missing child on multi-entity operations.
var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrTenantNotFound      = errors.New("tenant not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrMaintenanceNotFound = errors.New("maintenance request not found")
	ErrDocumentNotFound    = errors.New("document not found")
)
