package model

import "time"

// Maintenance priority vocabulary.
const (
	MaintenancePriorityLow       = "low"
	MaintenancePriorityMedium    = "medium"
	MaintenancePriorityHigh      = "high"
	MaintenancePriorityEmergency = "emergency"
)

// Maintenance status vocabulary.
const (
	MaintenanceStatusPending    = "pending"
	MaintenanceStatusInProgress = "in_progress"
	MaintenanceStatusCompleted  = "completed"
	MaintenanceStatusCancelled  = "cancelled"
)

// MaintenanceRequest records a repair or service request in the
// `maintenance_requests` table. Requests reference both the property they
// concern and the tenant who raised them.
//
// Fields:
//  ID          – primary key identifier.
//  PropertyID  – properties.id the request concerns.
//  TenantID    – tenants.id of the reporting tenant.
//  Title       – short summary.
//  Description – full description of the issue.
//  Priority    – request priority (low, medium, high, emergency).
//  Status      – request status (pending, in_progress, completed, cancelled).
//  SubmittedAt – when the request was filed.
//  CompletedAt – when work finished (nullable).
//  AssignedTo  – person or vendor handling the work (nullable).
//  Cost        – actual cost once known (nullable).
type MaintenanceRequest struct {
	ID          uint64     // maintenance_requests.id
	PropertyID  uint64     // maintenance_requests.property_id
	TenantID    uint64     // maintenance_requests.tenant_id
	Title       string     // maintenance_requests.title
	Description string     // maintenance_requests.description
	Priority    string     // maintenance_requests.priority
	Status      string     // maintenance_requests.status
	SubmittedAt time.Time  // maintenance_requests.submitted_at
	CompletedAt *time.Time // maintenance_requests.completed_at (nullable)
	AssignedTo  *string    // maintenance_requests.assigned_to (nullable)
	Cost        *float64   // maintenance_requests.cost (nullable)
	CreatedAt   time.Time  // maintenance_requests.created_at
	UpdatedAt   time.Time  // maintenance_requests.updated_at
}

// ValidMaintenancePriority reports whether s is one of the known priorities.
func ValidMaintenancePriority(s string) bool {
	switch s {
	case MaintenancePriorityLow, MaintenancePriorityMedium, MaintenancePriorityHigh, MaintenancePriorityEmergency:
		return true
	}
	return false
}

// ValidMaintenanceStatus reports whether s is one of the known statuses.
func ValidMaintenanceStatus(s string) bool {
	switch s {
	case MaintenanceStatusPending, MaintenanceStatusInProgress, MaintenanceStatusCompleted, MaintenanceStatusCancelled:
		return true
	}
	return false
}
