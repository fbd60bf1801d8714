package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// This is a single-user application, so there are no user ID references.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// NewAuditFields returns audit fields for a freshly created entity.
func NewAuditFields(now time.Time) AuditFields {
	return AuditFields{CreatedAt: now, LastUpdatedAt: now}
}
