package model

import "time"

// AuditEntry is one append-only row of the audit trail. Entries are written
// in the same transaction as the domain change they describe and are never
// updated or deleted.
type AuditEntry struct {
	ID        int            `json:"id"`
	UserID    *int           `json:"user_id"`
	Action    string         `json:"action"`
	Entity    string         `json:"entity"`
	EntityID  int            `json:"entity_id"`
	Details   map[string]any `json:"details"`
	CreatedAt time.Time      `json:"created_at"`
}
