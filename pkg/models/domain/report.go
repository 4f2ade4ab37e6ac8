package domain

import "time"

// AuditReport is the result of auditing one document bundle.
type AuditReport struct {
	SessionID   string
	GeneratedAt time.Time
	Summary     map[string]any
	Findings    []Finding
}
