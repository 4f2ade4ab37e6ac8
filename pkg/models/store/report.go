package store

import "time"

// ReportRecord is the persisted shape of a finished audit report. Findings and
// Summary are stored as JSON documents.
type ReportRecord struct {
	ID          string
	GeneratedAt time.Time
	Summary     []byte
	Findings    []byte
}
