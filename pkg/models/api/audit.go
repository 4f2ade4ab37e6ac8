package api

import "time"

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPass    Status = "PASS"
	StatusWarning Status = "WARNING"
	StatusFail    Status = "FAIL"
)

type SubFinding struct {
	Label   string `json:"label"`
	Status  Status `json:"status"`
	Details string `json:"details,omitempty"`
}

type Finding struct {
	Id             string       `json:"id"`
	Title          string       `json:"title"`
	Description    string       `json:"description,omitempty"`
	Status         Status       `json:"status"`
	Details        string       `json:"details,omitempty"`
	Recommendation string       `json:"recommendation,omitempty"`
	SubFindings    []SubFinding `json:"sub_findings,omitempty"`
}

type AuditReport struct {
	SessionId   string         `json:"session_id"`
	GeneratedAt time.Time      `json:"generated_at"`
	Summary     map[string]any `json:"summary"`
	Findings    []Finding      `json:"findings"`
}
