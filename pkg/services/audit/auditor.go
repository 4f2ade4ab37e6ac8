package audit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/fisc-tools/doc-audit/pkg/models/domain"
)

// Auditor wraps the pure evaluation into session-scoped reports.
type Auditor struct {
	settings Settings
}

func NewAuditor(settings Settings) *Auditor {
	return &Auditor{settings: settings}
}

// Audit evaluates a bundle and assembles the report envelope: session id,
// generation timestamp and per-status summary counts.
func (a *Auditor) Audit(ctx context.Context, bundle domain.DocumentBundle) domain.AuditReport {
	logger := zerolog.Ctx(ctx)

	findings := Evaluate(bundle, a.settings)

	counts := map[domain.Status]int{}
	for _, f := range findings {
		counts[f.Status]++
	}
	summary := map[string]any{
		"rules_reported": len(findings),
		"passed":         counts[domain.StatusPass],
		"warnings":       counts[domain.StatusWarning],
		"failed":         counts[domain.StatusFail],
		"pending":        counts[domain.StatusPending],
	}

	report := domain.AuditReport{
		SessionID:   uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Summary:     summary,
		Findings:    findings,
	}

	logger.Info().
		Str("session_id", report.SessionID).
		Int("findings", len(findings)).
		Int("failed", counts[domain.StatusFail]).
		Msg("audit completed")

	return report
}
