package audit

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditor_Audit(t *testing.T) {
	auditor := NewAuditor(DefaultSettings())

	t.Run("assembles the report envelope", func(t *testing.T) {
		report := auditor.Audit(context.Background(), consistentBundle())

		assert.NotEmpty(t, report.SessionID)
		assert.False(t, report.GeneratedAt.IsZero())
		require.NotEmpty(t, report.Findings)
		assert.Equal(t, len(report.Findings), report.Summary["rules_reported"])
		assert.Equal(t, len(report.Findings), report.Summary["passed"])
		assert.Equal(t, 0, report.Summary["failed"])
	})

	t.Run("counts failures", func(t *testing.T) {
		bundle := consistentBundle()
		bundle.Receipt.IsDefinitive = false

		report := auditor.Audit(context.Background(), bundle)

		assert.Equal(t, 1, report.Summary["failed"])
	})

	t.Run("sessions get distinct ids", func(t *testing.T) {
		first := auditor.Audit(context.Background(), consistentBundle())
		second := auditor.Audit(context.Background(), consistentBundle())

		assert.NotEqual(t, first.SessionID, second.SessionID)
		assert.Equal(t, first.Findings, second.Findings)
	})
}
