package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fisc-tools/doc-audit/pkg/adapters"
	"github.com/fisc-tools/doc-audit/pkg/models/api"
	"github.com/fisc-tools/doc-audit/pkg/runtime/terminal/export"
	"github.com/fisc-tools/doc-audit/pkg/services/audit"
)

type AuditCmd struct {
	bundlePath string
	auditor    *audit.Auditor
	reporter   *export.Reporter
}

// NewAuditCmd audits an already-extracted bundle stored as a JSON file.
func NewAuditCmd(auditor *audit.Auditor, reporter *export.Reporter) *cobra.Command {
	ac := &AuditCmd{auditor: auditor, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit an extracted document bundle",
		RunE:  ac.run,
	}

	cmd.Flags().StringVar(&ac.bundlePath, "bundle", "", "Path to the extracted bundle JSON file")
	_ = cmd.MarkFlagRequired("bundle")

	return cmd
}

func (ac *AuditCmd) run(cmd *cobra.Command, _ []string) error {
	raw, err := os.ReadFile(ac.bundlePath)
	if err != nil {
		return fmt.Errorf("failed to read bundle file: %w", err)
	}

	var bundle api.DocumentBundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		return fmt.Errorf("failed to parse bundle file: %w", err)
	}

	report := ac.auditor.Audit(cmd.Context(), adapters.MapDocumentBundleApiToDomain(bundle))
	return ac.reporter.Handle(&report)
}
