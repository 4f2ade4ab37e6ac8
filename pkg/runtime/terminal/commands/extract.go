package commands

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/fisc-tools/doc-audit/pkg/runtime/terminal/export"
	"github.com/fisc-tools/doc-audit/pkg/services/audit"
	"github.com/fisc-tools/doc-audit/pkg/services/config"
	"github.com/fisc-tools/doc-audit/pkg/services/extract"
)

type ExtractCmd struct {
	cfgPath  string
	profile  string
	timeout  time.Duration
	auditor  *audit.Auditor
	reporter *export.Reporter
}

// NewExtractCmd sends raw document files to the extraction service and audits
// the resulting bundle in one go. Documents are passed as kind=path pairs,
// e.g. invoice=nf.pdf receipt=tr.pdf.
func NewExtractCmd(auditor *audit.Auditor, reporter *export.Reporter) *cobra.Command {
	ec := &ExtractCmd{auditor: auditor, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "extract kind=path [kind=path ...]",
		Short: "Extract raw documents and audit the bundle",
		Args:  cobra.MinimumNArgs(1),
		RunE:  ec.run,
	}

	defaultCfg := ".auditcfg"
	if usr, err := user.Current(); err == nil {
		defaultCfg = filepath.Join(usr.HomeDir, ".auditcfg")
	}

	cmd.Flags().StringVar(&ec.cfgPath, "cfg", defaultCfg, "Path to the .auditcfg profiles file")
	cmd.Flags().StringVar(&ec.profile, "profile", "DEFAULT", "Extraction service profile to use")
	cmd.Flags().DurationVar(&ec.timeout, "timeout", 2*time.Minute, "Deadline for the extraction call")

	return cmd
}

func (ec *ExtractCmd) run(cmd *cobra.Command, args []string) error {
	registry, err := config.NewRegistry(ec.cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load profiles from %s: %w", ec.cfgPath, err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), ec.timeout)
	defer cancel()

	profile, err := registry.GetProfile(ctx, ec.profile)
	if err != nil {
		return err
	}

	docs, err := loadDocuments(args)
	if err != nil {
		return err
	}

	client := extract.NewClient(http.DefaultClient, profile.Host, profile.Token)
	bundle, err := client.ExtractBundle(ctx, docs)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	report := ec.auditor.Audit(ctx, bundle)
	return ec.reporter.Handle(&report)
}

func loadDocuments(args []string) ([]extract.Document, error) {
	kinds := map[string]extract.DocumentKind{
		"certificate": extract.KindCertificate,
		"receipt":     extract.KindReceipt,
		"invoice":     extract.KindInvoice,
		"billing":     extract.KindBilling,
		"stock":       extract.KindStockEntry,
		"note":        extract.KindAdminNote,
	}

	var docs []extract.Document
	for _, arg := range args {
		kindName, path, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("invalid document argument %q, expected kind=path", arg)
		}
		kind, ok := kinds[kindName]
		if !ok {
			return nil, fmt.Errorf("unknown document kind %q", kindName)
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		docs = append(docs, extract.Document{
			Name:      filepath.Base(path),
			Kind:      kind,
			MediaType: mime.TypeByExtension(filepath.Ext(path)),
			Content:   content,
		})
	}
	return docs, nil
}
