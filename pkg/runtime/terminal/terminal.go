package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fisc-tools/doc-audit/pkg/runtime/terminal/commands"
	"github.com/fisc-tools/doc-audit/pkg/runtime/terminal/export"
	"github.com/fisc-tools/doc-audit/pkg/services/audit"
)

// CLI represents the command-line interface
type CLI struct {
	auditor  *audit.Auditor
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Settings audit.Settings
	Output   io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		auditor:  audit.NewAuditor(opts.Settings),
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc-audit",
		Short: "Procurement document audit tool",
	}

	cmd.AddCommand(commands.NewAuditCmd(cli.auditor, cli.reporter))
	cmd.AddCommand(commands.NewExtractCmd(cli.auditor, cli.reporter))

	return cmd
}
