package main

import (
	"fmt"
	"os"

	"github.com/fisc-tools/doc-audit/pkg/runtime/terminal"
	"github.com/fisc-tools/doc-audit/pkg/services/audit"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Settings: audit.DefaultSettings(),
		Output:   os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
