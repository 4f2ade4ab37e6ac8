package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/fisc-tools/doc-audit/pkg/server"
	"github.com/fisc-tools/doc-audit/pkg/services/audit"
	"github.com/fisc-tools/doc-audit/pkg/services/config"
	"github.com/fisc-tools/doc-audit/pkg/store/sqlite"
	reportstore "github.com/fisc-tools/doc-audit/pkg/store/sqlite/report"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the web server for the document audit service",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "doc-audit.yaml",
		"Path to the service configuration file")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := sqlite.NewDB(sqlite.Settings{
		DbPath: cfg.Storage.DbPath,
	})
	if err != nil {
		return fmt.Errorf("failed to open report database: %w", err)
	}

	reports, err := reportstore.NewStore(db)
	if err != nil {
		return fmt.Errorf("failed to create report store: %w", err)
	}

	settings := audit.DefaultSettings()
	if cfg.Tolerances.Money > 0 {
		settings.MoneyTolerance = cfg.Tolerances.Money
	}
	if cfg.Tolerances.Quantity > 0 {
		settings.QuantityTolerance = cfg.Tolerances.Quantity
	}
	auditor := audit.NewAuditor(settings)

	host := cfg.Server.Host
	port := cfg.Server.Port
	if envHost := os.Getenv("SERVER_HOST"); envHost != "" {
		host = envHost
	}
	if envPort := os.Getenv("SERVER_PORT"); envPort != "" {
		port = envPort
	}

	addr := net.JoinHostPort(host, port)
	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)

	webAPI := server.NewWebAPI(logger, server.Config{
		Addr: addr,
		Dependencies: server.Dependencies{
			Auditor: auditor,
			Reports: reports,
		},
	})

	logger.Info().Msgf("starting server on %s", addr)
	return webAPI.Start()
}
