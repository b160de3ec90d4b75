package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezonia/invoice-qc/internal/config"
	"github.com/rezonia/invoice-qc/internal/logging"
	"github.com/rezonia/invoice-qc/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server for extraction and validation.

The API provides endpoints for:
  - POST /api/v1/extract   - Extract one invoice from raw text
  - POST /api/v1/validate  - Validate a JSON invoice batch
  - POST /api/v1/run       - Extract and validate uploaded PDFs
  - POST /api/v1/info      - Get file information
  - GET  /health           - Health check

Configuration is read from INVOICE_QC_* environment variables; flags
override the environment.

Examples:
  # Start server on default port
  invoice-qc serve

  # Start on custom port
  invoice-qc serve --address :9090

  # Start in debug mode
  invoice-qc serve --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 0, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 0, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if serverAddr != "" {
		cfg.Address = serverAddr
	}
	if serverDebug {
		cfg.Debug = true
	}
	if readTimeout > 0 {
		cfg.ReadTimeout = readTimeout
	}
	if writeTimeout > 0 {
		cfg.WriteTimeout = writeTimeout
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(logging.Config{Env: cfg.Env, Level: cfg.LogLevel})
	srv := server.NewServer(cfg, logger)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	logger.Info().Str("address", cfg.Address).Msg("starting server")
	return srv.Run()
}
