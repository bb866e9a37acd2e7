package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/soopyv/bazscan/internal/api"
	"github.com/soopyv/bazscan/internal/api/handlers"
	"github.com/soopyv/bazscan/internal/scan"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve scan results over HTTP",
	Long: `Starts an HTTP API exposing scan results.

Endpoints:
  GET  /health            - Health check
  GET  /api/scan/latest   - Most recent scan result
  POST /api/scan/run      - Run a scan on demand (query params override defaults)
  GET  /api/scan/methods  - List scoring methods

Example:
  go run ./cmd/bazscan serve
  go run ./cmd/bazscan serve --port 8080`,
	RunE: runServe,
}

var (
	serveFlags = defaultScanFlags()
	servePort  string
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&servePort, "port", "", "API server port (default: PORT env)")
	serveCmd.Flags().StringVarP(&serveFlags.method, "method", "m", serveFlags.method, "default profit calculation method")
	serveCmd.Flags().Int64VarP(&serveFlags.minVolume, "min-volume", "v", serveFlags.minVolume, "default minimum combined volume")
	serveCmd.Flags().IntVarP(&serveFlags.topN, "top-n", "n", serveFlags.topN, "default number of top items")
	serveCmd.Flags().Float64VarP(&serveFlags.minPrice, "min-price", "p", serveFlags.minPrice, "default minimum buy price")
	serveCmd.Flags().Float64Var(&serveFlags.maxPrice, "max-price", serveFlags.maxPrice, "default maximum buy price (0 = unbounded)")
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	if servePort != "" {
		a.cfg.Serve.Port = servePort
	}

	method, criteria, presetHash, err := resolveScanConfig(serveFlags, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	scanHandler := handlers.NewScanHandler(a.runner, scan.Options{
		Method:     method,
		Criteria:   criteria,
		PresetHash: presetHash,
	}, a.log)

	router := api.NewRouter(scanHandler, a.log)
	server := api.New(a.cfg, a.log, router)

	go func() {
		if err := server.Start(); err != nil {
			a.log.WithError(err).Fatal("Failed to start server")
		}
	}()

	fmt.Printf("Server running on http://localhost:%s\n", a.cfg.Serve.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}
