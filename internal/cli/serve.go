package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/emiliopalmerini/daybook/internal/adapters/otel"
	"github.com/emiliopalmerini/daybook/internal/adapters/turso"
	"github.com/emiliopalmerini/daybook/internal/domain"
	"github.com/emiliopalmerini/daybook/internal/ports"
	"github.com/emiliopalmerini/daybook/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	Long: `Start the local API server.

Examples:
  daybook serve              # Listen on DAYBOOK_ADDR (default :8080)
  daybook serve --addr :3000 # Listen on port 3000`,
	RunE: runServe,
}

var serveAddr string

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "Listen address (overrides DAYBOOK_ADDR)")
}

func runServe(cmd *cobra.Command, args []string) error {
	db, cfg, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	addr := cfg.Addr
	if serveAddr != "" {
		addr = serveAddr
	}

	logger := domain.StdLogger{}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nShutting down...")
		cancel()
	}()

	var metrics ports.MetricsExporter
	otelCfg := otel.LoadConfig()
	if otelCfg.Enabled {
		exporter, err := otel.NewExporter(ctx, otelCfg)
		if err != nil {
			logger.Warn("otel exporter unavailable, metrics disabled: %v", err)
			metrics = otel.NewNoOpExporter()
		} else {
			metrics = exporter
		}
	} else {
		metrics = otel.NewNoOpExporter()
	}
	defer func() {
		if err := metrics.Close(context.Background()); err != nil {
			logger.Warn("closing metrics exporter: %v", err)
		}
	}()

	repos := turso.NewRepositories(db)
	server := web.NewServer(addr, logger, metrics,
		repos.Entries, repos.Cycles, repos.Predictions, repos.Health, repos.Categories)
	return server.Start(ctx)
}
