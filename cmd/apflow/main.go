package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/apflow/apflow/cmd/apflow/cli"
	"github.com/apflow/apflow/internal/app"
	"github.com/apflow/apflow/internal/contracts"
	contractshttp "github.com/apflow/apflow/internal/contracts/http"
	"github.com/apflow/apflow/internal/observability"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] != "serve" {
		os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
	}

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.TestMode {
		slog.Default().Info("test mode detected, skipping runtime startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := app.NewLogger(cfg)
	slog.SetDefault(logger)

	metrics := observability.NewMetrics()
	metrics.Registerer().MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	contractsHandler := contractshttp.NewHandler(logger, contracts.Default, metrics, cfg.MaxBodyBytes)

	router := app.NewRouter(app.RouterParams{
		Logger:           logger,
		Config:           cfg,
		ContractsHandler: contractsHandler,
		Metrics:          metrics,
	})

	logger.Info("contract catalog loaded", slog.Int("entities", len(contracts.Default.Entities())))
	if err := app.Serve(ctx, app.NewServer(cfg, router), logger, cfg.ShutdownTimeout); err != nil {
		logger.Error("http server", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("http server stopped")
}
