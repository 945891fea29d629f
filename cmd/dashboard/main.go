package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/worldcup-dashboard/internal/adapter/countrycode"
	httpadapter "github.com/couchcryptid/worldcup-dashboard/internal/adapter/http"
	"github.com/couchcryptid/worldcup-dashboard/internal/adapter/wikipedia"
	"github.com/couchcryptid/worldcup-dashboard/internal/config"
	"github.com/couchcryptid/worldcup-dashboard/internal/dashboard"
	"github.com/couchcryptid/worldcup-dashboard/internal/dataset"
	"github.com/couchcryptid/worldcup-dashboard/internal/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The dataset is built once, before the server accepts traffic.
	source := wikipedia.NewClient(cfg.SourceURL, cfg.SourceUserAgent, cfg.SourceTimeout, metrics, logger)
	builder := dataset.New(source, countrycode.NewResolver(), source.URL(), logger, metrics)

	ds, err := builder.Build(ctx)
	if err != nil {
		logger.Error("failed to build dataset", "error", err, "url", source.URL())
		os.Exit(1)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, builder, dashboard.NewHandler(ds, logger, metrics), logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
}
