package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwhite7112/edulookup/internal/api"
	"github.com/mwhite7112/edulookup/internal/config"
	"github.com/mwhite7112/edulookup/internal/db"
	"github.com/mwhite7112/edulookup/internal/events"
	"github.com/mwhite7112/edulookup/internal/mcptool"
	"github.com/mwhite7112/edulookup/internal/observability"
	"github.com/mwhite7112/edulookup/internal/service"
)

const shutdownGrace = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and MCP endpoint",
		Long: `Serve the lookup HTTP API (/lookup, /providers, /lookups/...) and the
MCP streamable HTTP endpoint at /mcp.

DB_URL enables the lookup audit log; RABBITMQ_URL enables lookup.completed
events; OTEL_ENABLED exports traces and metrics over OTLP/HTTP.`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	setupLogger(os.Stderr, cfg.SlogLevel(), true)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Tokens first: a missing one must not hide behind a database or
	// broker connection error.
	store, err := cfg.SecretStore(ctx)
	if err != nil {
		return err
	}
	settings, err := resolveProviders(ctx, cfg, store)
	if err != nil {
		return err
	}

	obsCfg, err := observability.NewConfig(cfg.OTelEnabled, cfg.OTelServiceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	shutdownTelemetry, err := observability.Init(ctx, obsCfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTelemetry(context.Background()); err != nil {
			slog.Warn("telemetry shutdown", "error", err)
		}
	}()

	var (
		opts    []service.LookupOption
		history *service.HistoryService
	)

	if cfg.DBURL != "" {
		sqlDB, err := openDB(ctx, cfg.DBURL)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		history = service.NewHistoryService(db.New(sqlDB))
		opts = append(opts, service.WithRecorder(history))
		slog.Info("lookup audit log enabled")
	}

	if cfg.RabbitMQURL != "" {
		publisher, err := events.NewLookupCompletedPublisher(cfg.RabbitMQURL)
		if err != nil {
			return fmt.Errorf("connect to rabbitmq: %w", err)
		}
		defer publisher.Close()
		opts = append(opts, service.WithPublisher(publisher))
		slog.Info("lookup events enabled", "exchange", events.ExchangeName)
	}

	registry := newRegistry(settings, newTransport(cfg), opts...)

	mcpHandler := mcptool.NewHandler(mcptool.NewServer(registry, version))
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(registry, history, mcpHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("edulookup listening", "addr", srv.Addr, "providers", registry.Names())
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
