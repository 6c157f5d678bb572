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

	"github.com/flowpbx/ivrdemo/internal/api"
	"github.com/flowpbx/ivrdemo/internal/config"
	"github.com/flowpbx/ivrdemo/internal/intent"
	"github.com/flowpbx/ivrdemo/internal/metrics"
	"github.com/flowpbx/ivrdemo/internal/responder"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	startTime := time.Now()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Configure structured logging.
	logger := slog.New(cfg.SlogHandler(os.Stdout))
	slog.SetDefault(logger)

	slog.Info("starting ivrdemo",
		"http_port", cfg.HTTPPort,
		"responses_file", cfg.ResponsesFile,
		"rate_limit", cfg.RateLimit,
	)

	responses, err := responder.Load(cfg.ResponsesFile)
	if err != nil {
		slog.Error("failed to load response table", "error", err)
		os.Exit(1)
	}
	slog.Info("response table loaded",
		"digits", responses.Digits(),
		"intents", len(intent.Entries()),
	)

	// Metrics registry with the IVR collector plus runtime metrics.
	tally := metrics.NewTally()
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		metrics.NewCollector(tally, tally, registryAdapter{}, startTime),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metricsHandler := promhttp.HandlerFor(reg, promhttp.HandlerOpts{})

	handler := api.NewServer(cfg, responses, tally, metricsHandler, logger)
	defer handler.Close()

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// The listener and the shutdown watcher share a group so that a listen
	// failure also unblocks shutdown.
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("http server listening", "addr", srv.Addr, "tls", cfg.TLSEnabled())
		var err error
		if cfg.TLSEnabled() {
			err = srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gCtx.Done()
		slog.Info("shutting down http server")

		// Graceful shutdown with timeout.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		slog.Error("ivrdemo exited with error", "error", err)
		handler.Close()
		os.Exit(1)
	}

	slog.Info("ivrdemo stopped")
}

// registryAdapter reports the intent registry size to the metrics collector.
type registryAdapter struct{}

func (registryAdapter) IntentCount() int {
	return len(intent.Entries())
}
