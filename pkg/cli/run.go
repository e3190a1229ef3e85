/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coreos/go-systemd/v22/daemon"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/NVIDIA/speedlog/pkg/config"
	"github.com/NVIDIA/speedlog/pkg/csvlog"
	"github.com/NVIDIA/speedlog/pkg/logging"
	"github.com/NVIDIA/speedlog/pkg/runner"
	"github.com/NVIDIA/speedlog/pkg/scheduler"
)

// run wires configuration, runner, log writer, and scheduler together
// and blocks until interruption or a fatal error. Configuration errors
// and a missing measurement utility surface here, before the loop starts.
func run(ctx context.Context, cmd *cli.Command) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	r, err := runner.New(
		runner.WithTimeout(time.Duration(cfg.TimeoutSeconds) * time.Second),
	)
	if err != nil {
		return err
	}

	start := time.Now()
	w, err := csvlog.New(cfg.LogDir, start)
	if err != nil {
		return err
	}
	defer w.Close()
	slog.Info("logging measurements",
		"file", w.Path(),
		"interval_min", cfg.IntervalMinutes,
		"timeout_sec", cfg.TimeoutSeconds)

	loop := scheduler.New(r, w, cfg.IntervalMinutes)

	g, gctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		g.Go(func() error {
			return serveMetrics(gctx, cfg.MetricsAddr)
		})
	}

	g.Go(func() error {
		notifyReady()
		return loop.Run(gctx)
	})

	return g.Wait()
}

// resolveConfig overlays command-line flags on the optional config
// file: explicit flags win, file values fill the rest, defaults cover
// everything else.
func resolveConfig(cmd *cli.Command) (config.Config, error) {
	cfg := config.Default()

	if path := cmd.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if cmd.IsSet("interval") {
		cfg.IntervalMinutes = int(cmd.Int("interval"))
	}
	if cmd.IsSet("timeout") {
		cfg.TimeoutSeconds = int(cmd.Int("timeout"))
	}
	if cmd.IsSet("log-dir") {
		cfg.LogDir = cmd.String("log-dir")
	}
	if cmd.IsSet("metrics-addr") {
		cfg.MetricsAddr = cmd.String("metrics-addr")
	}

	return cfg, nil
}

// notifyReady signals readiness to systemd when running as a unit.
// Outside systemd this is a no-op.
func notifyReady() {
	sent, err := daemon.SdNotify(false, daemon.SdNotifyReady)
	if err != nil {
		slog.Debug("sd_notify failed", "error", err)
		return
	}
	if sent {
		slog.Debug("notified systemd readiness")
	}
}

// serveMetrics exposes the Prometheus registry until ctx is canceled.
func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	slog.Info("metrics listener started", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}
