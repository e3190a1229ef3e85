/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/speedlog/pkg/config"
)

const (
	name           = "speedlog"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// rootCmd builds the command surface for the monitoring loop.
func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               version,
		EnableShellCompletion: true,
		Usage:                 "Unattended network link-quality monitor",
		Description: fmt.Sprintf(`speedlog - unattended network link-quality monitor

Version: %s
Commit:  %s
Built:   %s

Periodically invokes the Ookla Speedtest CLI, parses its console report,
and appends each measurement (latency, jitter, throughput, packet loss)
as one row to a CSV log file named after the start time of the run.

The loop runs until interrupted. A measurement that exceeds the timeout
is skipped with a warning; the loop waits for the next due time.

# Examples

Measure every 15 minutes (default), logging to the current directory:
  speedlog

Measure every 5 minutes with a 60-second bound, logging to /var/log/speedlog:
  speedlog --interval 5 --timeout 60 --log-dir /var/log/speedlog

Load settings from a config file and expose Prometheus metrics:
  speedlog --config /etc/speedlog.yaml --metrics-addr :9090`,
			version, commit, date),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "interval",
				Aliases: []string{"i"},
				Usage:   "Minutes between measurements (positive integer)",
				Sources: cli.EnvVars("SPEEDLOG_INTERVAL"),
				Value:   config.DefaultIntervalMinutes,
			},
			&cli.IntFlag{
				Name:    "timeout",
				Aliases: []string{"t"},
				Usage:   "Seconds to wait for a single measurement (positive integer)",
				Sources: cli.EnvVars("SPEEDLOG_TIMEOUT"),
				Value:   config.DefaultTimeoutSeconds,
			},
			&cli.StringFlag{
				Name:    "log-dir",
				Aliases: []string{"d"},
				Usage:   "Directory receiving the CSV log file",
				Sources: cli.EnvVars("SPEEDLOG_LOG_DIR"),
				Value:   config.DefaultLogDir,
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file (flags override file values)",
				Sources: cli.EnvVars("SPEEDLOG_CONFIG"),
			},
			&cli.StringFlag{
				Name:    "metrics-addr",
				Usage:   "Listen address for Prometheus metrics (disabled when empty)",
				Sources: cli.EnvVars("SPEEDLOG_METRICS_ADDR"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
				Value: "info",
			},
		},
		Action: run,
	}
}

// Execute runs the root command with signal-driven cancellation.
// This is called by main.main().
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle SIGINT/SIGTERM for graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := rootCmd().Run(ctx, os.Args); err != nil && !stderrors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
