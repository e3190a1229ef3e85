// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package runner executes the external network-speed-measurement
// utility as a bounded background operation and captures its console
// output for parsing.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"time"

	"github.com/NVIDIA/speedlog/pkg/errors"
)

// Default invocation of the Ookla Speedtest CLI. The license flags keep
// the run non-interactive on first use.
var (
	defaultBinary = "speedtest"
	defaultArgs   = []string{"--accept-license", "--accept-gdpr"}
)

// DefaultTimeout bounds a single measurement when no explicit timeout
// is configured.
const DefaultTimeout = 100 * time.Second

// Status is the lifecycle state of the most recent run.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusTimedOut  Status = "timed_out"
)

// Option configures a Runner.
type Option func(*Runner)

// WithTimeout sets the upper bound on a single measurement run.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) {
		r.timeout = d
	}
}

// WithCommand overrides the measurement command and its arguments.
// Used by tests and by deployments that pin an absolute utility path.
func WithCommand(name string, args ...string) Option {
	return func(r *Runner) {
		r.binary = name
		r.args = args
	}
}

// Runner invokes the measurement utility. At most one measurement
// executes at a time; Runner is not safe for concurrent use and the
// scheduler never shares it across goroutines.
type Runner struct {
	binary  string
	path    string
	args    []string
	timeout time.Duration
	status  Status
}

// New resolves the measurement utility on the execution path and
// returns a Runner for it. A missing or unspawnable utility is a fatal
// condition: the monitoring loop must not start without one.
func New(opts ...Option) (*Runner, error) {
	r := &Runner{
		binary:  defaultBinary,
		args:    defaultArgs,
		timeout: DefaultTimeout,
		status:  StatusIdle,
	}
	for _, opt := range opts {
		opt(r)
	}

	path, err := exec.LookPath(r.binary)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound,
			fmt.Sprintf("measurement utility %q not found in PATH", r.binary), err)
	}
	r.path = path

	slog.Debug("resolved measurement utility", "binary", r.binary, "path", path)
	return r, nil
}

// Status returns the lifecycle state of the most recent run.
func (r *Runner) Status() Status {
	return r.status
}

// Timeout returns the configured per-run bound.
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// Run executes one measurement and returns the captured console output
// (stdout and stderr combined). The run is bounded by the configured
// timeout; on expiry the child process is terminated and a TIMEOUT
// error is returned so the caller can skip the tick without blocking.
//
// The capture buffer is created fresh for every run, so stale output
// from a previous tick can never be misattributed to the current one.
func (r *Runner) Run(ctx context.Context) (string, error) {
	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var buf bytes.Buffer
	cmd := exec.CommandContext(runCtx, r.path, r.args...)
	cmd.Stdout = &buf
	cmd.Stderr = &buf

	r.status = StatusRunning
	start := time.Now()

	if err := cmd.Start(); err != nil {
		r.status = StatusIdle
		return "", errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("failed to launch %s", r.binary), err)
	}

	err := cmd.Wait()
	elapsed := time.Since(start)

	// Shutdown, not a measurement failure.
	if ctx.Err() != nil {
		r.status = StatusIdle
		return "", ctx.Err()
	}

	if runCtx.Err() == context.DeadlineExceeded {
		r.status = StatusTimedOut
		return "", errors.WrapWithContext(errors.ErrCodeTimeout,
			"measurement run exceeded its bound", runCtx.Err(),
			map[string]any{
				"command": r.binary,
				"timeout": r.timeout.String(),
			})
	}
	if err != nil {
		r.status = StatusIdle
		return "", errors.Wrap(errors.ErrCodeInternal,
			fmt.Sprintf("%s exited with error", r.binary), err)
	}

	r.status = StatusCompleted
	slog.Debug("measurement completed",
		"command", r.binary,
		"duration_ms", elapsed.Milliseconds(),
		"output_bytes", buf.Len())

	return buf.String(), nil
}
