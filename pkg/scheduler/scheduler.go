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

// Package scheduler drives measurement ticks at a fixed wall-clock
// cadence for the lifetime of the process.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/NVIDIA/speedlog/pkg/errors"
	"github.com/NVIDIA/speedlog/pkg/metrics"
	"github.com/NVIDIA/speedlog/pkg/report"
)

// Runner executes one bounded measurement and returns its captured
// console output.
type Runner interface {
	Run(ctx context.Context) (string, error)
}

// Appender persists one fully populated record.
type Appender interface {
	Append(rec *report.Record) error
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock overrides the wall-clock source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) {
		l.now = now
	}
}

// WithPollGranularity overrides the idle sleep between due-time checks.
// Used by tests; the production granularity is one second.
func WithPollGranularity(d time.Duration) Option {
	return func(l *Loop) {
		l.poll = d
	}
}

// Loop owns the schedule state: the next due time advances only here,
// and the tick pipeline (run, parse, append) executes synchronously
// within the loop so measurements never overlap.
type Loop struct {
	runner   Runner
	log      Appender
	interval time.Duration
	poll     time.Duration
	now      func() time.Time
}

// New creates a loop firing every interval minutes.
func New(r Runner, log Appender, intervalMinutes int, opts ...Option) *Loop {
	l := &Loop{
		runner:   r,
		log:      log,
		interval: time.Duration(intervalMinutes) * time.Minute,
		poll:     time.Second,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// due compares times at minute resolution: a tick fires when the
// current hour and minute both match the next due time.
func due(now, next time.Time) bool {
	return now.Hour() == next.Hour() && now.Minute() == next.Minute()
}

// Run drives the loop until ctx is canceled or a fatal error occurs
// (launch failure, log append failure). The first tick fires
// immediately: the initial due time is the start time itself.
//
// The due time advances by the interval before the measurement runs,
// so a long or timed-out run neither re-triggers within the same due
// minute nor accumulates drift.
func (l *Loop) Run(ctx context.Context) error {
	next := l.now()
	slog.Info("monitoring loop started",
		"interval", l.interval.String(),
		"next_due", next.Format("15:04"))

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	for {
		if now := l.now(); due(now, next) {
			next = next.Add(l.interval)
			if err := l.tick(ctx, now); err != nil {
				return err
			}
			slog.Debug("next measurement scheduled", "next_due", next.Format("15:04"))
		}

		select {
		case <-ctx.Done():
			slog.Info("monitoring loop interrupted")
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// tick runs one measurement attempt end to end. Timeouts are
// recoverable: the row is skipped and the loop continues. Launch and
// append failures are returned to stop the loop.
func (l *Loop) tick(ctx context.Context, started time.Time) error {
	runID := uuid.NewString()
	slog.Info("measurement due", "run", runID)

	runStart := time.Now()
	out, err := l.runner.Run(ctx)
	if err != nil {
		if errors.IsCode(err, errors.ErrCodeTimeout) {
			metrics.CountTick(metrics.StatusTimeout)
			slog.Warn("measurement timed out, skipping row",
				"run", runID,
				"error", err)
			return nil
		}
		return err
	}
	metrics.ObserveMeasurement(time.Since(runStart))

	rec := report.Parse(out, started)
	metrics.SetMissingFields(rec.MissingFields())

	if err := l.log.Append(&rec); err != nil {
		return err
	}

	metrics.CountTick(metrics.StatusOK)
	slog.Info("measurement logged",
		"run", runID,
		"missing_fields", rec.MissingFields(),
		"duration_ms", time.Since(runStart).Milliseconds())
	return nil
}
