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

// Package metrics exposes Prometheus instrumentation for the
// measurement loop. Registration is process-global via promauto; the
// optional HTTP listener is wired up by the CLI layer.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Tick outcome label values.
const (
	StatusOK      = "ok"
	StatusTimeout = "timeout"
)

var (
	measurementDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "speedlog_measurement_duration_seconds",
			Help:    "Time taken by a single external measurement run",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	ticksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "speedlog_ticks_total",
			Help: "Total number of scheduled measurement ticks",
		},
		[]string{"status"}, // ok or timeout
	)

	recordMissingFields = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "speedlog_record_missing_fields",
			Help: "Number of sentinel fields in the last logged record",
		},
	)
)

// ObserveMeasurement records the duration of one completed run.
func ObserveMeasurement(d time.Duration) {
	measurementDuration.Observe(d.Seconds())
}

// CountTick increments the tick counter for the given outcome.
func CountTick(status string) {
	ticksTotal.WithLabelValues(status).Inc()
}

// SetMissingFields reports how many fields of the last record degraded
// to the sentinel.
func SetMissingFields(n int) {
	recordMissingFields.Set(float64(n))
}
