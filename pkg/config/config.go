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

// Package config holds the monitoring loop configuration: cadence,
// measurement bound, log destination. Values come from an optional
// YAML file overlaid by command-line flags; validation happens once,
// before the loop starts.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/speedlog/pkg/errors"
)

// Defaults for the invocation surface.
const (
	DefaultIntervalMinutes = 15
	DefaultTimeoutSeconds  = 100
	DefaultLogDir          = "."
)

// Config is the monitoring loop configuration.
type Config struct {
	// IntervalMinutes is the wall-clock cadence between measurements.
	IntervalMinutes int `yaml:"interval"`
	// TimeoutSeconds bounds a single measurement run.
	TimeoutSeconds int `yaml:"timeout"`
	// LogDir is the directory receiving the CSV log file.
	LogDir string `yaml:"log_dir"`
	// MetricsAddr, when set, enables the Prometheus listener (e.g. ":9090").
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		IntervalMinutes: DefaultIntervalMinutes,
		TimeoutSeconds:  DefaultTimeoutSeconds,
		LogDir:          DefaultLogDir,
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeConfig,
			fmt.Sprintf("failed to read config file %s", path), err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeConfig,
			fmt.Sprintf("failed to parse config file %s", path), err)
	}

	return cfg, nil
}

// Validate reports configuration errors before the loop starts.
// Non-positive interval or timeout and an unusable log directory are
// all fatal: the loop never starts on a bad configuration.
func (c Config) Validate() error {
	if c.IntervalMinutes < 1 {
		return errors.New(errors.ErrCodeConfig,
			fmt.Sprintf("interval must be a positive number of minutes, got %d", c.IntervalMinutes))
	}
	if c.TimeoutSeconds < 1 {
		return errors.New(errors.ErrCodeConfig,
			fmt.Sprintf("timeout must be a positive number of seconds, got %d", c.TimeoutSeconds))
	}

	if err := os.MkdirAll(c.LogDir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeConfig,
			fmt.Sprintf("log directory %s is not usable", c.LogDir), err)
	}

	return nil
}
