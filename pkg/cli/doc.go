// Package cli implements the command-line interface for the speedlog tool.
//
// # Overview
//
// speedlog monitors network link quality unattended: it periodically runs the
// Ookla Speedtest CLI, parses the console report into a fixed 20-column record,
// and appends one row per measurement to a CSV file named after the start time
// of the run (Ookla_<M>.<D>.<YYYY>_<HHMM>.csv).
//
// # Usage
//
//	speedlog [--interval MIN] [--timeout SEC] [--log-dir DIR]
//	         [--config FILE] [--metrics-addr ADDR] [--log-level LEVEL]
//
// The loop starts with an immediate first measurement and then fires at
// interval-minute boundaries regardless of how long individual measurements
// take. Interrupt with SIGINT/SIGTERM; there is no other terminal state.
//
// # Global Flags
//
//	--interval, -i       Minutes between measurements (default: 15)
//	--timeout, -t        Seconds to wait for one measurement (default: 100)
//	--log-dir, -d        Directory for the CSV log file (default: ".")
//	--config, -c         Optional YAML config file; flags override it
//	--metrics-addr       Prometheus listen address (default: disabled)
//	--log-level          debug, info, warn, error (default: info)
//
// Flags can also be set through SPEEDLOG_* environment variables.
package cli
