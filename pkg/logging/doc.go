// Package logging provides structured logging utilities for speedlog components.
//
// # Overview
//
// This package wraps the standard library slog package with defaults and
// conventions for consistent logging across the tool. It supports
// environment-based log level configuration, module/version context injection,
// and automatic source location tracking for debug logs.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Warning messages for potentially problematic situations
//   - ERROR: Error messages for failures requiring attention
//
// # Usage
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("speedlog", version)
//
//	    slog.Info("measurement due", "run", runID)
//	    slog.Warn("measurement timed out", "timeout", timeout)
//	    slog.Error("log append failed", "error", err)
//	}
//
// Setting explicit log level:
//
//	logging.SetDefaultStructuredLoggerWithLevel("speedlog", "v1.0.0", "warn")
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls logging verbosity:
//
//	LOG_LEVEL=debug speedlog --interval 15
//
// If LOG_LEVEL is not set, defaults to INFO level.
//
// # Output Format
//
// All logs are written to stderr in JSON format:
//
//	{
//	    "time": "2026-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "measurement completed",
//	    "module": "speedlog",
//	    "version": "v1.0.0",
//	    "duration_ms": 24125
//	}
//
// Logs go to stderr so the CSV log file and anything written to stdout
// stay clean for machine consumption.
package logging
