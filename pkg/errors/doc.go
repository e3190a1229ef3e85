// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeTimeout,
//	    "measurement run exceeded its bound",
//	    ctx.Err(),
//	    map[string]interface{}{
//	        "command": "speedtest",
//	        "timeout": timeout.String(),
//	    },
//	)
package errors
