// Package logging provides structured logging for Odin TV.
//
// This package wraps a zap logger with convenience functions for the logging
// patterns used across the application: focus transitions, remote-control
// sessions and calls to external services.
//
// # Silent by Default
//
// Nothing is logged unless a level is configured, either through
// Initialize/InitializeWithOptions or the ODINTV_LOG_LEVEL environment
// variable. The interactive dashboard owns the terminal, so when it runs the
// logger is pointed at a file:
//
//	if err := logging.InitializeWithOptions(logging.Options{
//	    Level:      "debug",
//	    OutputPath: "/home/me/.config/odintv/odintv.log",
//	}); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Log Levels
//
//   - Debug: every focus transition, outbound HTTP requests
//   - Info: remote connections and keys, catalog reloads
//   - Warn: degraded but non-fatal states (trending fetch failed)
//   - Error: failures that stop a component (remote server bind)
//
// # Structured Logging
//
//	logging.Info("Catalog reloaded",
//	    zap.String("path", path),
//	    zap.Int("items", cat.Len()),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. Initialize must be called
// before other goroutines start logging.
package logging
