// Package logging provides the process-wide structured logger for the
// observation synchronization core.
//
// The package wraps [log/slog] and exposes a single global logger that is
// initialized once and then retrieved via GetLogger. Subsystems obtain a
// logger through this package rather than constructing their own
// slog.Logger values, so log level and destination are controlled from one
// place.
//
// # Initialisation
//
// Call Init once at program startup, before any goroutines that might call
// GetLogger are spawned:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug}); err != nil {
//	    log.Fatal(err)
//	}
//
// If GetLogger is called before Init, a default logger is created lazily
// (via sync.Once) so that packages that log during init are safe.
//
// # Context helpers
//
// Helpers return child loggers pre-populated with structured fields:
//
//	log := logging.WithTx(tx.ID())    // adds tx_id field
//	log := logging.WithGoroutine(gid) // adds gid field
package logging
