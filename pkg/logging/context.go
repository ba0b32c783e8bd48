package logging

import (
	"log/slog"
)

// WithTx creates a logger with transaction context.
// Use this to automatically include the transaction ID in all logs.
//
// Example:
//
//	log := logging.WithTx(tx.ID())
//	log.Debug("transaction installed")
func WithTx(txID uint64) *slog.Logger {
	return GetLogger().With("tx_id", txID)
}

// WithGoroutine creates a logger with goroutine context.
// Useful for slot and lock diagnostics.
//
// Example:
//
//	log := logging.WithGoroutine(threadlocal.GID())
//	log.Debug("slot cleared")
func WithGoroutine(gid uint64) *slog.Logger {
	return GetLogger().With("gid", gid)
}

// WithComponent creates a logger with component/subsystem context.
//
// Example:
//
//	log := logging.WithComponent("registrar")
//	log.Info("component initialized")
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithError creates a logger with error context.
// Use this when logging errors to include the error in structured format.
//
// Example:
//
//	log := logging.WithError(err)
//	log.Error("stage failed", "stage", name)
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
