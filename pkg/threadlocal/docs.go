// Package threadlocal provides per-goroutine storage for the observation
// synchronization core.
//
// A [Slot] is one logical storage cell per goroutine under a single slot
// identity. Goroutines are the unit of concurrent execution in Go, so they
// take the role the underlying platform's threads play elsewhere: a value
// stored by one goroutine is never observable from another, structurally,
// because each goroutine addresses its own cell.
//
// The slot is a raw handle exchange. It never takes ownership of a stored
// value: lifetime and validity of whatever a cell refers to are entirely
// the caller's responsibility. Go has no goroutine-exit hook, so a cell is
// retained until the same goroutine calls [Slot.Clear]; the higher layer
// that installs a value is expected to clear it when the goroutine is done
// with the slot.
package threadlocal
