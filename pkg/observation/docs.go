// Package observation wires the synchronization primitives to the
// access-tracking layer that consumes them.
//
// It owns the single fixed slot identity under which each goroutine sees
// its currently active [Transaction] ([Current], [SetCurrent],
// [WithTransaction]), and a [Registrar] that serializes observer
// registration behind one [locking.Mutex].
//
// The Transaction handle is deliberately opaque: what a transaction tracks
// and how observers react to invalidation belongs to the layers above.
// This package only arbitrates who holds the registration lock and which
// transaction a goroutine is inside.
package observation
