// Package locking implements the mutual-exclusion primitive of the
// observation synchronization core.
//
// # Overview
//
// [Mutex] is an opaque lock held in caller-owned storage. The caller embeds
// a Mutex value in its own struct (or declares one), calls [Mutex.Init]
// exactly once, and then brackets each critical section with [Mutex.Lock]
// and [Mutex.Unlock]. [Size] reports how many bytes one Mutex occupies so
// callers that manage storage explicitly never hard-code the figure; it is
// a pure function of the build and always at least 1.
//
// The primitive promises mutual exclusion and blocking acquisition, nothing
// more: there is no try-lock, no timeout, no reentrancy, and no fairness
// guarantee beyond what the Go runtime provides. A goroutine blocked in
// Lock stays blocked until the lock becomes available.
//
// # Contract
//
// The following are contract violations. They are not reported as error
// values; in the default build their behavior is undefined (typically a
// deadlock or a runtime fault), matching the primitive's signature:
//
//   - calling Lock or Unlock before Init
//   - calling Init twice on the same Mutex
//   - calling Lock again on a goroutine that already holds the lock
//   - calling Unlock without holding the lock
//
// Building with the obschecks tag swaps in a checked rendition of the same
// API that detects each violation at the call site and panics with a
// diagnostic. The checked build costs one goroutine-identity lookup per
// operation and is meant for tests and soak runs, not production binaries.
//
// # Scoped acquisition
//
// [Mutex.WithLock] runs a function while holding the lock and releases on
// every exit path, including panic, removing the manual pairing discipline
// for callers that do not need early unlock.
package locking
