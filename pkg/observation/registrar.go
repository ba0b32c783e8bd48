package observation

import (
	"github.com/OpenSwiftUIProject/OpenObservation/pkg/locking"
	"github.com/OpenSwiftUIProject/OpenObservation/pkg/logging"
)

// Registrar tracks observer callbacks and serializes registration,
// cancellation, and invalidation snapshots behind a single lock.
type Registrar struct {
	mu locking.Mutex

	// nextID and observers are guarded by mu.
	nextID    uint64
	observers map[uint64]func()
}

// NewRegistrar creates an empty registrar with an initialized lock.
func NewRegistrar() *Registrar {
	r := &Registrar{
		observers: make(map[uint64]func()),
	}
	r.mu.Init()
	return r
}

// Register adds an observer callback and returns the ID used to cancel it.
func (r *Registrar) Register(fn func()) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	id := r.nextID
	r.observers[id] = fn
	logging.Debug("observer registered", "observer_id", id, "observers", len(r.observers))
	return id
}

// Cancel removes a previously registered observer. It reports whether the
// ID was still registered.
func (r *Registrar) Cancel(id uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.observers[id]; !ok {
		return false
	}
	delete(r.observers, id)
	logging.Debug("observer cancelled", "observer_id", id, "observers", len(r.observers))
	return true
}

// Count returns the number of currently registered observers.
func (r *Registrar) Count() int {
	var n int
	r.mu.WithLock(func() {
		n = len(r.observers)
	})
	return n
}

// Invalidate calls every observer registered at the moment of the call.
// The snapshot is taken under the lock; the callbacks run outside it, so
// an observer may re-register or cancel without deadlocking.
func (r *Registrar) Invalidate() {
	r.mu.Lock()
	snapshot := make([]func(), 0, len(r.observers))
	for _, fn := range r.observers {
		snapshot = append(snapshot, fn)
	}
	r.mu.Unlock()

	for _, fn := range snapshot {
		fn()
	}
}
