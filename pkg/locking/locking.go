package locking

import (
	"sync"
	"unsafe"
)

// noCopy triggers go vet's copylocks check on types that embed it.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Mutex is an opaque mutual-exclusion lock living in caller-owned storage.
// The zero value is raw storage: Init must be called exactly once before
// any Lock or Unlock call. A Mutex must not be copied or relocated after
// Init while any goroutine might still be inside Lock or Unlock.
type Mutex struct {
	noCopy noCopy
	mu     sync.Mutex
	state  lockState
}

// Size returns the number of bytes required to hold one Mutex in the
// current build. The result is stable for the lifetime of the process and
// never less than 1, so callers sizing storage from it always allocate a
// valid non-empty region.
func Size() int {
	bytes := int(unsafe.Sizeof(Mutex{}))
	if bytes < 1 {
		return 1
	}
	return bytes
}

// Init constructs the lock in place. It must be called exactly once per
// Mutex, before any Lock or Unlock call. Initializing the same Mutex twice
// is a contract violation.
func (m *Mutex) Init() {
	m.state.init()
}

// Lock blocks the calling goroutine until it acquires exclusive ownership
// of the lock. Lock is not reentrant: a goroutine that already holds the
// lock must not call Lock again.
func (m *Mutex) Lock() {
	m.state.beforeLock()
	m.mu.Lock()
	m.state.afterLock()
}

// Unlock releases the lock. It must be called only by the goroutine that
// currently holds it, after a matching Lock.
func (m *Mutex) Unlock() {
	m.state.beforeUnlock()
	m.mu.Unlock()
}

// WithLock acquires the lock, runs fn, and releases on every exit path,
// including a panic inside fn.
func (m *Mutex) WithLock(fn func()) {
	m.Lock()
	defer m.Unlock()
	fn()
}
