//go:build obschecks

package locking

import (
	"sync/atomic"

	"github.com/OpenSwiftUIProject/OpenObservation/pkg/threadlocal"
)

// lockState tracks initialization and the holding goroutine in the checked
// build. Goroutine IDs start at 1, so 0 means "not held".
type lockState struct {
	inited atomic.Bool
	holder atomic.Uint64
}

func (s *lockState) init() {
	if !s.inited.CompareAndSwap(false, true) {
		panic("locking: Init called twice on the same Mutex")
	}
}

func (s *lockState) beforeLock() {
	if !s.inited.Load() {
		panic("locking: Lock on an uninitialized Mutex")
	}
	if gid := threadlocal.GID(); s.holder.Load() == gid {
		panic("locking: reentrant Lock by the holding goroutine")
	}
}

func (s *lockState) afterLock() {
	s.holder.Store(threadlocal.GID())
}

func (s *lockState) beforeUnlock() {
	if !s.inited.Load() {
		panic("locking: Unlock on an uninitialized Mutex")
	}
	if !s.holder.CompareAndSwap(threadlocal.GID(), 0) {
		panic("locking: Unlock of a Mutex not held by this goroutine")
	}
}
