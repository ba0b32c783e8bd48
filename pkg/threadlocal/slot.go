package threadlocal

import "sync"

// shardCount must be a power of two so a goroutine ID maps to a shard with
// a mask instead of a modulo.
const shardCount = 64

type shard[T any] struct {
	mu    sync.Mutex
	cells map[uint64]T
}

// Slot holds one value of type T per goroutine. The zero Slot is ready to
// use; a goroutine that has never called Set observes the zero value of T.
//
// Cells are spread over a fixed set of mutex-guarded shards keyed by
// goroutine ID, so slot access on different goroutines rarely contends and
// isolation between goroutines is structural rather than cooperative.
type Slot[T any] struct {
	shards [shardCount]shard[T]
}

func (s *Slot[T]) shardFor(gid uint64) *shard[T] {
	return &s.shards[gid&(shardCount-1)]
}

// Get returns the value most recently stored by the calling goroutine via
// Set, or the zero value of T if this goroutine has never called Set (or
// has called Clear since).
func (s *Slot[T]) Get() T {
	gid := GID()
	sh := s.shardFor(gid)
	sh.mu.Lock()
	v := sh.cells[gid]
	sh.mu.Unlock()
	return v
}

// Set stores v for the calling goroutine, overwriting any previous value.
// The slot does not inspect v and takes no ownership of anything v refers
// to. The value is visible only to subsequent Get calls on this goroutine.
func (s *Slot[T]) Set(v T) {
	gid := GID()
	sh := s.shardFor(gid)
	sh.mu.Lock()
	if sh.cells == nil {
		sh.cells = make(map[uint64]T)
	}
	sh.cells[gid] = v
	sh.mu.Unlock()
}

// Clear removes the calling goroutine's cell, releasing the slot's last
// reference to the stored value. Subsequent Get calls on this goroutine
// observe the zero value again. Clearing a cell that was never set is a
// no-op.
func (s *Slot[T]) Clear() {
	gid := GID()
	sh := s.shardFor(gid)
	sh.mu.Lock()
	delete(sh.cells, gid)
	sh.mu.Unlock()
}

// Len reports how many goroutines currently hold a value in the slot.
func (s *Slot[T]) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		n += len(sh.cells)
		sh.mu.Unlock()
	}
	return n
}
