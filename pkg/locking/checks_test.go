//go:build obschecks

package locking

import "testing"

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic, got none", name)
		}
	}()
	fn()
}

func TestDoubleInitPanics(t *testing.T) {
	var mu Mutex
	mu.Init()
	mustPanic(t, "double Init", func() { mu.Init() })
}

func TestLockBeforeInitPanics(t *testing.T) {
	var mu Mutex
	mustPanic(t, "Lock before Init", func() { mu.Lock() })
}

func TestUnlockBeforeInitPanics(t *testing.T) {
	var mu Mutex
	mustPanic(t, "Unlock before Init", func() { mu.Unlock() })
}

func TestReentrantLockPanics(t *testing.T) {
	var mu Mutex
	mu.Init()
	mu.Lock()
	defer mu.Unlock()
	mustPanic(t, "reentrant Lock", func() { mu.Lock() })
}

func TestUnlockWithoutLockPanics(t *testing.T) {
	var mu Mutex
	mu.Init()
	mustPanic(t, "Unlock without Lock", func() { mu.Unlock() })
}

func TestUnlockByNonHolderPanics(t *testing.T) {
	var mu Mutex
	mu.Init()
	mu.Lock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		mustPanic(t, "Unlock by non-holder", func() { mu.Unlock() })
	}()
	<-done

	mu.Unlock()
}
