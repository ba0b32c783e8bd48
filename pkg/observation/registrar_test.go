package observation

import (
	"sync"
	"testing"
)

func TestNewRegistrar(t *testing.T) {
	r := NewRegistrar()
	if r == nil {
		t.Fatal("NewRegistrar returned nil")
	}
	if got := r.Count(); got != 0 {
		t.Errorf("new registrar Count() = %d, want 0", got)
	}
}

func TestRegisterCancel(t *testing.T) {
	r := NewRegistrar()

	id := r.Register(func() {})
	if got := r.Count(); got != 1 {
		t.Fatalf("Count() after Register = %d, want 1", got)
	}

	if !r.Cancel(id) {
		t.Error("Cancel returned false for a live registration")
	}
	if got := r.Count(); got != 0 {
		t.Errorf("Count() after Cancel = %d, want 0", got)
	}

	if r.Cancel(id) {
		t.Error("Cancel returned true for an already-cancelled ID")
	}
}

func TestRegisterIDsDistinct(t *testing.T) {
	r := NewRegistrar()
	first := r.Register(func() {})
	second := r.Register(func() {})
	if first == second {
		t.Errorf("two registrations share ID %d", first)
	}
}

func TestInvalidateCallsEachObserverOnce(t *testing.T) {
	r := NewRegistrar()

	var mu sync.Mutex
	calls := make(map[int]int)
	for i := 0; i < 3; i++ {
		i := i
		r.Register(func() {
			mu.Lock()
			calls[i]++
			mu.Unlock()
		})
	}

	r.Invalidate()

	if len(calls) != 3 {
		t.Fatalf("Invalidate reached %d observers, want 3", len(calls))
	}
	for i, n := range calls {
		if n != 1 {
			t.Errorf("observer %d called %d times, want 1", i, n)
		}
	}
}

func TestInvalidateAllowsReregistration(t *testing.T) {
	r := NewRegistrar()

	var nested uint64
	r.Register(func() {
		nested = r.Register(func() {})
	})

	r.Invalidate()

	if nested == 0 {
		t.Fatal("observer could not re-register during Invalidate")
	}
	if got := r.Count(); got != 2 {
		t.Errorf("Count() after re-registration = %d, want 2", got)
	}
}

func TestConcurrentRegistration(t *testing.T) {
	const (
		workers   = 16
		perWorker = 200
	)

	r := NewRegistrar()
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				r.Register(func() {})
			}
		}()
	}
	wg.Wait()

	if got := r.Count(); got != workers*perWorker {
		t.Errorf("Count() = %d, want %d", got, workers*perWorker)
	}
}
