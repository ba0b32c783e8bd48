package observation

import (
	"testing"
)

func TestCurrentDefaultsToNil(t *testing.T) {
	observed := make(chan *Transaction)
	go func() { observed <- Current() }()
	if got := <-observed; got != nil {
		t.Errorf("fresh goroutine Current() = %v, want nil", got)
	}
}

func TestSetCurrentRoundTrip(t *testing.T) {
	defer SetCurrent(nil)

	tx := NewTransaction()
	SetCurrent(tx)
	if got := Current(); got != tx {
		t.Errorf("Current() = %v, want %v", got, tx)
	}

	SetCurrent(nil)
	if got := Current(); got != nil {
		t.Errorf("Current() after SetCurrent(nil) = %v, want nil", got)
	}
}

func TestSetCurrentOverwrites(t *testing.T) {
	defer SetCurrent(nil)

	first := NewTransaction()
	second := NewTransaction()
	SetCurrent(first)
	SetCurrent(second)
	if got := Current(); got != second {
		t.Errorf("Current() = %v, want %v", got, second)
	}
}

func TestSetCurrentIsolation(t *testing.T) {
	defer SetCurrent(nil)

	SetCurrent(NewTransaction())

	observed := make(chan *Transaction)
	go func() { observed <- Current() }()
	if got := <-observed; got != nil {
		t.Errorf("other goroutine observed %v, want nil", got)
	}
}

func TestWithTransactionInstallsAndRestores(t *testing.T) {
	if Current() != nil {
		t.Fatal("test goroutine already has a transaction installed")
	}

	var inner *Transaction
	WithTransaction(func(tx *Transaction) {
		inner = tx
		if got := Current(); got != tx {
			t.Errorf("Current() inside WithTransaction = %v, want %v", got, tx)
		}
	})

	if inner == nil {
		t.Fatal("WithTransaction did not pass a transaction to fn")
	}
	if got := Current(); got != nil {
		t.Errorf("Current() after WithTransaction = %v, want nil", got)
	}
}

func TestWithTransactionNests(t *testing.T) {
	WithTransaction(func(outer *Transaction) {
		WithTransaction(func(inner *Transaction) {
			if inner == outer {
				t.Error("nested WithTransaction reused the outer transaction")
			}
			if got := Current(); got != inner {
				t.Errorf("Current() in nested scope = %v, want %v", got, inner)
			}
		})
		if got := Current(); got != outer {
			t.Errorf("outer transaction not restored: got %v, want %v", got, outer)
		}
	})
}

func TestWithTransactionRestoresOnPanic(t *testing.T) {
	defer SetCurrent(nil)

	outer := NewTransaction()
	SetCurrent(outer)

	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate out of WithTransaction")
			}
		}()
		WithTransaction(func(*Transaction) { panic("boom") })
	}()

	if got := Current(); got != outer {
		t.Errorf("Current() after panic = %v, want %v", got, outer)
	}
}

func TestTransactionIDsUnique(t *testing.T) {
	const n = 100
	seen := make(map[uint64]bool, n)
	for i := 0; i < n; i++ {
		tx := NewTransaction()
		if seen[tx.ID()] {
			t.Fatalf("duplicate transaction ID %d", tx.ID())
		}
		seen[tx.ID()] = true
	}
}
