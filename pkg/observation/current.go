package observation

import (
	"github.com/OpenSwiftUIProject/OpenObservation/pkg/threadlocal"
)

// currentTx is the observation-transaction slot: one fixed identity under
// which every goroutine addresses its own cell.
var currentTx threadlocal.Slot[*Transaction]

// Current returns the transaction installed on the calling goroutine, or
// nil if none is installed. The returned handle stays owned by whoever
// installed it.
func Current() *Transaction {
	return currentTx.Get()
}

// SetCurrent installs tx as the calling goroutine's active transaction,
// overwriting any previous value. Passing nil clears the cell, so the slot
// drops its reference instead of pinning a finished transaction for the
// rest of the goroutine's life.
func SetCurrent(tx *Transaction) {
	if tx == nil {
		currentTx.Clear()
		return
	}
	currentTx.Set(tx)
}

// WithTransaction begins a new transaction, installs it on the calling
// goroutine, and runs fn inside it. Whatever was installed before is
// restored on every exit path, including a panic inside fn, so nested
// scopes compose.
func WithTransaction(fn func(tx *Transaction)) {
	prev := Current()
	tx := NewTransaction()
	SetCurrent(tx)
	defer SetCurrent(prev)
	fn(tx)
}
