package observation

import (
	"fmt"
	"sync/atomic"
	"time"
)

var transactionCounter atomic.Uint64

// Transaction identifies one observation-tracking scope. It is a non-owned
// handle: the slot stores a reference to it and never frees, inspects, or
// validates it. Everything a transaction actually tracks lives in the
// layers above this package.
type Transaction struct {
	id        uint64
	startTime time.Time
}

// NewTransaction creates a transaction handle with a process-unique ID.
func NewTransaction() *Transaction {
	return &Transaction{
		id:        transactionCounter.Add(1),
		startTime: time.Now(),
	}
}

// ID returns the process-unique identifier of this transaction.
func (tx *Transaction) ID() uint64 {
	return tx.id
}

// Duration returns how long the transaction has been running.
func (tx *Transaction) Duration() time.Duration {
	return time.Since(tx.startTime)
}

func (tx *Transaction) String() string {
	return fmt.Sprintf("OTX-%d", tx.id)
}
