package service

import (
	"sync/atomic"

	"transaction-monitoring-api/internal/core/domain"
)

// TransactionCounters are process-wide, monotonically increasing counts of
// persisted transactions. They are never reset and do not survive a restart.
type TransactionCounters struct {
	total      atomic.Int64
	fraudulent atomic.Int64
	errored    atomic.Int64
}

// NewTransactionCounters returns zeroed counters.
func NewTransactionCounters() *TransactionCounters {
	return &TransactionCounters{}
}

// Record counts one persisted transaction.
func (c *TransactionCounters) Record(t *domain.Transaction) {
	c.total.Add(1)
	if t.IsFraudulent {
		c.fraudulent.Add(1)
	}
	if t.IsError {
		c.errored.Add(1)
	}
}

func (c *TransactionCounters) Total() int64      { return c.total.Load() }
func (c *TransactionCounters) Fraudulent() int64 { return c.fraudulent.Load() }
func (c *TransactionCounters) Errored() int64    { return c.errored.Load() }

// Snapshot reads all three counters. The reads are not taken atomically as a group.
func (c *TransactionCounters) Snapshot() domain.CounterSnapshot {
	return domain.CounterSnapshot{
		Total:      c.total.Load(),
		Fraudulent: c.fraudulent.Load(),
		Errored:    c.errored.Load(),
	}
}
