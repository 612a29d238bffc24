package ports

import (
	"context"
	"time"

	"transaction-monitoring-api/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// TransactionService composes queries over the transaction store and keeps
// the process-wide counters in step with persisted records.
type TransactionService interface {
	SaveTransaction(ctx context.Context, t *domain.Transaction) error
	GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, id int64) error
	ListTransactions(ctx context.Context, page domain.PageRequest) (*domain.Page, error)
	GetTransactionsByRegion(ctx context.Context, q domain.RegionQuery, page domain.PageRequest) (*domain.Page, error)
	GetTransactionsByAmountRange(ctx context.Context, rng domain.AmountRange, page domain.PageRequest) (*domain.Page, error)
	GetTransactionsByRegionAndAmountRange(ctx context.Context, q domain.RegionQuery, rng domain.AmountRange, page domain.PageRequest) (*domain.Page, error)
	GetFraudulentTransactions(ctx context.Context, page domain.PageRequest) (*domain.Page, error)
	GetErrorTransactions(ctx context.Context, page domain.PageRequest) (*domain.Page, error)
	// GetTransactionMetrics counts over [start, end). Zero times default to the trailing 24 hours.
	GetTransactionMetrics(ctx context.Context, start, end time.Time) (*domain.Metrics, error)
}

// SimulationService drives synthetic transaction generation.
type SimulationService interface {
	// SimulateTransactions generates and persists count transactions synchronously.
	SimulateTransactions(ctx context.Context, count int) error
	StartSimulation(transactionsPerTick int)
	StopSimulation()
	// Tick runs one scheduled step: a burst of the configured rate while running, else nothing.
	Tick(ctx context.Context) error
	Status() SimulationStatus
}

// SimulationStatus reports the driver state and the running counters.
type SimulationStatus struct {
	Running             bool
	TransactionsPerTick int64
	Counters            domain.CounterSnapshot
}
