package ports

import (
	"context"
	"time"

	"transaction-monitoring-api/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// TransactionRepository defines persistence operations for transactions.
type TransactionRepository interface {
	// Create inserts t and sets t.ID to the store-assigned identity.
	Create(ctx context.Context, t *domain.Transaction) error
	// GetByID returns nil, nil when no transaction has the given ID.
	GetByID(ctx context.Context, id int64) (*domain.Transaction, error)
	// Delete reports whether a row was removed.
	Delete(ctx context.Context, id int64) (bool, error)
	// Find returns one page of transactions matching filter.
	Find(ctx context.Context, filter domain.TransactionFilter, page domain.PageRequest) (*domain.Page, error)
	// CountInWindow counts transactions with start <= timestamp < end.
	CountInWindow(ctx context.Context, start, end time.Time) (*domain.WindowCounts, error)
}
