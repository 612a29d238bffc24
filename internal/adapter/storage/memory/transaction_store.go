// Package memory provides an in-process transaction store for local runs and
// end-to-end tests. It mirrors the PostgreSQL repository's ordering and paging.
package memory

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"transaction-monitoring-api/internal/core/domain"
)

// TransactionStore implements ports.TransactionRepository over a map.
type TransactionStore struct {
	mu     sync.RWMutex
	nextID int64
	rows   map[int64]domain.Transaction
}

// NewTransactionStore creates an empty store. IDs start at 1.
func NewTransactionStore() *TransactionStore {
	return &TransactionStore{rows: make(map[int64]domain.Transaction)}
}

// Create stores a copy of t and sets its ID.
func (s *TransactionStore) Create(_ context.Context, t *domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	t.ID = s.nextID
	s.rows[t.ID] = cloneTransaction(t)
	return nil
}

// GetByID returns nil, nil when id is unknown.
func (s *TransactionStore) GetByID(_ context.Context, id int64) (*domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.rows[id]
	if !ok {
		return nil, nil
	}
	out := cloneTransaction(&t)
	return &out, nil
}

// Delete reports whether a row was removed.
func (s *TransactionStore) Delete(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return false, nil
	}
	delete(s.rows, id)
	return true, nil
}

// Find filters, orders and pages the stored transactions.
func (s *TransactionStore) Find(_ context.Context, filter domain.TransactionFilter, page domain.PageRequest) (*domain.Page, error) {
	compare, ok := comparators[page.SortField]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSortField, page.SortField)
	}
	if page.Size <= 0 {
		return nil, fmt.Errorf("%w: got %d", domain.ErrInvalidPageSize, page.Size)
	}

	s.mu.RLock()
	matched := make([]domain.Transaction, 0, len(s.rows))
	for _, t := range s.rows {
		if filter.Matches(&t) {
			matched = append(matched, cloneTransaction(&t))
		}
	}
	s.mu.RUnlock()

	slices.SortFunc(matched, func(a, b domain.Transaction) int {
		c := compare(&a, &b)
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}
		if page.Direction == domain.SortDesc {
			return -c
		}
		return c
	})

	total := int64(len(matched))
	items := []domain.Transaction{}
	if offset := page.Offset(); offset < total {
		end := offset + min(int64(page.Size), total-offset)
		items = matched[offset:end]
	}

	return &domain.Page{
		Items:      items,
		Number:     page.Page,
		Size:       page.Size,
		TotalItems: total,
	}, nil
}

// CountInWindow counts transactions with start <= timestamp < end.
func (s *TransactionStore) CountInWindow(_ context.Context, start, end time.Time) (*domain.WindowCounts, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := &domain.WindowCounts{}
	for _, t := range s.rows {
		if t.Timestamp.Before(start) || !t.Timestamp.Before(end) {
			continue
		}
		counts.Total++
		if t.IsFraudulent {
			counts.Fraudulent++
		}
		if t.IsError {
			counts.Errored++
		}
	}
	return counts, nil
}

// Len returns the number of stored transactions.
func (s *TransactionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rows)
}

func cloneTransaction(t *domain.Transaction) domain.Transaction {
	out := *t
	if t.ErrorMessage != nil {
		msg := *t.ErrorMessage
		out.ErrorMessage = &msg
	}
	return out
}

type comparator func(a, b *domain.Transaction) int

// comparators holds one ordering per sortable field; keys match domain.SortColumn.
var comparators = map[string]comparator{
	"id":              func(a, b *domain.Transaction) int { return cmp.Compare(a.ID, b.ID) },
	"cardNumber":      func(a, b *domain.Transaction) int { return strings.Compare(a.CardNumber, b.CardNumber) },
	"amount":          func(a, b *domain.Transaction) int { return a.Amount.Cmp(b.Amount) },
	"currency":        func(a, b *domain.Transaction) int { return strings.Compare(a.Currency, b.Currency) },
	"timestamp":       func(a, b *domain.Transaction) int { return a.Timestamp.Compare(b.Timestamp) },
	"merchantName":    func(a, b *domain.Transaction) int { return strings.Compare(a.MerchantName, b.MerchantName) },
	"country":         func(a, b *domain.Transaction) int { return strings.Compare(a.Country, b.Country) },
	"region":          func(a, b *domain.Transaction) int { return strings.Compare(a.Region, b.Region) },
	"city":            func(a, b *domain.Transaction) int { return strings.Compare(a.City, b.City) },
	"transactionType": func(a, b *domain.Transaction) int { return strings.Compare(a.TransactionType, b.TransactionType) },
	"isFraudulent":    func(a, b *domain.Transaction) int { return compareBool(a.IsFraudulent, b.IsFraudulent) },
	"isError":         func(a, b *domain.Transaction) int { return compareBool(a.IsError, b.IsError) },
	"errorMessage":    compareErrorMessage,
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

// compareErrorMessage sorts missing messages last, as PostgreSQL does for NULL in ascending order.
func compareErrorMessage(a, b *domain.Transaction) int {
	switch {
	case a.ErrorMessage == nil && b.ErrorMessage == nil:
		return 0
	case a.ErrorMessage == nil:
		return 1
	case b.ErrorMessage == nil:
		return -1
	default:
		return strings.Compare(*a.ErrorMessage, *b.ErrorMessage)
	}
}
