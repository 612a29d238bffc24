package service

import (
	"context"
	"errors"
	"time"

	"transaction-monitoring-api/internal/core/domain"
	"transaction-monitoring-api/internal/core/ports"
	"transaction-monitoring-api/pkg/apperror"

	"github.com/rs/zerolog"
)

const defaultMetricsWindow = 24 * time.Hour

// TransactionServiceImpl implements ports.TransactionService.
type TransactionServiceImpl struct {
	repo     ports.TransactionRepository
	counters *TransactionCounters
	now      func() time.Time
	log      zerolog.Logger
}

// NewTransactionService creates a new TransactionServiceImpl.
func NewTransactionService(
	repo ports.TransactionRepository,
	counters *TransactionCounters,
	log zerolog.Logger,
) *TransactionServiceImpl {
	return &TransactionServiceImpl{
		repo:     repo,
		counters: counters,
		now:      time.Now,
		log:      log,
	}
}

// SaveTransaction persists t and, once the store has accepted it, counts it.
func (s *TransactionServiceImpl) SaveTransaction(ctx context.Context, t *domain.Transaction) error {
	if err := s.repo.Create(ctx, t); err != nil {
		return apperror.ErrStorageFailure(err)
	}
	s.counters.Record(t)
	return nil
}

// GetTransactionByID returns NotFound when no record has the given id.
func (s *TransactionServiceImpl) GetTransactionByID(ctx context.Context, id int64) (*domain.Transaction, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.ErrStorageFailure(err)
	}
	if t == nil {
		return nil, apperror.ErrNotFound("Transaction", id)
	}
	return t, nil
}

// DeleteTransaction returns NotFound when no record was removed.
func (s *TransactionServiceImpl) DeleteTransaction(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return apperror.ErrStorageFailure(err)
	}
	if !deleted {
		return apperror.ErrNotFound("Transaction", id)
	}
	s.log.Info().Int64("transaction_id", id).Msg("transaction deleted")
	return nil
}

func (s *TransactionServiceImpl) ListTransactions(ctx context.Context, page domain.PageRequest) (*domain.Page, error) {
	return s.find(ctx, domain.TransactionFilter{}, page)
}

// GetTransactionsByRegion applies the most specific location combination
// present. Country+region (with or without city) is paired with the full
// amount range; country, region or city alone filter on that field only.
func (s *TransactionServiceImpl) GetTransactionsByRegion(ctx context.Context, q domain.RegionQuery, page domain.PageRequest) (*domain.Page, error) {
	var f domain.TransactionFilter
	full := domain.FullAmountRange()

	switch {
	case q.Country != "" && q.Region != "" && q.City != "":
		f = domain.TransactionFilter{Country: &q.Country, Region: &q.Region, City: &q.City, Amount: &full}
	case q.Country != "" && q.Region != "":
		f = domain.TransactionFilter{Country: &q.Country, Region: &q.Region, Amount: &full}
	case q.Country != "":
		f = domain.TransactionFilter{Country: &q.Country}
	case q.Region != "":
		f = domain.TransactionFilter{Region: &q.Region}
	case q.City != "":
		f = domain.TransactionFilter{City: &q.City}
	}

	return s.find(ctx, f, page)
}

// GetTransactionsByAmountRange filters on amount only, both bounds inclusive.
func (s *TransactionServiceImpl) GetTransactionsByAmountRange(ctx context.Context, rng domain.AmountRange, page domain.PageRequest) (*domain.Page, error) {
	return s.find(ctx, domain.TransactionFilter{Amount: &rng}, page)
}

// GetTransactionsByRegionAndAmountRange always applies the amount range. City
// only takes part together with country and region; a lone city is ignored.
func (s *TransactionServiceImpl) GetTransactionsByRegionAndAmountRange(ctx context.Context, q domain.RegionQuery, rng domain.AmountRange, page domain.PageRequest) (*domain.Page, error) {
	f := domain.TransactionFilter{Amount: &rng}

	switch {
	case q.Country != "" && q.Region != "" && q.City != "":
		f.Country, f.Region, f.City = &q.Country, &q.Region, &q.City
	case q.Country != "" && q.Region != "":
		f.Country, f.Region = &q.Country, &q.Region
	case q.Country != "":
		f.Country = &q.Country
	case q.Region != "":
		f.Region = &q.Region
	}

	return s.find(ctx, f, page)
}

func (s *TransactionServiceImpl) GetFraudulentTransactions(ctx context.Context, page domain.PageRequest) (*domain.Page, error) {
	fraudulent := true
	return s.find(ctx, domain.TransactionFilter{Fraudulent: &fraudulent}, page)
}

func (s *TransactionServiceImpl) GetErrorTransactions(ctx context.Context, page domain.PageRequest) (*domain.Page, error) {
	errored := true
	return s.find(ctx, domain.TransactionFilter{Error: &errored}, page)
}

// GetTransactionMetrics counts transactions in [start, end). A zero end means
// now and a zero start means 24 hours before end.
func (s *TransactionServiceImpl) GetTransactionMetrics(ctx context.Context, start, end time.Time) (*domain.Metrics, error) {
	if end.IsZero() {
		end = s.now()
	}
	if start.IsZero() {
		start = end.Add(-defaultMetricsWindow)
	}
	if start.After(end) {
		return nil, apperror.ErrInvalidQuery("startTime must not be after endTime")
	}

	counts, err := s.repo.CountInWindow(ctx, start, end)
	if err != nil {
		return nil, apperror.ErrStorageFailure(err)
	}

	m := domain.NewMetrics(*counts, start, end)
	return &m, nil
}

func (s *TransactionServiceImpl) find(ctx context.Context, f domain.TransactionFilter, page domain.PageRequest) (*domain.Page, error) {
	if err := page.Validate(); err != nil {
		return nil, apperror.ErrInvalidQuery(err.Error())
	}

	result, err := s.repo.Find(ctx, f, page)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSortField) || errors.Is(err, domain.ErrInvalidPageSize) {
			return nil, apperror.ErrInvalidQuery(err.Error())
		}
		return nil, apperror.ErrStorageFailure(err)
	}
	return result, nil
}
