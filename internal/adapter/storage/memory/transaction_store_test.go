package memory

import (
	"context"
	"testing"
	"time"

	"transaction-monitoring-api/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

func seed(t *testing.T, s *TransactionStore) {
	t.Helper()
	msg := "Network error"
	rows := []domain.Transaction{
		{Country: "USA", Region: "East Coast", City: "Boston", Amount: decimal.RequireFromString("50.00"), Timestamp: base, MerchantName: "Target"},
		{Country: "USA", Region: "East Coast", City: "Miami", Amount: decimal.RequireFromString("500.00"), Timestamp: base.Add(time.Minute), IsFraudulent: true, MerchantName: "Apple Store"},
		{Country: "USA", Region: "West Coast", City: "Seattle", Amount: decimal.RequireFromString("50.00"), Timestamp: base.Add(2 * time.Minute), IsError: true, ErrorMessage: &msg, MerchantName: "Amazon"},
		{Country: "Japan", Region: "Kanto", City: "Unknown City", Amount: decimal.RequireFromString("9999.99"), Timestamp: base.Add(3 * time.Minute), MerchantName: "Uber"},
		{Country: "UK", Region: "England", City: "London", Amount: decimal.RequireFromString("1.00"), Timestamp: base.Add(-48 * time.Hour), IsFraudulent: true, IsError: true, ErrorMessage: &msg, MerchantName: "Netflix"},
	}
	for i := range rows {
		require.NoError(t, s.Create(context.Background(), &rows[i]))
	}
}

func ids(p *domain.Page) []int64 {
	out := make([]int64, 0, len(p.Items))
	for _, t := range p.Items {
		out = append(out, t.ID)
	}
	return out
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestTransactionStore_CreateAssignsSequentialIDs(t *testing.T) {
	s := NewTransactionStore()
	a := &domain.Transaction{Country: "USA"}
	b := &domain.Transaction{Country: "USA"}

	require.NoError(t, s.Create(context.Background(), a))
	require.NoError(t, s.Create(context.Background(), b))

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(2), b.ID)
	assert.Equal(t, 2, s.Len())
}

func TestTransactionStore_GetByIDAndDelete(t *testing.T) {
	s := NewTransactionStore()
	seed(t, s)
	ctx := context.Background()

	got, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Seattle", got.City)

	*got.ErrorMessage = "mutated"
	again, err := s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "Network error", *again.ErrorMessage)

	deleted, err := s.Delete(ctx, 3)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err = s.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = s.Delete(ctx, 3)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTransactionStore_FindFilters(t *testing.T) {
	s := NewTransactionStore()
	seed(t, s)
	asc := domain.NewPageRequest(0, 10, "id", "asc")
	rng := domain.AmountRange{Min: decimal.NewFromInt(50), Max: decimal.NewFromInt(500)}

	tests := []struct {
		name   string
		filter domain.TransactionFilter
		want   []int64
	}{
		{"none", domain.TransactionFilter{}, []int64{1, 2, 3, 4, 5}},
		{"country", domain.TransactionFilter{Country: strPtr("USA")}, []int64{1, 2, 3}},
		{"country and region", domain.TransactionFilter{Country: strPtr("USA"), Region: strPtr("East Coast")}, []int64{1, 2}},
		{"city", domain.TransactionFilter{City: strPtr("London")}, []int64{5}},
		{"amount bounds inclusive", domain.TransactionFilter{Amount: &rng}, []int64{1, 2, 3}},
		{"fraudulent", domain.TransactionFilter{Fraudulent: boolPtr(true)}, []int64{2, 5}},
		{"errors", domain.TransactionFilter{Error: boolPtr(true)}, []int64{3, 5}},
		{"no match", domain.TransactionFilter{Country: strPtr("Atlantis")}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := s.Find(context.Background(), tt.filter, asc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(page))
			assert.Equal(t, int64(len(tt.want)), page.TotalItems)
		})
	}
}

func TestTransactionStore_FindOrdering(t *testing.T) {
	s := NewTransactionStore()
	seed(t, s)
	ctx := context.Background()

	page, err := s.Find(ctx, domain.TransactionFilter{}, domain.NewPageRequest(0, 10, "", ""))
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 3, 2, 1, 5}, ids(page), "default is newest first")

	// Equal amounts fall back to id in the same direction.
	page, err = s.Find(ctx, domain.TransactionFilter{}, domain.NewPageRequest(0, 10, "amount", "asc"))
	require.NoError(t, err)
	assert.Equal(t, []int64{5, 1, 3, 2, 4}, ids(page))

	page, err = s.Find(ctx, domain.TransactionFilter{}, domain.NewPageRequest(0, 10, "amount", "desc"))
	require.NoError(t, err)
	assert.Equal(t, []int64{4, 2, 3, 1, 5}, ids(page))

	page, err = s.Find(ctx, domain.TransactionFilter{}, domain.NewPageRequest(0, 10, "errorMessage", "asc"))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 5, 1, 2, 4}, ids(page))
}

func TestTransactionStore_FindPaging(t *testing.T) {
	s := NewTransactionStore()
	seed(t, s)
	ctx := context.Background()

	page, err := s.Find(ctx, domain.TransactionFilter{}, domain.NewPageRequest(1, 2, "id", "asc"))
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4}, ids(page))
	assert.Equal(t, int64(5), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages())
	assert.Equal(t, 1, page.Number)

	page, err = s.Find(ctx, domain.TransactionFilter{}, domain.NewPageRequest(9, 2, "id", "asc"))
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, int64(5), page.TotalItems)
}

func TestTransactionStore_FindHugePageIsPastEnd(t *testing.T) {
	s := NewTransactionStore()
	seed(t, s)
	ctx := context.Background()

	for _, pr := range []domain.PageRequest{
		domain.NewPageRequest(1<<62, 4, "id", "asc"),
		domain.NewPageRequest(1<<62+1, 2, "id", "asc"),
		domain.NewPageRequest(0, 1<<40, "id", "asc"),
	} {
		page, err := s.Find(ctx, domain.TransactionFilter{}, pr)
		require.NoError(t, err)
		assert.Equal(t, int64(5), page.TotalItems)
		assert.Equal(t, pr.Page, page.Number)
		if pr.Page == 0 {
			assert.Len(t, page.Items, 5)
		} else {
			assert.Empty(t, page.Items)
		}
	}
}

func TestTransactionStore_FindRejectsBadPageRequest(t *testing.T) {
	s := NewTransactionStore()

	_, err := s.Find(context.Background(), domain.TransactionFilter{}, domain.NewPageRequest(0, 10, "nope", "asc"))
	assert.ErrorIs(t, err, domain.ErrUnknownSortField)

	_, err = s.Find(context.Background(), domain.TransactionFilter{}, domain.NewPageRequest(0, 0, "id", "asc"))
	assert.ErrorIs(t, err, domain.ErrInvalidPageSize)
}

func TestTransactionStore_CountInWindow(t *testing.T) {
	s := NewTransactionStore()
	seed(t, s)

	counts, err := s.CountInWindow(context.Background(), base, base.Add(3*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, &domain.WindowCounts{Total: 3, Fraudulent: 1, Errored: 1}, counts)

	counts, err = s.CountInWindow(context.Background(), base.Add(-72*time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, &domain.WindowCounts{Total: 5, Fraudulent: 2, Errored: 2}, counts)
}
