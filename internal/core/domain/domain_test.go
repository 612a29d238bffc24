package domain

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestParseSortDirection(t *testing.T) {
	tests := []struct {
		in   string
		want SortDirection
	}{
		{"asc", SortAsc},
		{"ASC", SortAsc},
		{" Asc ", SortAsc},
		{"desc", SortDesc},
		{"", SortDesc},
		{"ascending", SortDesc},
		{"random", SortDesc},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSortDirection(tt.in))
		})
	}
}

func TestNewPageRequest_Normalizes(t *testing.T) {
	p := NewPageRequest(-3, 20, "", "whatever")

	assert.Equal(t, 0, p.Page)
	assert.Equal(t, 20, p.Size)
	assert.Equal(t, DefaultSortField, p.SortField)
	assert.Equal(t, SortDesc, p.Direction)
	assert.Equal(t, int64(0), p.Offset())
}

func TestPageRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     PageRequest
		wantErr error
	}{
		{"valid", NewPageRequest(2, 10, "amount", "asc"), nil},
		{"zero size", NewPageRequest(0, 0, "amount", "asc"), ErrInvalidPageSize},
		{"negative size", NewPageRequest(0, -5, "amount", "asc"), ErrInvalidPageSize},
		{"unknown field", NewPageRequest(0, 10, "amount; DROP TABLE", "asc"), ErrUnknownSortField},
		{"column name is not a field name", NewPageRequest(0, 10, "merchant_name", "asc"), ErrUnknownSortField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestPageRequest_Offset(t *testing.T) {
	assert.Equal(t, int64(30), NewPageRequest(3, 10, "id", "").Offset())
}

func TestPageRequest_OffsetSaturates(t *testing.T) {
	tests := []struct {
		name string
		page PageRequest
		want int64
	}{
		{"first page", NewPageRequest(0, 50, "id", ""), 0},
		{"product wraps to zero", NewPageRequest(1<<62, 4, "id", ""), math.MaxInt64},
		{"product wraps negative", NewPageRequest(1<<62+1, 2, "id", ""), math.MaxInt64},
		{"max page", NewPageRequest(math.MaxInt, 10, "id", ""), math.MaxInt64},
		{"exactly max", NewPageRequest(math.MaxInt64, 1, "id", ""), math.MaxInt64},
		{"non-positive size", PageRequest{Page: 3, Size: 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.page.Offset())
		})
	}
}

func TestSortColumn(t *testing.T) {
	col, ok := SortColumn("merchantName")
	assert.True(t, ok)
	assert.Equal(t, "merchant_name", col)

	_, ok = SortColumn("nope")
	assert.False(t, ok)
}

func TestPage_TotalPages(t *testing.T) {
	tests := []struct {
		total int64
		size  int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{95, 7, 14},
		{5, 0, 0},
	}

	for _, tt := range tests {
		p := &Page{TotalItems: tt.total, Size: tt.size}
		assert.Equal(t, tt.want, p.TotalPages(), "total=%d size=%d", tt.total, tt.size)
	}
}

func TestAmountRange_ContainsIsInclusive(t *testing.T) {
	r := AmountRange{Min: decimal.NewFromInt(100), Max: decimal.NewFromInt(500)}

	assert.True(t, r.Contains(decimal.RequireFromString("100.00")))
	assert.True(t, r.Contains(decimal.RequireFromString("500.00")))
	assert.True(t, r.Contains(decimal.RequireFromString("250.55")))
	assert.False(t, r.Contains(decimal.RequireFromString("99.99")))
	assert.False(t, r.Contains(decimal.RequireFromString("500.01")))
}

func TestTransactionFilter_Matches(t *testing.T) {
	tx := &Transaction{
		Amount:       decimal.RequireFromString("250.00"),
		Country:      "USA",
		Region:       "East Coast",
		City:         "New York",
		IsFraudulent: true,
	}
	rng := AmountRange{Min: decimal.NewFromInt(100), Max: decimal.NewFromInt(500)}
	low := AmountRange{Min: decimal.NewFromInt(0), Max: decimal.NewFromInt(10)}

	tests := []struct {
		name   string
		filter TransactionFilter
		want   bool
	}{
		{"empty filter", TransactionFilter{}, true},
		{"country match", TransactionFilter{Country: strPtr("USA")}, true},
		{"country mismatch", TransactionFilter{Country: strPtr("UK")}, false},
		{"full location", TransactionFilter{Country: strPtr("USA"), Region: strPtr("East Coast"), City: strPtr("New York")}, true},
		{"city mismatch", TransactionFilter{Country: strPtr("USA"), City: strPtr("Boston")}, false},
		{"amount in range", TransactionFilter{Amount: &rng}, true},
		{"amount out of range", TransactionFilter{Amount: &low}, false},
		{"fraudulent", TransactionFilter{Fraudulent: boolPtr(true)}, true},
		{"error", TransactionFilter{Error: boolPtr(true)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.filter.Matches(tx))
		})
	}
}

func TestNewMetrics(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	m := NewMetrics(WindowCounts{Total: 200, Fraudulent: 10, Errored: 6}, start, end)

	assert.Equal(t, int64(200), m.TotalTransactions)
	assert.InDelta(t, 5.0, m.FraudRate, 1e-9)
	assert.InDelta(t, 3.0, m.ErrorRate, 1e-9)
	assert.Equal(t, start, m.StartTime)
	assert.Equal(t, end, m.EndTime)
}

func TestNewMetrics_EmptyWindow(t *testing.T) {
	m := NewMetrics(WindowCounts{}, time.Time{}, time.Time{})

	assert.Equal(t, 0.0, m.FraudRate)
	assert.Equal(t, 0.0, m.ErrorRate)
}
