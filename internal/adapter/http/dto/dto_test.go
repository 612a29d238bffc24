package dto

import (
	"encoding/json"
	"testing"
	"time"

	"transaction-monitoring-api/internal/core/domain"
	"transaction-monitoring-api/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestPageQuery_Defaults(t *testing.T) {
	got := PageQuery{}.PageRequest()

	assert.Equal(t, domain.PageRequest{Page: 0, Size: 10, SortField: "timestamp", Direction: domain.SortDesc}, got)
}

func TestPageQuery_Normalizes(t *testing.T) {
	got := PageQuery{Page: intPtr(-3), Size: intPtr(25), SortBy: "amount", Direction: "ASC"}.PageRequest()

	assert.Equal(t, 0, got.Page)
	assert.Equal(t, 25, got.Size)
	assert.Equal(t, "amount", got.SortField)
	assert.Equal(t, domain.SortAsc, got.Direction)

	got = PageQuery{Direction: "sideways"}.PageRequest()
	assert.Equal(t, domain.SortDesc, got.Direction)
}

func TestAmountQuery_Range(t *testing.T) {
	rng := AmountQuery{}.Range()
	assert.True(t, rng.Min.Equal(decimal.Zero))
	assert.True(t, rng.Max.Equal(domain.MaxAmountSentinel))

	rng = AmountQuery{MinAmount: "100", MaxAmount: "500.50"}.Range()
	assert.Equal(t, "100", rng.Min.String())
	assert.Equal(t, "500.5", rng.Max.String())
}

func TestMetricsQuery_Window(t *testing.T) {
	start, end := MetricsQuery{}.Window()
	assert.True(t, start.IsZero())
	assert.True(t, end.IsZero())

	start, end = MetricsQuery{StartTime: "2025-01-01T00:00:00Z", EndTime: "2025-01-02T00:00:00"}.Window()
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC), end)
}

func TestNewTransactionResponse_JSON(t *testing.T) {
	msg := "Card expired"
	txn := &domain.Transaction{
		ID:              9,
		CardNumber:      "4000000000000001",
		Amount:          decimal.RequireFromString("10.5"),
		Currency:        "EUR",
		Timestamp:       time.Date(2025, 4, 1, 8, 30, 0, 0, time.UTC),
		MerchantName:    "Spotify",
		Country:         "France",
		Region:          "Île-de-France",
		City:            "Paris",
		TransactionType: domain.TransactionTypeRefund,
		IsError:         true,
		ErrorMessage:    &msg,
	}

	raw, err := json.Marshal(NewTransactionResponse(txn))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, string(raw), `"amount":10.50`)
	assert.Equal(t, float64(9), body["id"])
	assert.Equal(t, "4000000000000001", body["cardNumber"])
	assert.Equal(t, "Spotify", body["merchantName"])
	assert.Equal(t, "REFUND", body["transactionType"])
	assert.Equal(t, false, body["isFraudulent"])
	assert.Equal(t, true, body["isError"])
	assert.Equal(t, "Card expired", body["errorMessage"])
	assert.Equal(t, "2025-04-01T08:30:00Z", body["timestamp"])

	txn.ErrorMessage = nil
	raw, err = json.Marshal(NewTransactionResponse(txn))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "errorMessage")
}

func TestNewPaginatedResponse(t *testing.T) {
	page := &domain.Page{
		Items:      []domain.Transaction{{ID: 1, Amount: decimal.NewFromInt(1)}, {ID: 2, Amount: decimal.NewFromInt(2)}},
		Number:     3,
		Size:       2,
		TotalItems: 9,
	}

	got := NewPaginatedResponse(page)
	assert.Len(t, got.Transactions, 2)
	assert.Equal(t, 3, got.CurrentPage)
	assert.Equal(t, int64(9), got.TotalItems)
	assert.Equal(t, 5, got.TotalPages)

	raw, err := json.Marshal(NewPaginatedResponse(&domain.Page{Size: 10}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"transactions":[],"currentPage":0,"totalItems":0,"totalPages":0}`, string(raw))
}

func TestNewSimulationStatusResponse(t *testing.T) {
	got := NewSimulationStatusResponse(ports.SimulationStatus{
		Running:             true,
		TransactionsPerTick: 60,
		Counters:            domain.CounterSnapshot{Total: 10, Fraudulent: 1, Errored: 2},
	})

	assert.Equal(t, SimulationStatusResponse{
		Running:                true,
		TransactionsPerMinute:  60,
		TotalTransactions:      10,
		FraudulentTransactions: 1,
		ErrorTransactions:      2,
	}, got)
}
