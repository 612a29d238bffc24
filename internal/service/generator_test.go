package service

import (
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cardPattern = regexp.MustCompile(`^4\d{15}$`)

func TestGenerator_FieldShapes(t *testing.T) {
	now := time.Date(2025, 5, 5, 5, 5, 5, 0, time.UTC)
	gen := NewGenerator(7, WithClock(func() time.Time { return now }))
	ref := DefaultReferenceData()
	lo, hi := decimal.NewFromInt(1), decimal.NewFromInt(10000)

	for i := 0; i < 5000; i++ {
		txn := gen.Next()

		assert.Zero(t, txn.ID)
		assert.Regexp(t, cardPattern, txn.CardNumber)
		assert.True(t, txn.Amount.GreaterThanOrEqual(lo), "amount %s below 1.00", txn.Amount)
		assert.True(t, txn.Amount.LessThan(hi), "amount %s not below 10000.00", txn.Amount)
		assert.LessOrEqual(t, -txn.Amount.Exponent(), int32(2))
		assert.Equal(t, now, txn.Timestamp)

		assert.Contains(t, ref.Countries, txn.Country)
		assert.Contains(t, ref.Regions[txn.Country], txn.Region)
		if cities, ok := ref.Cities[txn.Region]; ok {
			assert.Contains(t, cities, txn.City)
		} else {
			assert.Equal(t, "Unknown City", txn.City)
		}
		assert.Contains(t, ref.Merchants, txn.MerchantName)
		assert.Contains(t, ref.TransactionTypes, txn.TransactionType)
		assert.Contains(t, ref.Currencies, txn.Currency)

		if txn.IsError {
			require.NotNil(t, txn.ErrorMessage)
			assert.Contains(t, ref.ErrorMessages, *txn.ErrorMessage)
		} else {
			assert.Nil(t, txn.ErrorMessage)
		}
	}
}

func TestGenerator_UnknownFallbacks(t *testing.T) {
	ref := DefaultReferenceData()
	ref.Countries = []string{"Atlantis"}
	gen := NewGenerator(1, WithReferenceData(ref))

	txn := gen.Next()
	assert.Equal(t, "Atlantis", txn.Country)
	assert.Equal(t, "Unknown Region", txn.Region)
	assert.Equal(t, "Unknown City", txn.City)
}

func TestGenerator_SameSeedSameSequence(t *testing.T) {
	clock := WithClock(func() time.Time { return time.Unix(0, 0) })
	a := NewGenerator(99, clock)
	b := NewGenerator(99, clock)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestGenerator_RatesConverge(t *testing.T) {
	if testing.Short() {
		t.Skip("statistical test")
	}
	const n = 100_000
	gen := NewGenerator(2024)

	var fraud, errored int
	countries := map[string]int{}
	for i := 0; i < n; i++ {
		txn := gen.Next()
		if txn.IsFraudulent {
			fraud++
		}
		if txn.IsError {
			errored++
		}
		countries[txn.Country]++
	}

	assert.InDelta(t, 0.05, float64(fraud)/n, 0.005)
	assert.InDelta(t, 0.03, float64(errored)/n, 0.004)

	keys := make([]string, 0, len(countries))
	for k, c := range countries {
		keys = append(keys, k)
		assert.InDelta(t, 0.1, float64(c)/n, 0.01, "country %s", k)
	}
	slices.Sort(keys)
	want := slices.Clone(DefaultReferenceData().Countries)
	slices.Sort(want)
	assert.Equal(t, want, keys)
}
