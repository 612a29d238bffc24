package service

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"transaction-monitoring-api/internal/core/domain"

	"github.com/shopspring/decimal"
)

// Draw probabilities, in percent.
const (
	fraudPercent = 5
	errorPercent = 3
)

var (
	minAmount  = decimal.NewFromInt(1)
	amountSpan = decimal.NewFromInt(9999)
	maxAmount  = decimal.RequireFromString("9999.99")
)

// Generator produces synthetic transactions. It is safe for concurrent use;
// draws are serialized on an internal mutex so a fixed seed yields a fixed
// sequence for a single caller.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
	ref ReferenceData
	now func() time.Time
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) GeneratorOption {
	return func(g *Generator) { g.now = now }
}

// WithReferenceData replaces the built-in value tables.
func WithReferenceData(ref ReferenceData) GeneratorOption {
	return func(g *Generator) { g.ref = ref }
}

// NewGenerator returns a generator seeded with seed. A zero seed is replaced
// by one derived from the clock.
func NewGenerator(seed uint64, opts ...GeneratorOption) *Generator {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := &Generator{
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		ref: DefaultReferenceData(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Next draws one transaction. The ID is left for the store to assign.
func (g *Generator) Next() *domain.Transaction {
	g.mu.Lock()
	defer g.mu.Unlock()

	country := g.pick(g.ref.Countries)
	region := g.pickOr(g.ref.Regions[country], unknownRegion)
	city := g.pickOr(g.ref.Cities[region], unknownCity)

	t := &domain.Transaction{
		CardNumber:      fmt.Sprintf("4%015d", g.rng.Int64N(1_000_000_000_000_000)),
		Amount:          g.amount(),
		Currency:        g.pick(g.ref.Currencies),
		Timestamp:       g.now(),
		MerchantName:    g.pick(g.ref.Merchants),
		Country:         country,
		Region:          region,
		City:            city,
		TransactionType: g.pick(g.ref.TransactionTypes),
		IsFraudulent:    g.rng.IntN(100) < fraudPercent,
		IsError:         g.rng.IntN(100) < errorPercent,
	}
	if t.IsError {
		msg := g.pick(g.ref.ErrorMessages)
		t.ErrorMessage = &msg
	}
	return t
}

// amount is uniform over [1.00, 10000.00), rounded half-up to cents.
func (g *Generator) amount() decimal.Decimal {
	amount := decimal.NewFromFloat(g.rng.Float64()).Mul(amountSpan).Add(minAmount).Round(2)
	if amount.GreaterThan(maxAmount) {
		return maxAmount
	}
	return amount
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.IntN(len(values))]
}

func (g *Generator) pickOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return g.pick(values)
}
