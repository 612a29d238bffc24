package metrics_test

import (
	"strings"
	"testing"

	"transaction-monitoring-api/internal/adapter/metrics"
	"transaction-monitoring-api/internal/core/domain"
	"transaction-monitoring-api/internal/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_ExposesCountersAndState(t *testing.T) {
	reg := prometheus.NewRegistry()
	counters := service.NewTransactionCounters()
	state := service.NewSimulationState(60)

	require.NoError(t, metrics.Register(reg, counters, state))

	counters.Record(&domain.Transaction{IsFraudulent: true})
	counters.Record(&domain.Transaction{IsError: true})
	counters.Record(&domain.Transaction{})

	expected := `
# HELP transactions_error Persisted transactions flagged as errored.
# TYPE transactions_error counter
transactions_error 1
# HELP transactions_fraudulent Persisted transactions flagged as fraudulent.
# TYPE transactions_fraudulent counter
transactions_fraudulent 1
# HELP transactions_total Transactions persisted since process start.
# TYPE transactions_total counter
transactions_total 3
# HELP simulation_running 1 while the periodic transaction simulation is enabled.
# TYPE simulation_running gauge
simulation_running 0
# HELP simulation_transactions_per_tick Transactions generated on each simulation tick while running.
# TYPE simulation_transactions_per_tick gauge
simulation_transactions_per_tick 60
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"transactions_total", "transactions_fraudulent", "transactions_error",
		"simulation_running", "simulation_transactions_per_tick")
	assert.NoError(t, err)
}

func TestRegister_DuplicateFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	counters := service.NewTransactionCounters()
	state := service.NewSimulationState(1)

	require.NoError(t, metrics.Register(reg, counters, state))
	assert.Error(t, metrics.Register(reg, counters, state))
}
