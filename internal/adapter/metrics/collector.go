// Package metrics exposes the transaction counters and simulation state as
// Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CounterSource provides the running transaction counts.
type CounterSource interface {
	Total() int64
	Fraudulent() int64
	Errored() int64
}

// SimulationSource provides the simulation driver state.
type SimulationSource interface {
	Running() bool
	Rate() int64
}

// Register adds the transaction and simulation collectors to reg. Values are
// read at scrape time; nothing is copied.
func Register(reg prometheus.Registerer, counters CounterSource, sim SimulationSource) error {
	collectors := []prometheus.Collector{
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "transactions_total",
			Help: "Transactions persisted since process start.",
		}, func() float64 { return float64(counters.Total()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "transactions_fraudulent",
			Help: "Persisted transactions flagged as fraudulent.",
		}, func() float64 { return float64(counters.Fraudulent()) }),
		prometheus.NewCounterFunc(prometheus.CounterOpts{
			Name: "transactions_error",
			Help: "Persisted transactions flagged as errored.",
		}, func() float64 { return float64(counters.Errored()) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "simulation_running",
			Help: "1 while the periodic transaction simulation is enabled.",
		}, func() float64 {
			if sim.Running() {
				return 1
			}
			return 0
		}),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "simulation_transactions_per_tick",
			Help: "Transactions generated on each simulation tick while running.",
		}, func() float64 { return float64(sim.Rate()) }),
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
