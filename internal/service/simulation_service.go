package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"transaction-monitoring-api/internal/core/ports"

	"github.com/rs/zerolog"
)

// SimulationState is the shared on/off switch and per-tick rate of the
// simulation driver. The HTTP layer and the scheduler hold the same instance.
type SimulationState struct {
	running atomic.Bool
	rate    atomic.Int64
}

// NewSimulationState returns a stopped state with the given default rate.
func NewSimulationState(defaultRate int) *SimulationState {
	s := &SimulationState{}
	s.rate.Store(int64(defaultRate))
	return s
}

func (s *SimulationState) Running() bool { return s.running.Load() }
func (s *SimulationState) Rate() int64   { return s.rate.Load() }

// SimulationServiceImpl implements ports.SimulationService.
type SimulationServiceImpl struct {
	txSvc    ports.TransactionService
	gen      *Generator
	state    *SimulationState
	counters *TransactionCounters
	log      zerolog.Logger
}

// NewSimulationService creates a new SimulationServiceImpl.
func NewSimulationService(
	txSvc ports.TransactionService,
	gen *Generator,
	state *SimulationState,
	counters *TransactionCounters,
	log zerolog.Logger,
) *SimulationServiceImpl {
	return &SimulationServiceImpl{
		txSvc:    txSvc,
		gen:      gen,
		state:    state,
		counters: counters,
		log:      log,
	}
}

// SimulateTransactions generates and saves count transactions one at a time.
// It stops at the first failure; transactions saved before it stay saved.
func (s *SimulationServiceImpl) SimulateTransactions(ctx context.Context, count int) error {
	for i := 0; i < count; i++ {
		t := s.gen.Next()
		if err := s.txSvc.SaveTransaction(ctx, t); err != nil {
			s.log.Error().Err(err).
				Int("saved", i).
				Int("requested", count).
				Msg("simulation burst aborted")
			return fmt.Errorf("simulated transaction %d of %d: %w", i+1, count, err)
		}
	}
	s.log.Debug().Int("count", count).Msg("simulation burst completed")
	return nil
}

// StartSimulation sets the per-tick rate and switches the driver on.
// Calling it while running only changes the rate.
func (s *SimulationServiceImpl) StartSimulation(transactionsPerTick int) {
	s.state.rate.Store(int64(transactionsPerTick))
	wasRunning := s.state.running.Swap(true)
	s.log.Info().
		Int("transactions_per_tick", transactionsPerTick).
		Bool("was_running", wasRunning).
		Msg("transaction simulation started")
}

// StopSimulation switches the driver off. Stopping a stopped driver is a no-op.
func (s *SimulationServiceImpl) StopSimulation() {
	if s.state.running.Swap(false) {
		s.log.Info().Msg("transaction simulation stopped")
	}
}

// Tick runs one scheduled burst of the current rate if the driver is running.
func (s *SimulationServiceImpl) Tick(ctx context.Context) error {
	if !s.state.Running() {
		return nil
	}
	return s.SimulateTransactions(ctx, int(s.state.Rate()))
}

func (s *SimulationServiceImpl) Status() ports.SimulationStatus {
	return ports.SimulationStatus{
		Running:             s.state.Running(),
		TransactionsPerTick: s.state.Rate(),
		Counters:            s.counters.Snapshot(),
	}
}
