package service

import (
	"context"
	"sync"
	"time"

	"transaction-monitoring-api/internal/core/ports"

	"github.com/rs/zerolog"
)

// SimulationScheduler calls SimulationService.Tick on a fixed interval.
type SimulationScheduler struct {
	sim      ports.SimulationService
	interval time.Duration
	log      zerolog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSimulationScheduler creates a stopped scheduler.
func NewSimulationScheduler(sim ports.SimulationService, interval time.Duration, log zerolog.Logger) *SimulationScheduler {
	return &SimulationScheduler{
		sim:      sim,
		interval: interval,
		log:      log,
	}
}

// Start launches the ticking goroutine. It returns immediately and is a
// no-op if the scheduler is already started. Cancelling ctx stops ticking
// the same way Stop does.
func (s *SimulationScheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	s.cancel = cancel
	s.done = done

	go s.run(ctx, done)
	s.log.Info().Dur("interval", s.interval).Msg("simulation scheduler started")
}

// Stop cancels the ticking goroutine and waits for it to exit. A tick in
// progress is allowed to finish.
func (s *SimulationScheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.log.Info().Msg("simulation scheduler stopped")
}

func (s *SimulationScheduler) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			s.tick(context.WithoutCancel(ctx))
		}
	}
}

func (s *SimulationScheduler) tick(ctx context.Context) {
	start := time.Now()
	if err := s.sim.Tick(ctx); err != nil {
		s.log.Error().Err(err).Msg("simulation tick failed")
		return
	}
	s.log.Debug().Dur("took", time.Since(start)).Msg("simulation tick completed")
}
