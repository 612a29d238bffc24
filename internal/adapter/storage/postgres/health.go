package postgres

import (
	"context"
	"fmt"
	"time"
)

const pingTimeout = time.Second

// HealthCheck reports whether the transaction database accepts connections.
type HealthCheck struct {
	pool Pool
}

func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping acquires a pooled connection and pings it, bounded by pingTimeout.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping transaction database: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "postgresql"
}
