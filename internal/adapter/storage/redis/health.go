package redis

import (
	"context"
	"fmt"

	goredis "github.com/redis/go-redis/v9"
)

// HealthCheck reports whether the rate limit backend is reachable.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping sends PING and expects PONG.
func (h *HealthCheck) Ping(ctx context.Context) error {
	pong, err := h.client.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("ping rate limit store: %w", err)
	}
	if pong != "PONG" {
		return fmt.Errorf("ping rate limit store: unexpected reply %q", pong)
	}
	return nil
}

func (h *HealthCheck) Name() string {
	return "redis"
}
