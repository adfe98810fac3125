package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	healthKey = "tipcloud:health"
	healthTTL = 10 * time.Second
)

// HealthCheck reports whether Redis can serve TipCloud. The per-DJ tip
// guard, the rate limiter and the directory cache all write, so a
// read-only replica counts as unhealthy.
type HealthCheck struct {
	client *goredis.Client
}

func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping writes a short-lived marker key.
func (h *HealthCheck) Ping(ctx context.Context) error {
	if err := h.client.Set(ctx, healthKey, time.Now().Unix(), healthTTL).Err(); err != nil {
		return fmt.Errorf("redis write check: %w", err)
	}
	return nil
}

func (h *HealthCheck) Name() string { return "redis" }
