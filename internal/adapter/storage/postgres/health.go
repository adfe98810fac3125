package postgres

import (
	"context"
	"errors"
)

var errSchemaMissing = errors.New("tipcloud schema not applied")

// HealthCheck implements ports.HealthChecker for PostgreSQL. Besides
// connectivity it confirms the tip ledger table exists.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and schema presence.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var ready bool
	if err := h.pool.QueryRow(ctx, `SELECT to_regclass('public.tips') IS NOT NULL`).Scan(&ready); err != nil {
		return err
	}
	if !ready {
		return errSchemaMissing
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
