package repository

import "context"

// HealthRepository inspects the backing store.
type HealthRepository interface {
	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// ExistingTables returns the subset of names that exist as tables, in the given order.
	ExistingTables(ctx context.Context, names []string) ([]string, error)
}
