package usecase

import "context"

// SeedUsecase loads demo data.
type SeedUsecase interface {
	// Seed inserts the demo customers that are not on record yet and reports how many were added.
	Seed(ctx context.Context) (int, error)
}
