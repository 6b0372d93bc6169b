package usecase

import "context"

// RequiredTables must exist for the store to be considered healthy.
var RequiredTables = []string{"customers", "addresses"}

// DatabaseHealth is the outcome of a store check.
type DatabaseHealth struct {
	Healthy bool
	Tables  []string
	Missing []string
}

// HealthUsecase reports on the backing store.
type HealthUsecase interface {
	CheckDatabase(ctx context.Context) (*DatabaseHealth, error)
}
