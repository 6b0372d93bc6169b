package impl

import (
	"context"
	"log/slog"
	"slices"

	"crm/internal/domain/repository"
	"crm/internal/usecase"
)

type healthService struct {
	healthRepo repository.HealthRepository
	logger     *slog.Logger
}

// NewHealthService creates a new health service instance
func NewHealthService(healthRepo repository.HealthRepository, logger *slog.Logger) usecase.HealthUsecase {
	return &healthService{
		healthRepo: healthRepo,
		logger:     logger,
	}
}

// CheckDatabase pings the store, then reports which required tables exist.
// A ping failure is returned as an error; missing tables are not.
func (srv *healthService) CheckDatabase(ctx context.Context) (*usecase.DatabaseHealth, error) {
	if err := srv.healthRepo.Ping(ctx); err != nil {
		srv.logger.WarnContext(ctx, "Database ping failed", slog.Any("error", err))

		return nil, err
	}

	tables, err := srv.healthRepo.ExistingTables(ctx, usecase.RequiredTables)
	if err != nil {
		return nil, translateRepoError(err, "inspect tables")
	}

	missing := make([]string, 0)
	for _, name := range usecase.RequiredTables {
		if !slices.Contains(tables, name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		srv.logger.WarnContext(ctx, "Database is missing tables", slog.Any("missing", missing))
	}

	return &usecase.DatabaseHealth{
		Healthy: len(missing) == 0,
		Tables:  tables,
		Missing: missing,
	}, nil
}
