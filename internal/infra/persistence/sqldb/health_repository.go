package sqldb

import (
	"context"

	"crm/internal/domain/repository"
	"crm/internal/errors"

	"gorm.io/gorm"
)

type healthRepository struct {
	db *gorm.DB
}

// NewHealthRepository is the constructor for healthRepository.
func NewHealthRepository(db *gorm.DB) repository.HealthRepository {
	return &healthRepository{db: db}
}

func (repo *healthRepository) Ping(ctx context.Context) error {
	sqlDB, err := repo.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return errors.Wrap(err, "failed to ping database")
	}

	return nil
}

func (repo *healthRepository) ExistingTables(ctx context.Context, names []string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	migrator := repo.db.WithContext(ctx).Migrator()

	existing := make([]string, 0, len(names))
	for _, name := range names {
		if migrator.HasTable(name) {
			existing = append(existing, name)
		}
	}

	return existing, nil
}
