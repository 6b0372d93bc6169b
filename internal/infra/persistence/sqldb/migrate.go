package sqldb

import (
	"context"

	"crm/internal/errors"
	"crm/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates the customers and addresses tables, their indexes and the
// cascading foreign key. It is idempotent.
func Migrate(ctx context.Context, db *gorm.DB) error {
	// customers must exist before the addresses foreign key can reference it
	if err := db.WithContext(ctx).AutoMigrate(&model.CustomerModel{}, &model.AddressModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
