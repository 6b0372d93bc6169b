package sqldb

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"crm/config"
	"crm/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLite = &config.SQLiteConfig{
		Path:        filepath.Join(t.TempDir(), "nested", "test.sqlite"),
		BusyTimeout: time.Second,
	}

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func strPtr(s string) *string {
	return &s
}

func createCustomer(t *testing.T, db *gorm.DB, first, last, phone string, email *string) *entity.Customer {
	t.Helper()

	customer := &entity.Customer{FirstName: first, LastName: last, Phone: phone, Email: email}
	require.NoError(t, NewCustomerRepository(db).CreateCustomer(context.Background(), customer))

	return customer
}

func createAddress(t *testing.T, db *gorm.DB, customerID int64, city, state, pincode string, primary bool) *entity.Address {
	t.Helper()

	address := &entity.Address{
		CustomerID: customerID,
		Line1:      "1 Test Street",
		City:       city,
		State:      state,
		Pincode:    pincode,
		IsPrimary:  primary,
	}
	require.NoError(t, NewAddressRepository(db).CreateAddress(context.Background(), address))

	return address
}
