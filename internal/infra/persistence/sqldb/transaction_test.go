package sqldb

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsBothWrites(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	customer := &entity.Customer{FirstName: "John", LastName: "Doe", Phone: "9998887777"}
	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.CustomerRepo().CreateCustomer(ctx, customer); err != nil {
			return err
		}

		return f.AddressRepo().CreateAddress(ctx, &entity.Address{
			CustomerID: customer.ID, Line1: "123 Main", City: "Pune", State: "MH", Pincode: "411001",
		})
	})
	require.NoError(t, err)

	count, err := NewAddressRepository(db).CountAddressesByCustomer(ctx, customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.CustomerRepo().CreateCustomer(ctx, &entity.Customer{
			FirstName: "John", LastName: "Doe", Phone: "9998887777",
		}); err != nil {
			return err
		}

		return boom
	})
	assert.True(t, errors.Is(err, boom))

	_, err = NewCustomerRepository(db).FindCustomerByPhone(ctx, "9998887777")
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.CustomerRepo().CreateCustomer(ctx, &entity.Customer{
				FirstName: "John", LastName: "Doe", Phone: "9998887777",
			})
			panic("unexpected")
		})
	})

	_, err := NewCustomerRepository(db).FindCustomerByPhone(ctx, "9998887777")
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))
}
