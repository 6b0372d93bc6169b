package impl

import (
	"context"
	"testing"

	"crm/internal/domain/entity"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	mockRepo "crm/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSeedService_Seed_SkipsExistingPhones(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	customers := mockRepo.NewMockCustomerRepository(t)
	addresses := mockRepo.NewMockAddressRepository(t)
	expectTransaction(t, txManager, customers, addresses)

	customers.EXPECT().FindCustomerByPhone(ctx, "9000000001").Return(&entity.Customer{ID: 1}, nil)
	customers.EXPECT().FindCustomerByPhone(ctx, mock.Anything).Return(nil, repository.ErrCustomerNotFound).Times(5)

	nextID := int64(100)
	customers.EXPECT().
		CreateCustomer(ctx, mock.AnythingOfType("*entity.Customer")).
		Run(func(_ context.Context, c *entity.Customer) {
			nextID++
			c.ID = nextID
		}).
		Return(nil).
		Times(5)
	addresses.EXPECT().
		CreateAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
			return a.IsPrimary && a.CustomerID > 100 && a.Country == entity.DefaultCountry
		})).
		Return(nil).
		Times(5)

	inserted, err := NewSeedService(txManager, discardLogger()).Seed(ctx)

	require.NoError(t, err)
	assert.Equal(t, 5, inserted)
}

func TestSeedService_Seed_LookupFailureAborts(t *testing.T) {
	ctx := context.Background()
	txManager := mockRepo.NewMockTransactionManager(t)
	customers := mockRepo.NewMockCustomerRepository(t)
	expectTransaction(t, txManager, customers, nil)
	dbErr := errors.New("locked")

	customers.EXPECT().FindCustomerByPhone(ctx, "9000000001").Return(nil, dbErr)

	inserted, err := NewSeedService(txManager, discardLogger()).Seed(ctx)

	assert.Zero(t, inserted)
	assert.True(t, errors.Is(err, dbErr))
}
