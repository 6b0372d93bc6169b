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

func TestAddressRepository_CreateDefaultsAndNulls(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()
	customer := createCustomer(t, db, "Neha", "Kapoor", "9000000006", nil)

	address := &entity.Address{
		CustomerID: customer.ID,
		Line1:      "3 Green Park",
		Line2:      strPtr(""),
		City:       "Jaipur",
		State:      "RJ",
		Pincode:    "302001",
	}
	require.NoError(t, repo.CreateAddress(ctx, address))
	require.NotZero(t, address.ID)

	found, err := repo.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultCountry, found.Country)
	assert.Nil(t, found.Line2)
	assert.False(t, found.IsPrimary)
	assert.Equal(t, customer.ID, found.CustomerID)
}

func TestAddressRepository_CreateForMissingCustomer(t *testing.T) {
	db := newTestDB(t)

	err := NewAddressRepository(db).CreateAddress(context.Background(), &entity.Address{
		CustomerID: 999,
		Line1:      "Nowhere",
		City:       "Pune",
		State:      "MH",
		Pincode:    "411001",
	})
	assert.True(t, errors.Is(err, repository.ErrCustomerNotFound))
}

func TestAddressRepository_FindAddressesByCustomer_Order(t *testing.T) {
	db := newTestDB(t)
	customer := createCustomer(t, db, "Aarav", "Sharma", "9000000001", nil)
	first := createAddress(t, db, customer.ID, "Pune", "MH", "411001", false)
	primary := createAddress(t, db, customer.ID, "Bengaluru", "KA", "560001", true)
	third := createAddress(t, db, customer.ID, "Mysuru", "KA", "570001", false)
	other := createCustomer(t, db, "Priya", "Mehta", "9000000002", nil)
	createAddress(t, db, other.ID, "Mumbai", "MH", "400001", true)

	addresses, err := NewAddressRepository(db).FindAddressesByCustomer(context.Background(), customer.ID)
	require.NoError(t, err)

	got := make([]int64, 0, len(addresses))
	for _, a := range addresses {
		got = append(got, a.ID)
	}
	assert.Equal(t, []int64{primary.ID, first.ID, third.ID}, got)
}

func TestAddressRepository_ListAddresses(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	aarav := createCustomer(t, db, "Aarav", "Sharma", "9000000001", nil)
	a1 := createAddress(t, db, aarav.ID, "Pune", "MH", "411001", true)
	a2 := createAddress(t, db, aarav.ID, "Pune", "MH", "411002", false)
	priya := createCustomer(t, db, "Priya", "Mehta", "9000000002", nil)
	p1 := createAddress(t, db, priya.ID, "Pune", "MH", "411001", false)
	p2 := createAddress(t, db, priya.ID, "Mumbai", "MH", "400001", true)

	ids := func(addresses []*entity.Address) []int64 {
		out := make([]int64, 0, len(addresses))
		for _, a := range addresses {
			out = append(out, a.ID)
		}

		return out
	}

	all, err := repo.ListAddresses(ctx, entity.AddressFilter{})
	require.NoError(t, err)
	assert.Equal(t, []int64{p2.ID, a1.ID, p1.ID, a2.ID}, ids(all))

	byCustomer, err := repo.ListAddresses(ctx, entity.AddressFilter{CustomerID: &aarav.ID})
	require.NoError(t, err)
	assert.Equal(t, []int64{a1.ID, a2.ID}, ids(byCustomer))

	byPincode, err := repo.ListAddresses(ctx, entity.AddressFilter{City: "Pune", Pincode: "411001"})
	require.NoError(t, err)
	assert.Equal(t, []int64{a1.ID, p1.ID}, ids(byPincode))

	none, err := repo.ListAddresses(ctx, entity.AddressFilter{State: "KA"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAddressRepository_UpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Vikram", "Singh", "9000000005", nil)
	address := createAddress(t, db, customer.ID, "Delhi", "DL", "110001", true)

	address.City = "New Delhi"
	address.IsPrimary = false
	require.NoError(t, repo.UpdateAddress(ctx, address))

	found, err := repo.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Delhi", found.City)
	assert.False(t, found.IsPrimary)

	require.NoError(t, repo.DeleteAddress(ctx, address.ID))
	_, err = repo.FindAddressByID(ctx, address.ID)
	assert.True(t, errors.Is(err, repository.ErrAddressNotFound))

	assert.True(t, errors.Is(repo.DeleteAddress(ctx, address.ID), repository.ErrAddressNotFound))
	assert.True(t, errors.Is(repo.UpdateAddress(ctx, address), repository.ErrAddressNotFound))
}

func TestAddressRepository_DemotePrimaryAddresses(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	customer := createCustomer(t, db, "Sneha", "Iyer", "9000000004", nil)
	oldPrimary := createAddress(t, db, customer.ID, "Chennai", "TN", "600001", true)
	newPrimary := createAddress(t, db, customer.ID, "Madurai", "TN", "625001", true)
	other := createCustomer(t, db, "Rahul", "Verma", "9000000003", nil)
	otherPrimary := createAddress(t, db, other.ID, "Pune", "MH", "411001", true)

	require.NoError(t, repo.DemotePrimaryAddresses(ctx, customer.ID, newPrimary.ID))

	got, err := repo.FindAddressByID(ctx, oldPrimary.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPrimary)

	got, err = repo.FindAddressByID(ctx, newPrimary.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPrimary)

	got, err = repo.FindAddressByID(ctx, otherPrimary.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPrimary)
}
