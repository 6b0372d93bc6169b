package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// CreateAddress persists a new address for an existing customer.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id int64) (*entity.Address, error)

	// FindAddressesByCustomer retrieves all addresses of a customer, primary first then by ID.
	FindAddressesByCustomer(ctx context.Context, customerID int64) ([]*entity.Address, error)

	// ListAddresses retrieves addresses matching filter, primary first then newest.
	ListAddresses(ctx context.Context, filter entity.AddressFilter) ([]*entity.Address, error)

	// UpdateAddress writes every mutable field of address and refreshes UpdatedAt.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id int64) error

	// CountAddressesByCustomer returns the number of addresses a customer owns.
	CountAddressesByCustomer(ctx context.Context, customerID int64) (int64, error)

	// DemotePrimaryAddresses clears the primary flag on every address of the customer except keepID.
	DemotePrimaryAddresses(ctx context.Context, customerID, keepID int64) error
}
