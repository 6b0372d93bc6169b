// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"crm/internal/domain/entity"
	"crm/internal/errors"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// CreateCustomer persists a new customer and fills in its generated ID and timestamps.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a single customer without its addresses.
	FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error)

	// FindCustomerByPhone retrieves the first customer recorded with phone.
	FindCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error)

	// ListCustomers returns one page of customers matching query.Filter.
	ListCustomers(ctx context.Context, query entity.CustomerListQuery) ([]*entity.Customer, error)

	// CountCustomers returns the number of customers matching filter, ignoring pagination.
	CountCustomers(ctx context.Context, filter entity.CustomerFilter) (int64, error)

	// UpdateCustomer writes every mutable field of customer and refreshes UpdatedAt.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error

	// DeleteCustomer removes a customer; its addresses go with it.
	DeleteCustomer(ctx context.Context, id int64) error
}
