package usecase

import (
	"context"
	"strings"

	"crm/internal/domain/entity"
)

// CreateCustomerInput represents the input for creating a customer,
// optionally together with its first address.
type CreateCustomerInput struct {
	FirstName string        `json:"first_name" validate:"required,min=2"`
	LastName  string        `json:"last_name" validate:"required,min=2"`
	Phone     string        `json:"phone" validate:"required,phone"`
	Email     string        `json:"email" validate:"omitempty,email"`
	Address   *AddressInput `json:"address,omitempty"`
}

// Normalize trims every text field in place.
func (in *CreateCustomerInput) Normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Email = strings.TrimSpace(in.Email)
	if in.Address != nil {
		in.Address.Normalize()
	}
}

// UpdateCustomerInput represents a partial customer update; nil fields are left untouched.
type UpdateCustomerInput struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=2"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=2"`
	Phone     *string `json:"phone,omitempty" validate:"omitempty,phone"`
	Email     *string `json:"email,omitempty" validate:"omitempty,optional_email"`
}

// Normalize trims every supplied field in place.
func (in *UpdateCustomerInput) Normalize() {
	trimPtr(in.FirstName)
	trimPtr(in.LastName)
	trimPtr(in.Phone)
	trimPtr(in.Email)
}

// IsEmpty reports whether no field was supplied.
func (in *UpdateCustomerInput) IsEmpty() bool {
	return in.FirstName == nil && in.LastName == nil && in.Phone == nil && in.Email == nil
}

// CustomerUsecase defines the interface for customer management use cases
type CustomerUsecase interface {
	CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*entity.Customer, error)
	ListCustomers(ctx context.Context, query entity.CustomerListQuery) (*entity.CustomerPage, error)
	// UpdateCustomer reports changed=false, with the current record, when input supplies no fields.
	UpdateCustomer(ctx context.Context, id int64, input *UpdateCustomerInput) (*entity.Customer, bool, error)
	// DeleteCustomer returns the number of addresses removed along with the customer.
	DeleteCustomer(ctx context.Context, id int64) (int64, error)
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
