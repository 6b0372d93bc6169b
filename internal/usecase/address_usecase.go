package usecase

import (
	"context"
	"strings"

	"crm/internal/domain/entity"
)

// AddressInput represents the input for adding an address
type AddressInput struct {
	Line1     string `json:"line1" validate:"required,min=3"`
	Line2     string `json:"line2"`
	City      string `json:"city" validate:"required,min=2"`
	State     string `json:"state" validate:"required,min=2"`
	Country   string `json:"country"`
	Pincode   string `json:"pincode" validate:"required,pincode"`
	IsPrimary bool   `json:"is_primary"`
}

// Normalize trims text fields and applies the default country.
func (in *AddressInput) Normalize() {
	in.Line1 = strings.TrimSpace(in.Line1)
	in.Line2 = strings.TrimSpace(in.Line2)
	in.City = strings.TrimSpace(in.City)
	in.State = strings.TrimSpace(in.State)
	in.Country = strings.TrimSpace(in.Country)
	in.Pincode = strings.TrimSpace(in.Pincode)
	if in.Country == "" {
		in.Country = entity.DefaultCountry
	}
}

// UpdateAddressInput represents a partial address update; nil fields are left untouched.
type UpdateAddressInput struct {
	Line1     *string `json:"line1,omitempty" validate:"omitempty,min=3"`
	Line2     *string `json:"line2,omitempty"`
	City      *string `json:"city,omitempty" validate:"omitempty,min=2"`
	State     *string `json:"state,omitempty" validate:"omitempty,min=2"`
	Country   *string `json:"country,omitempty"`
	Pincode   *string `json:"pincode,omitempty" validate:"omitempty,pincode"`
	IsPrimary *bool   `json:"is_primary,omitempty"`
}

// Normalize trims every supplied text field in place.
func (in *UpdateAddressInput) Normalize() {
	trimPtr(in.Line1)
	trimPtr(in.Line2)
	trimPtr(in.City)
	trimPtr(in.State)
	trimPtr(in.Country)
	trimPtr(in.Pincode)
}

// IsEmpty reports whether no field was supplied.
func (in *UpdateAddressInput) IsEmpty() bool {
	return in.Line1 == nil && in.Line2 == nil && in.City == nil && in.State == nil &&
		in.Country == nil && in.Pincode == nil && in.IsPrimary == nil
}

// AddressUsecase defines the interface for address management use cases
type AddressUsecase interface {
	ListAddresses(ctx context.Context, filter entity.AddressFilter) ([]*entity.Address, error)
	AddAddress(ctx context.Context, customerID int64, input *AddressInput) (*entity.Address, error)
	// UpdateAddress reports changed=false, with the current record, when input supplies no fields.
	UpdateAddress(ctx context.Context, id int64, input *UpdateAddressInput) (*entity.Address, bool, error)
	DeleteAddress(ctx context.Context, id int64) error
}
