// Package entity contains the core business objects of the project.
package entity

import "time"

// Customer is a person whose contact details and addresses are kept on record.
type Customer struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Phone     string     `json:"phone"`
	Email     *string    `json:"email"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Addresses []*Address `json:"addresses,omitempty"`
}

// FullName joins first and last name.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// PrimaryAddress returns the address flagged primary, or nil.
func (c *Customer) PrimaryAddress() *Address {
	for _, a := range c.Addresses {
		if a.IsPrimary {
			return a
		}
	}

	return nil
}

// CustomerDetail is a customer together with every address it owns.
// Addresses is always present in its JSON form, even when empty.
type CustomerDetail struct {
	*Customer
	Addresses []*Address `json:"addresses"`
}

// NewCustomerDetail wraps c for the single-customer view.
func NewCustomerDetail(c *Customer) *CustomerDetail {
	addresses := c.Addresses
	if addresses == nil {
		addresses = []*Address{}
	}

	return &CustomerDetail{Customer: c, Addresses: addresses}
}
