package entity

import "time"

// DefaultCountry is stored when an address is created without a country.
const DefaultCountry = "India"

// Address is a postal address owned by exactly one Customer.
type Address struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Line1      string    `json:"line1"`
	Line2      *string   `json:"line2"`
	City       string    `json:"city"`
	State      string    `json:"state"`
	Country    string    `json:"country"`
	Pincode    string    `json:"pincode"`
	IsPrimary  bool      `json:"is_primary"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// AddressFilter holds the optional exact-match filters of the address listing.
// A nil CustomerID means "any customer".
type AddressFilter struct {
	CustomerID *int64
	City       string
	State      string
	Pincode    string
}
