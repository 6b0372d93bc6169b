package model

import "time"

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID int64     `gorm:"not null;index:idx_addresses_customer_id"`
	Line1      string    `gorm:"type:varchar(255);not null"`
	Line2      *string   `gorm:"type:varchar(255)"`
	City       string    `gorm:"type:varchar(100);not null;index:idx_addresses_city_state_pincode,priority:1"`
	State      string    `gorm:"type:varchar(100);not null;index:idx_addresses_city_state_pincode,priority:2"`
	Country    string    `gorm:"type:varchar(100);not null;default:India"`
	Pincode    string    `gorm:"type:varchar(6);not null;index:idx_addresses_city_state_pincode,priority:3"`
	IsPrimary  bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
