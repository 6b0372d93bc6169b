package model

import "time"

// CustomerModel is the GORM-specific struct for the 'customers' table.
type CustomerModel struct {
	ID        int64          `gorm:"primaryKey;autoIncrement"`
	FirstName string         `gorm:"type:varchar(100);not null;index:idx_customers_name,priority:2"`
	LastName  string         `gorm:"type:varchar(100);not null;index:idx_customers_name,priority:1"`
	Phone     string         `gorm:"type:varchar(10);not null"`
	Email     *string        `gorm:"type:varchar(255)"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	Addresses []AddressModel `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
