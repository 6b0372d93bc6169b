package service

import "crm/internal/domain/entity"

// QRCodeService defines the interface for QR code generation
type QRCodeService interface {
	// GenerateContactCardQR renders the customer's vCard as a PNG QR code
	GenerateContactCardQR(customer *entity.Customer) ([]byte, error)
}
