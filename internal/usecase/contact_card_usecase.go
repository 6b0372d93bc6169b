package usecase

import "context"

// ContactCardUsecase renders a customer as a scannable contact card.
type ContactCardUsecase interface {
	// CustomerQRCode returns a PNG QR code encoding the customer's vCard.
	CustomerQRCode(ctx context.Context, customerID int64) ([]byte, error)
}
