package impl

import (
	"context"

	"crm/internal/domain/repository"
	"crm/internal/domain/service"
	"crm/internal/errors"
	"crm/internal/usecase"
)

type contactCardService struct {
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	qrService    service.QRCodeService
}

// NewContactCardService creates a new contact card service instance
func NewContactCardService(
	customerRepo repository.CustomerRepository,
	addressRepo repository.AddressRepository,
	qrService service.QRCodeService,
) usecase.ContactCardUsecase {
	return &contactCardService{
		customerRepo: customerRepo,
		addressRepo:  addressRepo,
		qrService:    qrService,
	}
}

// CustomerQRCode renders the customer's vCard, including the primary address, as a PNG.
func (srv *contactCardService) CustomerQRCode(ctx context.Context, customerID int64) ([]byte, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, customerID)
	if err != nil {
		return nil, translateRepoError(err, "find customer")
	}

	addresses, err := srv.addressRepo.FindAddressesByCustomer(ctx, customerID)
	if err != nil {
		return nil, translateRepoError(err, "find customer addresses")
	}
	customer.Addresses = addresses

	png, err := srv.qrService.GenerateContactCardQR(customer)
	if err != nil {
		return nil, errors.Wrap(err, "generate contact card")
	}

	return png, nil
}
