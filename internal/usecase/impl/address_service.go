package impl

import (
	"context"
	"log/slog"

	deliverycontext "crm/internal/delivery/context"
	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/domain/validation"
	"crm/internal/usecase"

	"go.uber.org/fx"
)

type addressService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	validator    *validation.Validator
	logger       *slog.Logger
}

// AddressServiceParams holds dependencies for AddressService, injected by Fx.
type AddressServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	AddressRepo  repository.AddressRepository
	Validator    *validation.Validator
	Logger       *slog.Logger
}

// NewAddressService creates a new address service instance
func NewAddressService(params AddressServiceParams) usecase.AddressUsecase {
	return &addressService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		addressRepo:  params.AddressRepo,
		validator:    params.Validator,
		logger:       params.Logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAddresses retrieves addresses matching the exact-match filter
func (srv *addressService) ListAddresses(ctx context.Context, filter entity.AddressFilter) ([]*entity.Address, error) {
	addresses, err := srv.addressRepo.ListAddresses(ctx, filter)
	if err != nil {
		return nil, translateRepoError(err, "list addresses")
	}

	return addresses, nil
}

// AddAddress adds an address to an existing customer
func (srv *addressService) AddAddress(ctx context.Context, customerID int64, input *usecase.AddressInput) (*entity.Address, error) {
	if _, err := srv.customerRepo.FindCustomerByID(ctx, customerID); err != nil {
		return nil, translateRepoError(err, "find customer")
	}

	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	input.Normalize()
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	address := newAddress(customerID, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()
		if err := addressRepo.CreateAddress(ctx, address); err != nil {
			return err
		}

		if address.IsPrimary {
			return addressRepo.DemotePrimaryAddresses(ctx, customerID, address.ID)
		}

		return nil
	})
	if err != nil {
		return nil, translateRepoError(err, "create address")
	}

	srv.log(ctx).Info("Address added",
		slog.Int64("customerID", customerID),
		slog.Int64("addressID", address.ID),
		slog.Bool("primary", address.IsPrimary),
	)

	return address, nil
}

// UpdateAddress applies the supplied fields only
func (srv *addressService) UpdateAddress(ctx context.Context, id int64, input *usecase.UpdateAddressInput) (*entity.Address, bool, error) {
	address, err := srv.addressRepo.FindAddressByID(ctx, id)
	if err != nil {
		return nil, false, translateRepoError(err, "find address")
	}

	if input == nil || input.IsEmpty() {
		return address, false, nil
	}

	input.Normalize()
	if err := srv.validator.Struct(input); err != nil {
		return nil, false, err
	}

	applyAddressUpdates(address, input)

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.AddressRepo()
		if err := addressRepo.UpdateAddress(ctx, address); err != nil {
			return err
		}

		if address.IsPrimary {
			return addressRepo.DemotePrimaryAddresses(ctx, address.CustomerID, address.ID)
		}

		return nil
	})
	if err != nil {
		return nil, false, translateRepoError(err, "update address")
	}

	srv.log(ctx).Info("Address updated", slog.Int64("addressID", id))

	return address, true, nil
}

// DeleteAddress removes a single address
func (srv *addressService) DeleteAddress(ctx context.Context, id int64) error {
	if err := srv.addressRepo.DeleteAddress(ctx, id); err != nil {
		return translateRepoError(err, "delete address")
	}

	srv.log(ctx).Info("Address deleted", slog.Int64("addressID", id))

	return nil
}

// newAddress builds the entity for a normalised input.
func newAddress(customerID int64, input *usecase.AddressInput) *entity.Address {
	country := input.Country
	if country == "" {
		country = entity.DefaultCountry
	}

	return &entity.Address{
		CustomerID: customerID,
		Line1:      input.Line1,
		Line2:      optionalString(input.Line2),
		City:       input.City,
		State:      input.State,
		Country:    country,
		Pincode:    input.Pincode,
		IsPrimary:  input.IsPrimary,
	}
}

// applyAddressUpdates applies the update input to an address
func applyAddressUpdates(address *entity.Address, input *usecase.UpdateAddressInput) {
	if input.Line1 != nil {
		address.Line1 = *input.Line1
	}
	if input.Line2 != nil {
		address.Line2 = optionalString(*input.Line2)
	}
	if input.City != nil {
		address.City = *input.City
	}
	if input.State != nil {
		address.State = *input.State
	}
	if input.Country != nil {
		address.Country = *input.Country
		if address.Country == "" {
			address.Country = entity.DefaultCountry
		}
	}
	if input.Pincode != nil {
		address.Pincode = *input.Pincode
	}
	if input.IsPrimary != nil {
		address.IsPrimary = *input.IsPrimary
	}
}
