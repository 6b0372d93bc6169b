// Package impl contains the implementation of the application's business logic.
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

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	addressRepo  repository.AddressRepository
	validator    *validation.Validator
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for CustomerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	AddressRepo  repository.AddressRepository
	Validator    *validation.Validator
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		addressRepo:  params.AddressRepo,
		validator:    params.Validator,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *customerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCustomer stores a customer and, when given, its first address in one transaction.
func (srv *customerService) CreateCustomer(ctx context.Context, input *usecase.CreateCustomerInput) (*entity.Customer, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	input.Normalize()
	if err := srv.validator.Struct(input); err != nil {
		return nil, err
	}

	customer := &entity.Customer{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     optionalString(input.Email),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.CustomerRepo().CreateCustomer(ctx, customer); err != nil {
			return err
		}

		if input.Address == nil {
			return nil
		}

		address := newAddress(customer.ID, input.Address)
		if err := repoFactory.AddressRepo().CreateAddress(ctx, address); err != nil {
			return err
		}
		customer.Addresses = []*entity.Address{address}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("failed to create customer", slog.Any("error", err))

		return nil, translateRepoError(err, "create customer")
	}

	srv.log(ctx).Info("Customer created",
		slog.Int64("customerID", customer.ID),
		slog.Int("addresses", len(customer.Addresses)),
	)

	return customer, nil
}

// GetCustomer returns the customer with every address it owns.
func (srv *customerService) GetCustomer(ctx context.Context, id int64) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "find customer")
	}

	addresses, err := srv.addressRepo.FindAddressesByCustomer(ctx, id)
	if err != nil {
		return nil, translateRepoError(err, "find customer addresses")
	}
	customer.Addresses = addresses

	return customer, nil
}

// ListCustomers returns one page of the filtered, sorted listing.
func (srv *customerService) ListCustomers(ctx context.Context, query entity.CustomerListQuery) (*entity.CustomerPage, error) {
	query = clampListQuery(query)

	total, err := srv.customerRepo.CountCustomers(ctx, query.Filter)
	if err != nil {
		return nil, translateRepoError(err, "count customers")
	}

	if total == 0 || int64(query.Offset()) >= total {
		return entity.NewCustomerPage(query, nil, total), nil
	}

	customers, err := srv.customerRepo.ListCustomers(ctx, query)
	if err != nil {
		return nil, translateRepoError(err, "list customers")
	}

	srv.log(ctx).Debug("Customers listed",
		slog.Int("page", query.Page),
		slog.Int("pageSize", query.PageSize),
		slog.Int64("total", total),
	)

	return entity.NewCustomerPage(query, customers, total), nil
}

// UpdateCustomer applies the supplied fields only.
func (srv *customerService) UpdateCustomer(ctx context.Context, id int64, input *usecase.UpdateCustomerInput) (*entity.Customer, bool, error) {
	customer, err := srv.customerRepo.FindCustomerByID(ctx, id)
	if err != nil {
		return nil, false, translateRepoError(err, "find customer")
	}

	if input == nil || input.IsEmpty() {
		return customer, false, nil
	}

	input.Normalize()
	if err := srv.validator.Struct(input); err != nil {
		return nil, false, err
	}

	applyCustomerUpdates(customer, input)

	if err := srv.customerRepo.UpdateCustomer(ctx, customer); err != nil {
		return nil, false, translateRepoError(err, "update customer")
	}

	srv.log(ctx).Info("Customer updated", slog.Int64("customerID", id))

	return customer, true, nil
}

// DeleteCustomer removes the customer and reports how many addresses went with it.
func (srv *customerService) DeleteCustomer(ctx context.Context, id int64) (int64, error) {
	var removed int64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		count, err := repoFactory.AddressRepo().CountAddressesByCustomer(ctx, id)
		if err != nil {
			return err
		}

		if err := repoFactory.CustomerRepo().DeleteCustomer(ctx, id); err != nil {
			return err
		}
		removed = count

		return nil
	})
	if err != nil {
		return 0, translateRepoError(err, "delete customer")
	}

	srv.log(ctx).Info("Customer deleted",
		slog.Int64("customerID", id),
		slog.Int64("removedAddresses", removed),
	)

	return removed, nil
}

func applyCustomerUpdates(customer *entity.Customer, input *usecase.UpdateCustomerInput) {
	if input.FirstName != nil {
		customer.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		customer.LastName = *input.LastName
	}
	if input.Phone != nil {
		customer.Phone = *input.Phone
	}
	if input.Email != nil {
		customer.Email = optionalString(*input.Email)
	}
}

func clampListQuery(query entity.CustomerListQuery) entity.CustomerListQuery {
	query.Page = min(max(query.Page, 1), entity.MaxPage)
	if query.PageSize <= 0 {
		query.PageSize = entity.DefaultPageSize
	}
	query.PageSize = min(query.PageSize, entity.MaxPageSize)
	query.SortBy = entity.ParseSortColumn(string(query.SortBy))
	query.SortOrder = entity.ParseSortOrder(string(query.SortOrder))

	return query
}
