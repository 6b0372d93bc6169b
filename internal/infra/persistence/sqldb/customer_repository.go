package sqldb

import (
	"context"
	"time"

	"crm/internal/domain/entity"
	domainerrors "crm/internal/domain/errors"
	"crm/internal/domain/repository"
	"crm/internal/errors"
	"crm/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// customerRepository implements the domain.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// CreateCustomer persists a new customer and fills in its generated values.
func (repo *customerRepository) CreateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	// addresses are written by the address repository
	if err := repo.db.WithContext(ctx).Omit("Addresses").Create(customerM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCustomerCreationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	customer.ID = customerM.ID
	customer.CreatedAt = customerM.CreatedAt
	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// FindCustomerByID retrieves a single customer without its addresses.
func (repo *customerRepository) FindCustomerByID(ctx context.Context, id int64) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by id")
	}

	return toCustomerDomain(&customerM), nil
}

// FindCustomerByPhone retrieves the oldest customer recorded with phone.
func (repo *customerRepository) FindCustomerByPhone(ctx context.Context, phone string) (*entity.Customer, error) {
	var customerM model.CustomerModel
	err := repo.db.WithContext(ctx).Where("phone = ?", phone).Order("id ASC").First(&customerM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by phone")
	}

	return toCustomerDomain(&customerM), nil
}

// ListCustomers returns one page of customers matching query.Filter.
func (repo *customerRepository) ListCustomers(ctx context.Context, query entity.CustomerListQuery) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	err := repo.db.WithContext(ctx).
		Table(customersTable).
		Select("c.*").
		Scopes(newCustomerFilter(query.Filter).scope).
		Order(orderBy(query.SortBy, query.SortOrder)).
		Limit(query.PageSize).
		Offset(query.Offset()).
		Find(&customerModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// CountCustomers returns the number of customers matching filter.
func (repo *customerRepository) CountCustomers(ctx context.Context, filter entity.CustomerFilter) (int64, error) {
	var total int64

	err := repo.db.WithContext(ctx).
		Table(customersTable).
		Scopes(newCustomerFilter(filter).scope).
		Count(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return total, nil
}

// UpdateCustomer writes the mutable fields of customer and refreshes UpdatedAt.
func (repo *customerRepository) UpdateCustomer(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)
	customerM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{ID: customer.ID}).
		Select("first_name", "last_name", "phone", "email", "updated_at").
		Updates(customerM)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	customer.UpdatedAt = customerM.UpdatedAt

	return nil
}

// DeleteCustomer removes a customer. The addresses foreign key cascades.
func (repo *customerRepository) DeleteCustomer(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CustomerModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete customer")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCustomerNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toCustomerDomain converts a GORM CustomerModel to a domain Customer entity.
func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	customer := &entity.Customer{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		Email:     data.Email,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if len(data.Addresses) > 0 {
		customer.Addresses = make([]*entity.Address, 0, len(data.Addresses))
		for i := range data.Addresses {
			customer.Addresses = append(customer.Addresses, toAddressDomain(&data.Addresses[i]))
		}
	}

	return customer
}

// fromCustomerDomain converts a domain Customer entity to a GORM CustomerModel.
// An empty email is stored as NULL.
func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		ID:        data.ID,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Phone:     data.Phone,
		Email:     nullIfEmpty(data.Email),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func nullIfEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}

	return s
}
