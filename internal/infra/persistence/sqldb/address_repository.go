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

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// CreateAddress persists a new address for a customer.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	if addressM.Country == "" {
		addressM.Country = entity.DefaultCountry
	}

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrCustomerNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAddressCreationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.Country = addressM.Country
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id int64) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByCustomer retrieves all addresses of a customer, primary first.
func (repo *addressRepository) FindAddressesByCustomer(ctx context.Context, customerID int64) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	err := repo.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("is_primary DESC, id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by customer")
	}

	return toAddressDomains(addressModels), nil
}

// ListAddresses retrieves addresses matching the exact-match filter.
func (repo *addressRepository) ListAddresses(ctx context.Context, filter entity.AddressFilter) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	query := repo.db.WithContext(ctx).Model(&model.AddressModel{})
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.City != "" {
		query = query.Where("city = ?", filter.City)
	}
	if filter.State != "" {
		query = query.Where("state = ?", filter.State)
	}
	if filter.Pincode != "" {
		query = query.Where("pincode = ?", filter.Pincode)
	}

	if err := query.Order("is_primary DESC, id DESC").Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return toAddressDomains(addressModels), nil
}

// UpdateAddress writes the mutable fields of address and refreshes UpdatedAt.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)
	addressM.UpdatedAt = time.Now()

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{ID: address.ID}).
		Select("line1", "line2", "city", "state", "country", "pincode", "is_primary", "updated_at").
		Updates(addressM)
	if result.Error != nil {
		if isNotNullConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// CountAddressesByCustomer returns the number of addresses a customer owns.
func (repo *addressRepository) CountAddressesByCustomer(ctx context.Context, customerID int64) (int64, error) {
	var count int64

	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses by customer")
	}

	return count, nil
}

// DemotePrimaryAddresses clears the primary flag on the customer's other addresses.
func (repo *addressRepository) DemotePrimaryAddresses(ctx context.Context, customerID, keepID int64) error {
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("customer_id = ? AND id <> ? AND is_primary = ?", customerID, keepID, true).
		Updates(map[string]any{"is_primary": false, "updated_at": time.Now()}).Error
	if err != nil {
		return errors.Wrap(err, "failed to demote primary addresses")
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Line1:      data.Line1,
		Line2:      data.Line2,
		City:       data.City,
		State:      data.State,
		Country:    data.Country,
		Pincode:    data.Pincode,
		IsPrimary:  data.IsPrimary,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toAddressDomains(data []*model.AddressModel) []*entity.Address {
	addresses := make([]*entity.Address, 0, len(data))
	for _, addressM := range data {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
// An empty line2 is stored as NULL.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Line1:      data.Line1,
		Line2:      nullIfEmpty(data.Line2),
		City:       data.City,
		State:      data.State,
		Country:    data.Country,
		Pincode:    data.Pincode,
		IsPrimary:  data.IsPrimary,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
