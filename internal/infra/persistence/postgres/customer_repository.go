package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// custNoLockKey serializes customer number allocation across concurrent
// registrations via pg_advisory_xact_lock.
const custNoLockKey = 0x63757374 // "cust"

// customerRepository implements the repository.CustomerRepository interface using GORM.
type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(db *gorm.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

// List retrieves one page of customers ordered by customer number.
func (repo *customerRepository) List(ctx context.Context, limit, offset int) ([]*entity.Customer, error) {
	var customerModels []*model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Order("cust_no").
		Limit(limit).
		Offset(offset).
		Find(&customerModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	customers := make([]*entity.Customer, 0, len(customerModels))
	for _, customerM := range customerModels {
		customers = append(customers, toCustomerDomain(customerM))
	}

	return customers, nil
}

// Count returns the total number of customer rows.
func (repo *customerRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.CustomerModel{}).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count customers")
	}

	return total, nil
}

// FindByCustNo retrieves a single customer by their customer number.
func (repo *customerRepository) FindByCustNo(ctx context.Context, custNo int) (*entity.Customer, error) {
	var customerM model.CustomerModel

	if err := repo.db.WithContext(ctx).
		Where("cust_no = ?", custNo).
		First(&customerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer by cust_no")
	}

	return toCustomerDomain(&customerM), nil
}

// NextCustNo allocates the next customer number. The advisory lock is
// transaction scoped, so this must run inside txManager.Execute; the lock
// releases on commit or rollback.
func (repo *customerRepository) NextCustNo(ctx context.Context) (int, error) {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", custNoLockKey).Error; err != nil {
		return 0, errors.Wrap(err, "failed to acquire cust_no allocation lock")
	}

	var next int
	if err := repo.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(cust_no), 0) + 1 FROM customer").
		Scan(&next).Error; err != nil {
		return 0, errors.Wrap(err, "failed to allocate next cust_no")
	}

	return next, nil
}

// Create persists a new customer row.
func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	customerM := fromCustomerDomain(customer)

	if err := repo.db.WithContext(ctx).Create(customerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("customer number already allocated")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required customer information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create customer")
	}

	return nil
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		CustNo:  data.CustNo,
		Name:    data.Name,
		Email:   data.Email,
		Phone:   data.Phone,
		Address: data.Address,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		CustNo:  data.CustNo,
		Name:    data.Name,
		Email:   data.Email,
		Phone:   data.Phone,
		Address: data.Address,
	}
}
