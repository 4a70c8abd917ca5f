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

// supplierRepository implements the repository.SupplierRepository interface using GORM.
type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository is the constructor for supplierRepository.
func NewSupplierRepository(db *gorm.DB) repository.SupplierRepository {
	return &supplierRepository{db: db}
}

// ListBySKU retrieves one page of the SKU's suppliers ordered by registration date.
func (repo *supplierRepository) ListBySKU(ctx context.Context, sku string, limit, offset int) ([]*entity.Supplier, error) {
	var supplierModels []*model.SupplierModel

	if err := repo.db.WithContext(ctx).
		Where("sku = ?", sku).
		Order("date").
		Limit(limit).
		Offset(offset).
		Find(&supplierModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers by sku")
	}

	suppliers := make([]*entity.Supplier, 0, len(supplierModels))
	for _, supplierM := range supplierModels {
		suppliers = append(suppliers, toSupplierDomain(supplierM))
	}

	return suppliers, nil
}

// CountBySKU returns the number of supplier rows attached to the SKU.
func (repo *supplierRepository) CountBySKU(ctx context.Context, sku string) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("sku = ?", sku).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count suppliers by sku")
	}

	return total, nil
}

// ExistsByTIN reports whether a supplier row with the TIN already exists.
// Used as the duplicate pre-check before registration.
func (repo *supplierRepository) ExistsByTIN(ctx context.Context, tin string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SupplierModel{}).
		Where("tin = ?", tin).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check supplier existence")
	}

	return count > 0, nil
}

// Create persists a new supplier row.
func (repo *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	supplierM := fromSupplierDomain(supplier)

	if err := repo.db.WithContext(ctx).Create(supplierM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrTINAlreadyExists.WrapMessage("tin already exists")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("supplier references an unknown sku")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create supplier")
	}

	return nil
}

// DeleteByTIN removes the supplier row with the TIN.
func (repo *supplierRepository) DeleteByTIN(ctx context.Context, tin string) error {
	result := repo.db.WithContext(ctx).
		Where("tin = ?", tin).
		Delete(&model.SupplierModel{})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.NewDatabaseExecuteError(result.Error, "supplier still has dependent delivery rows")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete supplier")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSupplierNotFound
	}

	return nil
}

// DeliveriesByTIN retrieves the delivery rows that depend on the TIN.
func (repo *supplierRepository) DeliveriesByTIN(ctx context.Context, tin string) ([]*entity.Delivery, error) {
	var deliveryModels []*model.DeliveryModel

	if err := repo.db.WithContext(ctx).
		Where("tin = ?", tin).
		Find(&deliveryModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find deliveries by tin")
	}

	deliveries := make([]*entity.Delivery, 0, len(deliveryModels))
	for _, deliveryM := range deliveryModels {
		deliveries = append(deliveries, &entity.Delivery{
			Address: deliveryM.Address,
			TIN:     deliveryM.TIN,
		})
	}

	return deliveries, nil
}

// DeleteDeliveriesByTIN removes all delivery rows that depend on the TIN.
func (repo *supplierRepository) DeleteDeliveriesByTIN(ctx context.Context, tin string) error {
	if err := repo.db.WithContext(ctx).
		Where("tin = ?", tin).
		Delete(&model.DeliveryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete deliveries")
	}

	return nil
}

// --- Mapper Functions ---

func toSupplierDomain(data *model.SupplierModel) *entity.Supplier {
	if data == nil {
		return nil
	}

	return &entity.Supplier{
		TIN:     data.TIN,
		Name:    data.Name,
		Address: data.Address,
		SKU:     data.SKU,
		Date:    data.Date,
	}
}

func fromSupplierDomain(data *entity.Supplier) *model.SupplierModel {
	if data == nil {
		return nil
	}

	return &model.SupplierModel{
		TIN:     data.TIN,
		Name:    data.Name,
		Address: data.Address,
		SKU:     data.SKU,
		Date:    data.Date,
	}
}
