package postgres

import (
	"context"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// cascadeRepository implements the repository.CascadeRepository interface
// using GORM's table-by-name access, so the cascade executor can run an
// ordered deletion plan without one method per table.
type cascadeRepository struct {
	db *gorm.DB
}

// NewCascadeRepository is the constructor for cascadeRepository.
func NewCascadeRepository(db *gorm.DB) repository.CascadeRepository {
	return &cascadeRepository{db: db}
}

// OrderNumbersByCustomer resolves the order numbers owned by the customer.
func (repo *cascadeRepository) OrderNumbersByCustomer(ctx context.Context, custNo int) ([]int, error) {
	var orderNos []int

	if err := repo.db.WithContext(ctx).
		Table("orders").
		Where("cust_no = ?", custNo).
		Order("order_no").
		Pluck("order_no", &orderNos).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve order numbers by customer")
	}

	return orderNos, nil
}

// OrderNumbersBySKU resolves the order numbers that contain the SKU.
func (repo *cascadeRepository) OrderNumbersBySKU(ctx context.Context, sku string) ([]int, error) {
	var orderNos []int

	if err := repo.db.WithContext(ctx).
		Table("contains").
		Where("sku = ?", sku).
		Order("order_no").
		Pluck("order_no", &orderNos).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve order numbers by sku")
	}

	return orderNos, nil
}

// SupplierTINsBySKU resolves the TINs of the SKU's suppliers.
func (repo *cascadeRepository) SupplierTINsBySKU(ctx context.Context, sku string) ([]string, error) {
	var tins []string

	if err := repo.db.WithContext(ctx).
		Table("supplier").
		Where("sku = ?", sku).
		Order("tin").
		Pluck("tin", &tins).Error; err != nil {
		return nil, errors.Wrap(err, "failed to resolve supplier tins by sku")
	}

	return tins, nil
}

// CountRows counts the rows of table whose column matches any of keys.
func (repo *cascadeRepository) CountRows(ctx context.Context, table, column string, keys any) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Table(table).
		Where(column+" IN ?", keys).
		Count(&total).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count %s rows", table)
	}

	return total, nil
}

// DeleteRows removes the rows of table whose column matches any of keys.
// Children must be deleted before parents; the executor owns that ordering.
func (repo *cascadeRepository) DeleteRows(ctx context.Context, table, column string, keys any) (int64, error) {
	result := repo.db.WithContext(ctx).
		Exec("DELETE FROM "+table+" WHERE "+column+" IN ?", keys)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return 0, domainerrors.NewDatabaseExecuteError(result.Error, "dependent rows still reference "+table)
		}

		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+table+" rows")
	}

	return result.RowsAffected, nil
}
