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

// productRepository implements the repository.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// List retrieves one page of products ordered by price, matching the
// storefront's cheapest-first browsing order.
func (repo *productRepository) List(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Order("price").
		Limit(limit).
		Offset(offset).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// Count returns the total number of product rows.
func (repo *productRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count products")
	}

	return total, nil
}

// FindBySKU retrieves a single product by its SKU.
func (repo *productRepository) FindBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("sku = ?", sku).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by sku")
	}

	return toProductDomain(&productM), nil
}

// ExistsBySKU reports whether a product row with the SKU already exists.
// Used as the duplicate pre-check before registration.
func (repo *productRepository) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("sku = ?", sku).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check product existence")
	}

	return count > 0, nil
}

// Create persists a new product row.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSKUAlreadyExists.WrapMessage("sku already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// UpdateDescription replaces the product's description.
func (repo *productRepository) UpdateDescription(ctx context.Context, sku, description string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("sku = ?", sku).
		Update("description", description)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product description")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// UpdatePrice replaces the product's price.
func (repo *productRepository) UpdatePrice(ctx context.Context, sku string, price float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("sku = ?", sku).
		Update("price", price)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product price")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		SKU:         data.SKU,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		EAN:         data.EAN,
	}
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		SKU:         data.SKU,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		EAN:         data.EAN,
	}
}
