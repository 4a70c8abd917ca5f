package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the standard operations for product persistence.
type ProductRepository interface {
	// List retrieves one page of products ordered by price.
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)

	// Count returns the total number of product rows.
	Count(ctx context.Context) (int64, error)

	// FindBySKU retrieves a single product by its SKU.
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// ExistsBySKU reports whether a product row with the SKU already exists.
	ExistsBySKU(ctx context.Context, sku string) (bool, error)

	// Create persists a new product row.
	Create(ctx context.Context, product *entity.Product) error

	// UpdateDescription replaces the product's description.
	UpdateDescription(ctx context.Context, sku, description string) error

	// UpdatePrice replaces the product's price.
	UpdatePrice(ctx context.Context, sku string, price float64) error
}
