package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrSupplierNotFound is a domain-specific error returned when a supplier is not found.
var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierRepository defines the standard operations for supplier persistence.
type SupplierRepository interface {
	// ListBySKU retrieves one page of the SKU's suppliers ordered by
	// registration date.
	ListBySKU(ctx context.Context, sku string, limit, offset int) ([]*entity.Supplier, error)

	// CountBySKU returns the number of supplier rows attached to the SKU.
	CountBySKU(ctx context.Context, sku string) (int64, error)

	// ExistsByTIN reports whether a supplier row with the TIN already exists.
	ExistsByTIN(ctx context.Context, tin string) (bool, error)

	// Create persists a new supplier row.
	Create(ctx context.Context, supplier *entity.Supplier) error

	// DeleteByTIN removes the supplier row with the TIN.
	DeleteByTIN(ctx context.Context, tin string) error

	// DeliveriesByTIN retrieves the delivery rows that depend on the TIN.
	DeliveriesByTIN(ctx context.Context, tin string) ([]*entity.Delivery, error)

	// DeleteDeliveriesByTIN removes all delivery rows that depend on the TIN.
	DeleteDeliveriesByTIN(ctx context.Context, tin string) error
}
