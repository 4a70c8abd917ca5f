package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterProductInput defines the submitted product registration form.
// Price arrives as the raw form string; validation owns the parse.
type RegisterProductInput struct {
	SKU         string `json:"sku" form:"sku" validate:"required"`
	Name        string `json:"name" form:"name" validate:"required"`
	Description string `json:"description" form:"description" validate:"required"`
	Price       string `json:"price" form:"price" validate:"required"`
	EAN         string `json:"ean" form:"ean"`
}

// UpdateProductInput carries the mutable product fields; nil means the field
// was not submitted and keeps its current value.
type UpdateProductInput struct {
	Description *string `json:"description" form:"description"`
	Price       *string `json:"price" form:"price"`
}

// ProductListOutput is one page of the product catalog, cheapest first.
type ProductListOutput struct {
	Products   []*entity.Product `json:"products"`
	Page       int               `json:"page"`
	TotalPages int               `json:"total_pages"`
}

// ProductDeletePreview is the read-only impact summary shown before a
// product cascading delete is committed.
type ProductDeletePreview struct {
	Product  *entity.Product `json:"product"`
	OrderNos []int           `json:"order_nos"`
	TINs     []string        `json:"tins"`
	Impact   []TableImpact   `json:"impact"`
}

// ProductUsecase defines the interface for product-related business operations.
type ProductUsecase interface {
	// List returns one page of the product catalog.
	List(ctx context.Context, page int) (*ProductListOutput, error)

	// Storefront returns one page of products for the make-order view, which
	// uses its own, smaller page size.
	Storefront(ctx context.Context, page int) (*ProductListOutput, error)

	// Register validates the form, rejects duplicate SKUs without mutating,
	// and inserts the product row.
	Register(ctx context.Context, input *RegisterProductInput) (*entity.Product, error)

	// Get returns the product record for the edit view.
	Get(ctx context.Context, sku string) (*entity.Product, error)

	// Update changes the description and/or price of the product.
	Update(ctx context.Context, sku string, input *UpdateProductInput) error

	// DeletePreview collects the rows a cascading delete would remove.
	DeletePreview(ctx context.Context, sku string) (*ProductDeletePreview, error)

	// Delete removes the product and every dependent row, children first,
	// in a single transaction.
	Delete(ctx context.Context, sku string) error
}
