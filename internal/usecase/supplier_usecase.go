package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// RegisterSupplierInput defines the submitted supplier registration form.
type RegisterSupplierInput struct {
	Name    string `json:"name" form:"name" validate:"required"`
	TIN     string `json:"tin" form:"tin" validate:"required"`
	Address string `json:"address" form:"address" validate:"required"`
}

// SupplierListOutput is one page of a SKU's suppliers ordered by
// registration date.
type SupplierListOutput struct {
	Suppliers  []*entity.Supplier `json:"suppliers"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}

// DeleteSupplierOutput reports the result of a supplier delete request.
// When the supplier still has delivery rows and the caller has not
// confirmed, RequiresConfirmation is true and Dependencies lists the
// dependent delivery addresses; nothing is deleted.
type DeleteSupplierOutput struct {
	Deleted              bool     `json:"deleted"`
	RequiresConfirmation bool     `json:"requires_confirmation"`
	Dependencies         []string `json:"dependencies,omitempty"`
}

// SupplierUsecase defines the interface for supplier-related business operations.
type SupplierUsecase interface {
	// ListBySKU returns one page of the SKU's suppliers.
	ListBySKU(ctx context.Context, sku string, page int) (*SupplierListOutput, error)

	// Register validates the form, rejects duplicate TINs without mutating,
	// and inserts the supplier row dated today.
	Register(ctx context.Context, sku string, input *RegisterSupplierInput) (*entity.Supplier, error)

	// Delete removes the supplier. Dependent delivery rows require explicit
	// confirmation; a confirmed delete removes them first, in one transaction.
	Delete(ctx context.Context, tin string, confirmed bool) (*DeleteSupplierOutput, error)
}
