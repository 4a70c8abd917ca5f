// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterCustomerInput defines the submitted customer registration form.
type RegisterCustomerInput struct {
	Name    string `json:"name" form:"name" validate:"required"`
	Email   string `json:"email" form:"email" validate:"required"`
	Phone   string `json:"phone" form:"phone" validate:"required"`
	Address string `json:"address" form:"address" validate:"required"`
}

// --- Output DTOs ---

// CustomerListOutput is one page of the customer index.
type CustomerListOutput struct {
	Customers  []*entity.Customer `json:"customers"`
	Page       int                `json:"page"`
	TotalPages int                `json:"total_pages"`
}

// CustomerProfileOutput is the customer detail view: the record plus the
// numbers of the orders the customer owns.
type CustomerProfileOutput struct {
	Customer *entity.Customer `json:"customer"`
	OrderNos []int            `json:"order_nos"`
}

// TableImpact reports how many dependent rows a cascading delete would
// remove from one table.
type TableImpact struct {
	Table string `json:"table"`
	Rows  int64  `json:"rows"`
}

// CustomerDeletePreview is the read-only impact summary shown before a
// customer cascading delete is committed.
type CustomerDeletePreview struct {
	Customer *entity.Customer `json:"customer"`
	OrderNos []int            `json:"order_nos"`
	Impact   []TableImpact    `json:"impact"`
}

// CustomerUsecase defines the interface for customer-related business
// operations. The delivery layer depends on this contract.
type CustomerUsecase interface {
	// List returns one page of customers ordered by customer number. Pages
	// beyond the last are empty, not an error.
	List(ctx context.Context, page int) (*CustomerListOutput, error)

	// Register validates the form, allocates the next customer number and
	// inserts the row, all within one transaction.
	Register(ctx context.Context, input *RegisterCustomerInput) (*entity.Customer, error)

	// Profile returns the customer record and their order numbers.
	Profile(ctx context.Context, custNo int) (*CustomerProfileOutput, error)

	// DeletePreview collects the rows a cascading delete would remove.
	DeletePreview(ctx context.Context, custNo int) (*CustomerDeletePreview, error)

	// Delete removes the customer and every dependent row, children first,
	// in a single transaction.
	Delete(ctx context.Context, custNo int) error
}
