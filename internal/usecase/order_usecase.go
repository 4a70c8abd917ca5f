package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderStatusOutput is the order detail view: each line joined with its
// product plus the paid flag.
type OrderStatusOutput struct {
	Order *entity.Order       `json:"order"`
	Lines []*entity.OrderLine `json:"lines"`
	Paid  bool                `json:"paid"`
}

// CheckoutOutput returns the order created from the session's cart.
type CheckoutOutput struct {
	Order     *entity.Order      `json:"order"`
	LineItems []*entity.LineItem `json:"line_items"`
}

// OrderUsecase defines the interface for order-related business operations.
type OrderUsecase interface {
	// Status returns the order's lines and whether it has been paid.
	Status(ctx context.Context, custNo, orderNo int) (*OrderStatusOutput, error)

	// MarkPaid records the payment row for the order and customer.
	MarkPaid(ctx context.Context, custNo, orderNo int) error

	// Checkout turns the session's cart into an order: allocates the next
	// order number, inserts the order row dated today and one line item per
	// cart entry, all in one transaction. The cart is cleared only after the
	// transaction commits.
	Checkout(ctx context.Context, sessionID string, custNo int) (*CheckoutOutput, error)
}
