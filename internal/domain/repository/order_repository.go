package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrOrderNotFound is a domain-specific error returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the standard operations for order persistence.
type OrderRepository interface {
	// OrderNumbersByCustomer retrieves all order numbers owned by the customer.
	OrderNumbersByCustomer(ctx context.Context, custNo int) ([]int, error)

	// FindByOrderNo retrieves a single order by its order number.
	FindByOrderNo(ctx context.Context, orderNo int) (*entity.Order, error)

	// NextOrderNo allocates the next order number. Must be called inside a
	// transaction; allocation is serialized with an advisory lock.
	NextOrderNo(ctx context.Context) (int, error)

	// Create persists a new order row.
	Create(ctx context.Context, order *entity.Order) error

	// CreateLineItem persists one contains row.
	CreateLineItem(ctx context.Context, item *entity.LineItem) error

	// LinesByOrder retrieves the order's line items joined with their product.
	LinesByOrder(ctx context.Context, orderNo int) ([]*entity.OrderLine, error)

	// IsPaid reports whether a pay row exists for the order and customer.
	IsPaid(ctx context.Context, orderNo, custNo int) (bool, error)

	// CreatePayment persists the pay row marking the order as paid.
	CreatePayment(ctx context.Context, payment *entity.Payment) error
}
