package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase defines the interface for session cart operations.
type CartUsecase interface {
	// View returns a copy of the session's cart.
	View(sessionID string) entity.Cart

	// Add merges or overwrites the quantity for one SKU after checking the
	// product exists and the quantity is positive.
	Add(ctx context.Context, sessionID, sku string, qty int) error

	// Clear discards the session's cart, used when the order page is opened
	// without an existing cart marker.
	Clear(sessionID string)
}
