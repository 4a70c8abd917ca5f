package repository

import "storefront/internal/domain/entity"

// CartRepository is the explicit keyed cart store: session id to cart.
// One cart exists per browsing session; implementations must be safe for
// concurrent requests.
type CartRepository interface {
	// Get returns a copy of the session's cart. An unknown session yields an
	// empty cart.
	Get(sessionID string) entity.Cart

	// SetItem merges or overwrites the quantity for one SKU.
	SetItem(sessionID, sku string, qty int)

	// Clear discards the session's cart.
	Clear(sessionID string)
}
