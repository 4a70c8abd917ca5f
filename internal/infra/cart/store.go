// Package cart provides the in-process session cart store.
package cart

import (
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// store keeps one cart per browsing session, keyed by session id. Carts are
// transient; a restart discards them, which matches their checkout-or-abandon
// lifecycle.
type store struct {
	mu    sync.RWMutex
	carts map[string]entity.Cart
}

// NewStore is the constructor for the session cart store.
func NewStore() repository.CartRepository {
	return &store{carts: make(map[string]entity.Cart)}
}

// Get returns a copy of the session's cart so callers cannot mutate shared
// state outside SetItem/Clear.
func (s *store) Get(sessionID string) entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cart := make(entity.Cart, len(s.carts[sessionID]))
	for sku, qty := range s.carts[sessionID] {
		cart[sku] = qty
	}

	return cart
}

// SetItem merges or overwrites the quantity for one SKU.
func (s *store) SetItem(sessionID, sku string, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[sessionID]
	if !ok {
		cart = make(entity.Cart)
		s.carts[sessionID] = cart
	}
	cart[sku] = qty
}

// Clear discards the session's cart.
func (s *store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
}
