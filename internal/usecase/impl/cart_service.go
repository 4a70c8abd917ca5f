package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// CartServiceParams holds dependencies for cartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo    repository.CartRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:    params.CartRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

// View returns a copy of the session's cart.
func (srv *cartService) View(sessionID string) entity.Cart {
	return srv.cartRepo.Get(sessionID)
}

// Add stores the quantity for one SKU after checking the product exists.
// A non-positive quantity is a validation error.
func (srv *cartService) Add(ctx context.Context, sessionID, sku string, qty int) error {
	if qty < 1 {
		return domainerrors.ErrValidationFailed.WithDetails("Quantity is required to be at least 1.")
	}

	if _, err := findProduct(ctx, srv.productRepo, sku); err != nil {
		return err
	}

	srv.cartRepo.SetItem(sessionID, sku, qty)

	return nil
}

// Clear discards the session's cart.
func (srv *cartService) Clear(sessionID string) {
	srv.cartRepo.Clear(sessionID)
}
