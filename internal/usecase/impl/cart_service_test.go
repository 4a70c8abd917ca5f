package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/infra/cart"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCartService(t *testing.T) (usecase.CartUsecase, *mockRepo.MockProductRepository) {
	productRepo := mockRepo.NewMockProductRepository()

	service := NewCartService(CartServiceParams{
		CartRepo:    cart.NewStore(),
		ProductRepo: productRepo,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return service, productRepo
}

func TestCartService_AddAndView(t *testing.T) {
	service, productRepo := createTestCartService(t)
	ctx := context.Background()

	productRepo.On("FindBySKU", ctx, "SKU1").Return(&entity.Product{SKU: "SKU1"}, nil)

	require.NoError(t, service.Add(ctx, "s1", "SKU1", 3))
	assert.Equal(t, entity.Cart{"SKU1": 3}, service.View("s1"))
}

func TestCartService_Add_OverwritesQuantity(t *testing.T) {
	service, productRepo := createTestCartService(t)
	ctx := context.Background()

	productRepo.On("FindBySKU", ctx, "SKU1").Return(&entity.Product{SKU: "SKU1"}, nil)

	require.NoError(t, service.Add(ctx, "s1", "SKU1", 2))
	require.NoError(t, service.Add(ctx, "s1", "SKU1", 5))
	assert.Equal(t, entity.Cart{"SKU1": 5}, service.View("s1"))
}

func TestCartService_Add_UnknownProduct(t *testing.T) {
	service, productRepo := createTestCartService(t)
	ctx := context.Background()

	productRepo.On("FindBySKU", ctx, "NOPE").Return(nil, domainerrors.ErrProductNotFound)

	err := service.Add(ctx, "s1", "NOPE", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Empty(t, service.View("s1"))
}

func TestCartService_Add_NonPositiveQuantity(t *testing.T) {
	service, productRepo := createTestCartService(t)

	err := service.Add(context.Background(), "s1", "SKU1", 0)
	require.Error(t, err)
	productRepo.AssertNotCalled(t, "FindBySKU", mock.Anything, mock.Anything)
}

func TestCartService_Clear(t *testing.T) {
	service, productRepo := createTestCartService(t)
	ctx := context.Background()

	productRepo.On("FindBySKU", ctx, "SKU1").Return(&entity.Product{SKU: "SKU1"}, nil)
	require.NoError(t, service.Add(ctx, "s1", "SKU1", 2))

	service.Clear("s1")
	assert.Empty(t, service.View("s1"))
}
