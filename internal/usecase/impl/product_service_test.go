package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	cascadeRepo *mockRepo.MockCascadeRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository()
	cascadeRepo := mockRepo.NewMockCascadeRepository()

	service := NewProductService(ProductServiceParams{
		TxManager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{
				ProductRepo: productRepo,
				CascadeRepo: cascadeRepo,
			},
		},
		ProductRepo: productRepo,
		CascadeRepo: cascadeRepo,
		Config:      &config.Config{Pagination: config.PaginationConfig{Products: 5, Storefront: 4}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
		cascadeRepo: cascadeRepo,
	}
}

func TestProductService_List_UsesCatalogPageSize(t *testing.T) {
	fix := createTestProductService(t)
	ctx := context.Background()

	fix.productRepo.On("List", ctx, 5, 0).Return([]*entity.Product{{SKU: "SKU1"}}, nil)
	fix.productRepo.On("Count", ctx).Return(int64(6), nil)

	output, err := fix.service.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, output.TotalPages)
}

func TestProductService_Storefront_UsesSmallerPageSize(t *testing.T) {
	fix := createTestProductService(t)
	ctx := context.Background()

	fix.productRepo.On("List", ctx, 4, 4).Return([]*entity.Product{}, nil)
	fix.productRepo.On("Count", ctx).Return(int64(6), nil)

	output, err := fix.service.Storefront(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, output.Page)
	assert.Equal(t, 2, output.TotalPages)
}

func TestProductService_Register(t *testing.T) {
	fix := createTestProductService(t)
	ctx := context.Background()

	fix.productRepo.On("ExistsBySKU", ctx, "SKU1").Return(false, nil)
	fix.productRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).Return(nil)

	product, err := fix.service.Register(ctx, &usecase.RegisterProductInput{
		SKU:         "SKU1",
		Name:        "Widget",
		Description: "A widget",
		Price:       "9.99",
	})
	require.NoError(t, err)
	assert.Equal(t, "SKU1", product.SKU)
	assert.InDelta(t, 9.99, product.Price, 0.0001)
	assert.Nil(t, product.EAN)
}

func TestProductService_Register_DuplicateSKU(t *testing.T) {
	fix := createTestProductService(t)
	ctx := context.Background()

	fix.productRepo.On("ExistsBySKU", ctx, "SKU1").Return(true, nil)

	_, err := fix.service.Register(ctx, &usecase.RegisterProductInput{
		SKU:         "SKU1",
		Name:        "Widget",
		Description: "A widget",
		Price:       "9.99",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSKUAlreadyExists)
	fix.productRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_Register_InvalidPrice(t *testing.T) {
	fix := createTestProductService(t)

	_, err := fix.service.Register(context.Background(), &usecase.RegisterProductInput{
		SKU:         "SKU1",
		Name:        "Widget",
		Description: "A widget",
		Price:       "free",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "Price is required to be numeric.", appErr.Details())
	fix.productRepo.AssertNotCalled(t, "ExistsBySKU", mock.Anything, mock.Anything)
}

func TestProductService_Update_PriceOnly(t *testing.T) {
	fix := createTestProductService(t)
	ctx := context.Background()

	fix.productRepo.On("UpdatePrice", ctx, "SKU1", 19.5).Return(nil)

	price := "19.5"
	err := fix.service.Update(ctx, "SKU1", &usecase.UpdateProductInput{Price: &price})
	require.NoError(t, err)
	fix.productRepo.AssertNotCalled(t, "UpdateDescription", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_Update_InvalidPrice(t *testing.T) {
	fix := createTestProductService(t)

	price := "0"
	err := fix.service.Update(context.Background(), "SKU1", &usecase.UpdateProductInput{Price: &price})
	require.Error(t, err)
	fix.productRepo.AssertNotCalled(t, "UpdatePrice", mock.Anything, mock.Anything, mock.Anything)
}

func TestProductService_DeletePreview_AggregatesAllKeys(t *testing.T) {
	fix := createTestProductService(t)
	ctx := context.Background()

	orderNos := []int{3, 8}
	tins := []string{"111", "222"}
	fix.productRepo.On("FindBySKU", ctx, "SKU1").Return(&entity.Product{SKU: "SKU1"}, nil)
	fix.cascadeRepo.On("OrderNumbersBySKU", ctx, "SKU1").Return(orderNos, nil)
	fix.cascadeRepo.On("SupplierTINsBySKU", ctx, "SKU1").Return(tins, nil)
	fix.cascadeRepo.On("CountRows", ctx, "pay", "order_no", orderNos).Return(int64(1), nil)
	fix.cascadeRepo.On("CountRows", ctx, "process", "order_no", orderNos).Return(int64(0), nil)
	fix.cascadeRepo.On("CountRows", ctx, "contains", "order_no", orderNos).Return(int64(4), nil)
	fix.cascadeRepo.On("CountRows", ctx, "orders", "order_no", orderNos).Return(int64(2), nil)
	fix.cascadeRepo.On("CountRows", ctx, "delivery", "tin", tins).Return(int64(3), nil)
	fix.cascadeRepo.On("CountRows", ctx, "supplier", "tin", tins).Return(int64(2), nil)

	preview, err := fix.service.DeletePreview(ctx, "SKU1")
	require.NoError(t, err)
	assert.Equal(t, orderNos, preview.OrderNos)
	assert.Equal(t, tins, preview.TINs)
	assert.Equal(t, []usecase.TableImpact{
		{Table: "pay", Rows: 1},
		{Table: "process", Rows: 0},
		{Table: "contains", Rows: 4},
		{Table: "orders", Rows: 2},
		{Table: "delivery", Rows: 3},
		{Table: "supplier", Rows: 2},
	}, preview.Impact)
}

func TestProductService_Delete_ChildrenBeforeParents(t *testing.T) {
	fix := createTestProductService(t)
	ctx := context.Background()

	orderNos := []int{3}
	tins := []string{"111"}
	fix.productRepo.On("FindBySKU", ctx, "SKU1").Return(&entity.Product{SKU: "SKU1"}, nil)
	fix.cascadeRepo.On("OrderNumbersBySKU", ctx, "SKU1").Return(orderNos, nil)
	fix.cascadeRepo.On("SupplierTINsBySKU", ctx, "SKU1").Return(tins, nil)

	var deleted []string
	record := func(table string) func(mock.Arguments) {
		return func(mock.Arguments) { deleted = append(deleted, table) }
	}
	for _, table := range []string{"pay", "process", "contains", "orders"} {
		fix.cascadeRepo.On("DeleteRows", ctx, table, "order_no", orderNos).
			Run(record(table)).Return(int64(1), nil)
	}
	fix.cascadeRepo.On("DeleteRows", ctx, "delivery", "tin", tins).
		Run(record("delivery")).Return(int64(1), nil)
	fix.cascadeRepo.On("DeleteRows", ctx, "supplier", "tin", tins).
		Run(record("supplier")).Return(int64(1), nil)
	fix.cascadeRepo.On("DeleteRows", ctx, "product", "sku", []string{"SKU1"}).
		Run(record("product")).Return(int64(1), nil)

	require.NoError(t, fix.service.Delete(ctx, "SKU1"))
	assert.Equal(t,
		[]string{"pay", "process", "contains", "orders", "delivery", "supplier", "product"},
		deleted)
}
