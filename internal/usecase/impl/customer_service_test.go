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

// customerServiceFixtures holds all test dependencies for customer service tests.
type customerServiceFixtures struct {
	service      usecase.CustomerUsecase
	customerRepo *mockRepo.MockCustomerRepository
	orderRepo    *mockRepo.MockOrderRepository
	cascadeRepo  *mockRepo.MockCascadeRepository
}

func createTestCustomerService(t *testing.T) customerServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository()
	orderRepo := mockRepo.NewMockOrderRepository()
	cascadeRepo := mockRepo.NewMockCascadeRepository()

	service := NewCustomerService(CustomerServiceParams{
		TxManager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{
				CustomerRepo: customerRepo,
				CascadeRepo:  cascadeRepo,
			},
		},
		CustomerRepo: customerRepo,
		OrderRepo:    orderRepo,
		CascadeRepo:  cascadeRepo,
		Config:       &config.Config{Pagination: config.PaginationConfig{Customers: 5}},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return customerServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		cascadeRepo:  cascadeRepo,
	}
}

func TestCustomerService_List(t *testing.T) {
	fix := createTestCustomerService(t)
	ctx := context.Background()

	customers := []*entity.Customer{{CustNo: 1}, {CustNo: 2}}
	fix.customerRepo.On("List", ctx, 5, 0).Return(customers, nil)
	fix.customerRepo.On("Count", ctx).Return(int64(12), nil)

	output, err := fix.service.List(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, customers, output.Customers)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 3, output.TotalPages)
}

func TestCustomerService_List_SecondPageOffset(t *testing.T) {
	fix := createTestCustomerService(t)
	ctx := context.Background()

	fix.customerRepo.On("List", ctx, 5, 5).Return([]*entity.Customer{}, nil)
	fix.customerRepo.On("Count", ctx).Return(int64(12), nil)

	output, err := fix.service.List(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, output.Customers)
	assert.Equal(t, 2, output.Page)
}

func TestCustomerService_Register(t *testing.T) {
	fix := createTestCustomerService(t)
	ctx := context.Background()

	fix.customerRepo.On("NextCustNo", ctx).Return(42, nil)
	fix.customerRepo.On("Create", ctx, mock.AnythingOfType("*entity.Customer")).Return(nil)

	customer, err := fix.service.Register(ctx, &usecase.RegisterCustomerInput{
		Name:    "Alice Smith",
		Email:   "alice@example.com",
		Phone:   "0123456789",
		Address: "1 Main Street",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, customer.CustNo)
	assert.Equal(t, "Alice Smith", customer.Name)
}

func TestCustomerService_Register_InvalidForm(t *testing.T) {
	fix := createTestCustomerService(t)

	_, err := fix.service.Register(context.Background(), &usecase.RegisterCustomerInput{
		Email:   "alice@example.com",
		Phone:   "0123456789",
		Address: "1 Main Street",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "Name is required.", appErr.Details())

	fix.customerRepo.AssertNotCalled(t, "NextCustNo", mock.Anything)
	fix.customerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCustomerService_Profile(t *testing.T) {
	fix := createTestCustomerService(t)
	ctx := context.Background()

	customer := &entity.Customer{CustNo: 7, Name: "Alice Smith"}
	fix.customerRepo.On("FindByCustNo", ctx, 7).Return(customer, nil)
	fix.orderRepo.On("OrderNumbersByCustomer", ctx, 7).Return([]int{3, 8}, nil)

	output, err := fix.service.Profile(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, customer, output.Customer)
	assert.Equal(t, []int{3, 8}, output.OrderNos)
}

func TestCustomerService_DeletePreview_AggregatesAllOrders(t *testing.T) {
	fix := createTestCustomerService(t)
	ctx := context.Background()

	orderNos := []int{3, 8, 9}
	fix.customerRepo.On("FindByCustNo", ctx, 7).Return(&entity.Customer{CustNo: 7}, nil)
	fix.cascadeRepo.On("OrderNumbersByCustomer", ctx, 7).Return(orderNos, nil)
	fix.cascadeRepo.On("CountRows", ctx, "pay", "order_no", orderNos).Return(int64(2), nil)
	fix.cascadeRepo.On("CountRows", ctx, "process", "order_no", orderNos).Return(int64(1), nil)
	fix.cascadeRepo.On("CountRows", ctx, "contains", "order_no", orderNos).Return(int64(5), nil)
	fix.cascadeRepo.On("CountRows", ctx, "orders", "order_no", orderNos).Return(int64(3), nil)

	preview, err := fix.service.DeletePreview(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, orderNos, preview.OrderNos)
	assert.Equal(t, []usecase.TableImpact{
		{Table: "pay", Rows: 2},
		{Table: "process", Rows: 1},
		{Table: "contains", Rows: 5},
		{Table: "orders", Rows: 3},
	}, preview.Impact)
}

func TestCustomerService_DeletePreview_NoOrders(t *testing.T) {
	fix := createTestCustomerService(t)
	ctx := context.Background()

	fix.customerRepo.On("FindByCustNo", ctx, 7).Return(&entity.Customer{CustNo: 7}, nil)
	fix.cascadeRepo.On("OrderNumbersByCustomer", ctx, 7).Return([]int{}, nil)

	preview, err := fix.service.DeletePreview(ctx, 7)
	require.NoError(t, err)
	for _, impact := range preview.Impact {
		assert.Zero(t, impact.Rows)
	}
	fix.cascadeRepo.AssertNotCalled(t, "CountRows",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCustomerService_Delete_ChildrenBeforeParents(t *testing.T) {
	fix := createTestCustomerService(t)
	ctx := context.Background()

	orderNos := []int{3}
	fix.customerRepo.On("FindByCustNo", ctx, 7).Return(&entity.Customer{CustNo: 7}, nil)
	fix.cascadeRepo.On("OrderNumbersByCustomer", ctx, 7).Return(orderNos, nil)

	var deleted []string
	for _, table := range []string{"pay", "process", "contains", "orders"} {
		table := table
		fix.cascadeRepo.On("DeleteRows", ctx, table, "order_no", orderNos).
			Run(func(mock.Arguments) { deleted = append(deleted, table) }).
			Return(int64(1), nil)
	}
	fix.cascadeRepo.On("DeleteRows", ctx, "customer", "cust_no", []int{7}).
		Run(func(mock.Arguments) { deleted = append(deleted, "customer") }).
		Return(int64(1), nil)

	require.NoError(t, fix.service.Delete(ctx, 7))
	assert.Equal(t, []string{"pay", "process", "contains", "orders", "customer"}, deleted)
}

func TestCustomerService_Delete_NotFound(t *testing.T) {
	fix := createTestCustomerService(t)
	ctx := context.Background()

	fix.customerRepo.On("FindByCustNo", ctx, 99).
		Return(nil, domainerrors.ErrCustomerNotFound)

	err := fix.service.Delete(ctx, 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)
	fix.cascadeRepo.AssertNotCalled(t, "DeleteRows",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
