package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/cart"
	mockRepo "storefront/internal/mocks/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service      usecase.OrderUsecase
	orderRepo    *mockRepo.MockOrderRepository
	customerRepo *mockRepo.MockCustomerRepository
	cartRepo     repository.CartRepository
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	orderRepo := mockRepo.NewMockOrderRepository()
	customerRepo := mockRepo.NewMockCustomerRepository()
	cartRepo := cart.NewStore()

	service := NewOrderService(OrderServiceParams{
		TxManager: &mockRepo.StubTransactionManager{
			Factory: &mockRepo.StubRepositoryFactory{OrderRepo: orderRepo},
		},
		OrderRepo:    orderRepo,
		CustomerRepo: customerRepo,
		CartRepo:     cartRepo,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return orderServiceFixtures{
		service:      service,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		cartRepo:     cartRepo,
	}
}

func TestOrderService_Checkout_CreatesOneOrderAndOneLinePerItem(t *testing.T) {
	fix := createTestOrderService(t)
	ctx := context.Background()

	fix.cartRepo.SetItem("s1", "SKU1", 2)
	fix.cartRepo.SetItem("s1", "SKU2", 1)

	fix.customerRepo.On("FindByCustNo", ctx, 7).
		Return(&entity.Customer{CustNo: 7}, nil)
	fix.orderRepo.On("NextOrderNo", ctx).Return(11, nil)
	fix.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fix.orderRepo.On("CreateLineItem", ctx, mock.AnythingOfType("*entity.LineItem")).Return(nil)

	output, err := fix.service.Checkout(ctx, "s1", 7)
	require.NoError(t, err)
	require.NotNil(t, output)

	assert.Equal(t, 11, output.Order.OrderNo)
	assert.Equal(t, 7, output.Order.CustNo)
	require.Len(t, output.LineItems, 2)
	assert.Equal(t, "SKU1", output.LineItems[0].SKU)
	assert.Equal(t, 2, output.LineItems[0].Qty)
	assert.Equal(t, "SKU2", output.LineItems[1].SKU)
	assert.Equal(t, 1, output.LineItems[1].Qty)

	fix.orderRepo.AssertNumberOfCalls(t, "Create", 1)
	fix.orderRepo.AssertNumberOfCalls(t, "CreateLineItem", 2)

	assert.Empty(t, fix.cartRepo.Get("s1"), "cart should be cleared after commit")
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	fix := createTestOrderService(t)

	_, err := fix.service.Checkout(context.Background(), "s1", 7)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	fix.orderRepo.AssertNotCalled(t, "NextOrderNo", mock.Anything)
}

func TestOrderService_Checkout_UnknownCustomer(t *testing.T) {
	fix := createTestOrderService(t)
	ctx := context.Background()

	fix.cartRepo.SetItem("s1", "SKU1", 1)
	fix.customerRepo.On("FindByCustNo", ctx, 99).
		Return(nil, domainerrors.ErrCustomerNotFound)

	_, err := fix.service.Checkout(ctx, "s1", 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCustomerNotFound)

	assert.NotEmpty(t, fix.cartRepo.Get("s1"), "cart must survive a failed checkout")
}

func TestOrderService_Checkout_FailedTransactionKeepsCart(t *testing.T) {
	fix := createTestOrderService(t)
	ctx := context.Background()

	fix.cartRepo.SetItem("s1", "SKU1", 1)
	fix.customerRepo.On("FindByCustNo", ctx, 7).
		Return(&entity.Customer{CustNo: 7}, nil)
	fix.orderRepo.On("NextOrderNo", ctx).Return(11, nil)
	fix.orderRepo.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Return(errors.New("insert failed"))

	_, err := fix.service.Checkout(ctx, "s1", 7)
	require.Error(t, err)

	assert.NotEmpty(t, fix.cartRepo.Get("s1"), "cart must survive a failed checkout")
}

func TestOrderService_Status(t *testing.T) {
	fix := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{OrderNo: 11, CustNo: 7}
	lines := []*entity.OrderLine{
		{Name: "Widget", SKU: "SKU1", Qty: 2, LineTotal: 19.98},
	}

	fix.orderRepo.On("FindByOrderNo", ctx, 11).Return(order, nil)
	fix.orderRepo.On("LinesByOrder", ctx, 11).Return(lines, nil)
	fix.orderRepo.On("IsPaid", ctx, 11, 7).Return(false, nil)

	output, err := fix.service.Status(ctx, 7, 11)
	require.NoError(t, err)
	assert.Equal(t, order, output.Order)
	assert.Equal(t, lines, output.Lines)
	assert.False(t, output.Paid)
}

func TestOrderService_Status_WrongCustomer(t *testing.T) {
	fix := createTestOrderService(t)
	ctx := context.Background()

	fix.orderRepo.On("FindByOrderNo", ctx, 11).
		Return(&entity.Order{OrderNo: 11, CustNo: 7}, nil)

	_, err := fix.service.Status(ctx, 8, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_MarkPaid(t *testing.T) {
	fix := createTestOrderService(t)
	ctx := context.Background()

	fix.orderRepo.On("FindByOrderNo", ctx, 11).
		Return(&entity.Order{OrderNo: 11, CustNo: 7}, nil)
	fix.orderRepo.On("IsPaid", ctx, 11, 7).Return(false, nil)
	fix.orderRepo.On("CreatePayment", ctx, &entity.Payment{OrderNo: 11, CustNo: 7}).
		Return(nil)

	require.NoError(t, fix.service.MarkPaid(ctx, 7, 11))
	fix.orderRepo.AssertExpectations(t)
}

func TestOrderService_MarkPaid_AlreadyPaid(t *testing.T) {
	fix := createTestOrderService(t)
	ctx := context.Background()

	fix.orderRepo.On("FindByOrderNo", ctx, 11).
		Return(&entity.Order{OrderNo: 11, CustNo: 7}, nil)
	fix.orderRepo.On("IsPaid", ctx, 11, 7).Return(true, nil)

	err := fix.service.MarkPaid(ctx, 7, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAlreadyPaid)
	fix.orderRepo.AssertNotCalled(t, "CreatePayment", mock.Anything, mock.Anything)
}
