package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockOrderRepository mocks repository.OrderRepository.
type MockOrderRepository struct {
	mock.Mock
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{}
}

func (m *MockOrderRepository) OrderNumbersByCustomer(ctx context.Context, custNo int) ([]int, error) {
	args := m.Called(ctx, custNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int), args.Error(1)
}

func (m *MockOrderRepository) FindByOrderNo(ctx context.Context, orderNo int) (*entity.Order, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Order), args.Error(1)
}

func (m *MockOrderRepository) NextOrderNo(ctx context.Context) (int, error) {
	args := m.Called(ctx)

	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	args := m.Called(ctx, order)

	return args.Error(0)
}

func (m *MockOrderRepository) CreateLineItem(ctx context.Context, item *entity.LineItem) error {
	args := m.Called(ctx, item)

	return args.Error(0)
}

func (m *MockOrderRepository) LinesByOrder(ctx context.Context, orderNo int) ([]*entity.OrderLine, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.OrderLine), args.Error(1)
}

func (m *MockOrderRepository) IsPaid(ctx context.Context, orderNo, custNo int) (bool, error) {
	args := m.Called(ctx, orderNo, custNo)

	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	args := m.Called(ctx, payment)

	return args.Error(0)
}
