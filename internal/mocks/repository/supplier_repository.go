package repository

import (
	"context"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/mock"
)

// MockSupplierRepository mocks repository.SupplierRepository.
type MockSupplierRepository struct {
	mock.Mock
}

func NewMockSupplierRepository() *MockSupplierRepository {
	return &MockSupplierRepository{}
}

func (m *MockSupplierRepository) ListBySKU(ctx context.Context, sku string, limit, offset int) ([]*entity.Supplier, error) {
	args := m.Called(ctx, sku, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) CountBySKU(ctx context.Context, sku string) (int64, error) {
	args := m.Called(ctx, sku)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierRepository) ExistsByTIN(ctx context.Context, tin string) (bool, error) {
	args := m.Called(ctx, tin)

	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	args := m.Called(ctx, supplier)

	return args.Error(0)
}

func (m *MockSupplierRepository) DeleteByTIN(ctx context.Context, tin string) error {
	args := m.Called(ctx, tin)

	return args.Error(0)
}

func (m *MockSupplierRepository) DeliveriesByTIN(ctx context.Context, tin string) ([]*entity.Delivery, error) {
	args := m.Called(ctx, tin)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Delivery), args.Error(1)
}

func (m *MockSupplierRepository) DeleteDeliveriesByTIN(ctx context.Context, tin string) error {
	args := m.Called(ctx, tin)

	return args.Error(0)
}
