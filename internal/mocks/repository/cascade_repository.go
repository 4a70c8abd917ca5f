package repository

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCascadeRepository mocks repository.CascadeRepository.
type MockCascadeRepository struct {
	mock.Mock
}

func NewMockCascadeRepository() *MockCascadeRepository {
	return &MockCascadeRepository{}
}

func (m *MockCascadeRepository) OrderNumbersByCustomer(ctx context.Context, custNo int) ([]int, error) {
	args := m.Called(ctx, custNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int), args.Error(1)
}

func (m *MockCascadeRepository) OrderNumbersBySKU(ctx context.Context, sku string) ([]int, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]int), args.Error(1)
}

func (m *MockCascadeRepository) SupplierTINsBySKU(ctx context.Context, sku string) ([]string, error) {
	args := m.Called(ctx, sku)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCascadeRepository) CountRows(ctx context.Context, table, column string, keys any) (int64, error) {
	args := m.Called(ctx, table, column, keys)

	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCascadeRepository) DeleteRows(ctx context.Context, table, column string, keys any) (int64, error) {
	args := m.Called(ctx, table, column, keys)

	return args.Get(0).(int64), args.Error(1)
}
