package repository

import (
	"context"

	domainrepo "storefront/internal/domain/repository"
)

// StubTransactionManager runs the transactional function directly against a
// fixed repository factory, without any real transaction. Err, when set, is
// returned instead of running the function, simulating a failed begin.
type StubTransactionManager struct {
	Factory domainrepo.RepositoryFactory
	Err     error
}

func (m *StubTransactionManager) Execute(ctx context.Context, fn func(txRepoFactory domainrepo.RepositoryFactory) error) error {
	if m.Err != nil {
		return m.Err
	}

	return fn(m.Factory)
}

// StubRepositoryFactory hands out the configured mocks as the
// transaction-bound repositories.
type StubRepositoryFactory struct {
	CustomerRepo domainrepo.CustomerRepository
	ProductRepo  domainrepo.ProductRepository
	SupplierRepo domainrepo.SupplierRepository
	OrderRepo    domainrepo.OrderRepository
	AccountRepo  domainrepo.AccountRepository
	CascadeRepo  domainrepo.CascadeRepository
}

func (f *StubRepositoryFactory) NewCustomerRepository() domainrepo.CustomerRepository {
	return f.CustomerRepo
}

func (f *StubRepositoryFactory) NewProductRepository() domainrepo.ProductRepository {
	return f.ProductRepo
}

func (f *StubRepositoryFactory) NewSupplierRepository() domainrepo.SupplierRepository {
	return f.SupplierRepo
}

func (f *StubRepositoryFactory) NewOrderRepository() domainrepo.OrderRepository {
	return f.OrderRepo
}

func (f *StubRepositoryFactory) NewAccountRepository() domainrepo.AccountRepository {
	return f.AccountRepo
}

func (f *StubRepositoryFactory) NewCascadeRepository() domainrepo.CascadeRepository {
	return f.CascadeRepo
}
