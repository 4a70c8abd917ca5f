package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a
// specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction. If the function
	// returns an error, the transaction is rolled back; otherwise it is
	// committed. All repository operations within the function use the same
	// database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction, so every operation inside the transaction shares one
// database connection.
type RepositoryFactory interface {
	// NewCustomerRepository returns a CustomerRepository bound to the current transaction.
	NewCustomerRepository() CustomerRepository

	// NewProductRepository returns a ProductRepository bound to the current transaction.
	NewProductRepository() ProductRepository

	// NewSupplierRepository returns a SupplierRepository bound to the current transaction.
	NewSupplierRepository() SupplierRepository

	// NewOrderRepository returns an OrderRepository bound to the current transaction.
	NewOrderRepository() OrderRepository

	// NewAccountRepository returns an AccountRepository bound to the current transaction.
	NewAccountRepository() AccountRepository

	// NewCascadeRepository returns a CascadeRepository bound to the current transaction.
	NewCascadeRepository() CascadeRepository
}
