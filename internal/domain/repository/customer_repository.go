// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrCustomerNotFound is a domain-specific error returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerRepository defines the standard operations for customer persistence.
type CustomerRepository interface {
	// List retrieves one page of customers ordered by customer number.
	List(ctx context.Context, limit, offset int) ([]*entity.Customer, error)

	// Count returns the total number of customer rows.
	Count(ctx context.Context) (int64, error)

	// FindByCustNo retrieves a single customer by their customer number.
	FindByCustNo(ctx context.Context, custNo int) (*entity.Customer, error)

	// NextCustNo allocates the next customer number. Must be called inside a
	// transaction; allocation is serialized with an advisory lock.
	NextCustNo(ctx context.Context) (int, error)

	// Create persists a new customer row.
	Create(ctx context.Context, customer *entity.Customer) error
}
