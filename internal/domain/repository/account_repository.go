package repository

import (
	"context"
	"errors"

	"storefront/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByAccountNumber retrieves a single account by its account number.
	FindByAccountNumber(ctx context.Context, accountNumber int) (*entity.Account, error)

	// UpdateBalance replaces the account's balance.
	UpdateBalance(ctx context.Context, accountNumber int, balance float64) error
}
