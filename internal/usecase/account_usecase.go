package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UpdateBalanceInput carries the submitted balance form value; validation
// owns the numeric parse.
type UpdateBalanceInput struct {
	Balance string `json:"balance" form:"balance" validate:"required"`
}

// AccountUsecase defines the interface for account-related business operations.
type AccountUsecase interface {
	// Get returns the account for the customer's account number.
	Get(ctx context.Context, accountNumber int) (*entity.Account, error)

	// UpdateBalance validates the submitted balance and replaces the stored one.
	UpdateBalance(ctx context.Context, accountNumber int, input *UpdateBalanceInput) error
}
