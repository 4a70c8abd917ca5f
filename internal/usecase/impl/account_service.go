package impl

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

// Get returns the account for the customer's account number.
func (srv *accountService) Get(ctx context.Context, accountNumber int) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByAccountNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdateBalance validates the submitted balance and replaces the stored one.
func (srv *accountService) UpdateBalance(ctx context.Context, accountNumber int, input *usecase.UpdateBalanceInput) error {
	form := validation.BalanceForm{Balance: input.Balance}
	if err := form.Validate(); err != nil {
		return err
	}

	balance, err := strconv.ParseFloat(input.Balance, 64)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("Balance is required to be numeric.")
	}

	if _, err := srv.Get(ctx, accountNumber); err != nil {
		return err
	}

	if err := srv.accountRepo.UpdateBalance(ctx, accountNumber, balance); err != nil {
		srv.logger.Error("Failed to update balance", slog.Int("accountNumber", accountNumber), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Balance updated", slog.Int("accountNumber", accountNumber))

	return nil
}
