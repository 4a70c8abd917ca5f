package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByAccountNumber retrieves a single account by its account number.
func (repo *accountRepository) FindByAccountNumber(ctx context.Context, accountNumber int) (*entity.Account, error) {
	var accountM model.AccountModel

	if err := repo.db.WithContext(ctx).
		Where("account_number = ?", accountNumber).
		First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by account_number")
	}

	return &entity.Account{
		AccountNumber: accountM.AccountNumber,
		BranchName:    accountM.BranchName,
		Balance:       accountM.Balance,
	}, nil
}

// UpdateBalance replaces the account's balance.
func (repo *accountRepository) UpdateBalance(ctx context.Context, accountNumber int, balance float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("account_number = ?", accountNumber).
		Update("balance", balance)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}
