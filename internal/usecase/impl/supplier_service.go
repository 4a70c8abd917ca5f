package impl

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// supplierService implements the SupplierUsecase interface.
type supplierService struct {
	txManager    repository.TransactionManager
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	perPage      int
	logger       *slog.Logger
}

// SupplierServiceParams holds dependencies for supplierService, injected by Fx.
type SupplierServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	SupplierRepo repository.SupplierRepository
	ProductRepo  repository.ProductRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSupplierService is the constructor for supplierService.
func NewSupplierService(params SupplierServiceParams) usecase.SupplierUsecase {
	return &supplierService{
		txManager:    params.TxManager,
		supplierRepo: params.SupplierRepo,
		productRepo:  params.ProductRepo,
		perPage:      params.Config.Pagination.Suppliers,
		logger:       params.Logger,
	}
}

// ListBySKU returns one page of the SKU's suppliers ordered by registration
// date.
func (srv *supplierService) ListBySKU(ctx context.Context, sku string, page int) (*usecase.SupplierListOutput, error) {
	if _, err := findProduct(ctx, srv.productRepo, sku); err != nil {
		return nil, err
	}

	page, offset := pageOffset(page, srv.perPage)

	suppliers, err := srv.supplierRepo.ListBySKU(ctx, sku, srv.perPage, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list suppliers")
	}

	total, err := srv.supplierRepo.CountBySKU(ctx, sku)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count suppliers")
	}

	return &usecase.SupplierListOutput{
		Suppliers:  suppliers,
		Page:       page,
		TotalPages: totalPages(total, srv.perPage),
	}, nil
}

// Register validates the form, rejects duplicate TINs without mutating, and
// inserts the supplier row dated today.
func (srv *supplierService) Register(ctx context.Context, sku string, input *usecase.RegisterSupplierInput) (*entity.Supplier, error) {
	if _, err := findProduct(ctx, srv.productRepo, sku); err != nil {
		return nil, err
	}

	form := validation.SupplierForm{
		Name:    input.Name,
		TIN:     input.TIN,
		Address: input.Address,
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	exists, err := srv.supplierRepo.ExistsByTIN(ctx, input.TIN)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.ErrTINAlreadyExists
	}

	supplier := &entity.Supplier{
		TIN:     input.TIN,
		Name:    input.Name,
		Address: input.Address,
		SKU:     sku,
		Date:    time.Now(),
	}
	if err := srv.supplierRepo.Create(ctx, supplier); err != nil {
		srv.logger.Error("Failed to register supplier", slog.String("tin", input.TIN), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Supplier registered", slog.String("tin", supplier.TIN), slog.String("sku", sku))

	return supplier, nil
}

// Delete removes the supplier row. When delivery rows still reference the
// TIN and the caller has not confirmed, nothing is deleted and the dependent
// delivery addresses are returned instead. A confirmed delete removes the
// delivery rows first, in one transaction.
func (srv *supplierService) Delete(ctx context.Context, tin string, confirmed bool) (*usecase.DeleteSupplierOutput, error) {
	deliveries, err := srv.supplierRepo.DeliveriesByTIN(ctx, tin)
	if err != nil {
		return nil, err
	}

	if len(deliveries) > 0 && !confirmed {
		addresses := make([]string, 0, len(deliveries))
		for _, delivery := range deliveries {
			addresses = append(addresses, delivery.Address)
		}

		return &usecase.DeleteSupplierOutput{
			RequiresConfirmation: true,
			Dependencies:         addresses,
		}, nil
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		supplierRepo := repoFactory.NewSupplierRepository()

		if len(deliveries) > 0 {
			if err := supplierRepo.DeleteDeliveriesByTIN(ctx, tin); err != nil {
				return err
			}
		}

		return supplierRepo.DeleteByTIN(ctx, tin)
	})
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}
		srv.logger.Error("Failed to delete supplier", slog.String("tin", tin), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Supplier deleted", slog.String("tin", tin))

	return &usecase.DeleteSupplierOutput{Deleted: true}, nil
}
