package impl

import (
	"context"
	"log/slog"
	"strconv"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productService implements the ProductUsecase interface.
type productService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	cascadeRepo repository.CascadeRepository
	perPage     int
	storefront  int
	logger      *slog.Logger
}

// ProductServiceParams holds dependencies for productService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	CascadeRepo repository.CascadeRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		cascadeRepo: params.CascadeRepo,
		perPage:     params.Config.Pagination.Products,
		storefront:  params.Config.Pagination.Storefront,
		logger:      params.Logger,
	}
}

// List returns one page of the product catalog, cheapest first.
func (srv *productService) List(ctx context.Context, page int) (*usecase.ProductListOutput, error) {
	return srv.list(ctx, page, srv.perPage)
}

// Storefront returns one page of products for the make-order view.
func (srv *productService) Storefront(ctx context.Context, page int) (*usecase.ProductListOutput, error) {
	return srv.list(ctx, page, srv.storefront)
}

func (srv *productService) list(ctx context.Context, page, perPage int) (*usecase.ProductListOutput, error) {
	page, offset := pageOffset(page, perPage)

	products, err := srv.productRepo.List(ctx, perPage, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	total, err := srv.productRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count products")
	}

	return &usecase.ProductListOutput{
		Products:   products,
		Page:       page,
		TotalPages: totalPages(total, perPage),
	}, nil
}

// Register validates the form, rejects duplicate SKUs without mutating, and
// inserts the product row.
func (srv *productService) Register(ctx context.Context, input *usecase.RegisterProductInput) (*entity.Product, error) {
	form := validation.ProductForm{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		EAN:         input.EAN,
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	exists, err := srv.productRepo.ExistsBySKU(ctx, input.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domainerrors.ErrSKUAlreadyExists
	}

	price, err := strconv.ParseFloat(input.Price, 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Price is required to be numeric.")
	}

	product := &entity.Product{
		SKU:         input.SKU,
		Name:        input.Name,
		Description: input.Description,
		Price:       price,
	}
	if input.EAN != "" {
		ean := input.EAN
		product.EAN = &ean
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		srv.logger.Error("Failed to register product", slog.String("sku", input.SKU), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Product registered", slog.String("sku", product.SKU))

	return product, nil
}

// Get returns the product record for the edit view.
func (srv *productService) Get(ctx context.Context, sku string) (*entity.Product, error) {
	return findProduct(ctx, srv.productRepo, sku)
}

// Update changes the description and/or price of the product. Fields not
// submitted keep their current value.
func (srv *productService) Update(ctx context.Context, sku string, input *usecase.UpdateProductInput) error {
	if input.Description == nil && input.Price == nil {
		return nil
	}

	if input.Description != nil {
		if err := srv.productRepo.UpdateDescription(ctx, sku, *input.Description); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return err
		}
	}

	if input.Price != nil {
		if err := validation.PriceField(*input.Price); err != nil {
			return err
		}
		price, err := strconv.ParseFloat(*input.Price, 64)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails("Price is required to be numeric.")
		}
		if err := srv.productRepo.UpdatePrice(ctx, sku, price); err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound
			}

			return err
		}
	}

	return nil
}

// DeletePreview collects, without deleting anything, the dependent rows a
// cascading delete of the product would remove.
func (srv *productService) DeletePreview(ctx context.Context, sku string) (*usecase.ProductDeletePreview, error) {
	product, err := findProduct(ctx, srv.productRepo, sku)
	if err != nil {
		return nil, err
	}

	keys, err := srv.resolveProductKeys(ctx, srv.cascadeRepo, sku)
	if err != nil {
		return nil, err
	}

	impact, err := previewCascade(ctx, srv.cascadeRepo, productCascade, keys)
	if err != nil {
		return nil, err
	}

	return &usecase.ProductDeletePreview{
		Product:  product,
		OrderNos: keys.orderNos,
		TINs:     keys.tins,
		Impact:   impact,
	}, nil
}

// Delete removes the product and every dependent row, children first, in a
// single transaction. Orders that contained the product are removed wholly;
// their remaining rows would otherwise violate the contains foreign key.
func (srv *productService) Delete(ctx context.Context, sku string) error {
	if _, err := findProduct(ctx, srv.productRepo, sku); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cascadeRepo := repoFactory.NewCascadeRepository()

		keys, err := srv.resolveProductKeys(ctx, cascadeRepo, sku)
		if err != nil {
			return err
		}

		return runCascade(ctx, cascadeRepo, productCascade, keys)
	})
	if err != nil {
		srv.logger.Error("Failed to delete product", slog.String("sku", sku), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Product deleted", slog.String("sku", sku))

	return nil
}

func (srv *productService) resolveProductKeys(ctx context.Context, cascadeRepo repository.CascadeRepository, sku string) (*cascadeKeys, error) {
	orderNos, err := cascadeRepo.OrderNumbersBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	tins, err := cascadeRepo.SupplierTINsBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}

	return &cascadeKeys{orderNos: orderNos, tins: tins, root: []string{sku}}, nil
}

// findProduct loads the product, translating the persistence sentinel into
// the API-visible not-found error. Shared with the services that gate on a
// product's existence.
func findProduct(ctx context.Context, productRepo repository.ProductRepository, sku string) (*entity.Product, error) {
	product, err := productRepo.FindBySKU(ctx, sku)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
