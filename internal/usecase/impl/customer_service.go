package impl

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/validation"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// customerService implements the CustomerUsecase interface.
type customerService struct {
	txManager    repository.TransactionManager
	customerRepo repository.CustomerRepository
	orderRepo    repository.OrderRepository
	cascadeRepo  repository.CascadeRepository
	perPage      int
	logger       *slog.Logger
}

// CustomerServiceParams holds dependencies for customerService, injected by Fx.
type CustomerServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CustomerRepo repository.CustomerRepository
	OrderRepo    repository.OrderRepository
	CascadeRepo  repository.CascadeRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewCustomerService is the constructor for customerService.
func NewCustomerService(params CustomerServiceParams) usecase.CustomerUsecase {
	return &customerService{
		txManager:    params.TxManager,
		customerRepo: params.CustomerRepo,
		orderRepo:    params.OrderRepo,
		cascadeRepo:  params.CascadeRepo,
		perPage:      params.Config.Pagination.Customers,
		logger:       params.Logger,
	}
}

// List returns one page of customers ordered by customer number.
func (srv *customerService) List(ctx context.Context, page int) (*usecase.CustomerListOutput, error) {
	page, offset := pageOffset(page, srv.perPage)

	customers, err := srv.customerRepo.List(ctx, srv.perPage, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list customers")
	}

	total, err := srv.customerRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	return &usecase.CustomerListOutput{
		Customers:  customers,
		Page:       page,
		TotalPages: totalPages(total, srv.perPage),
	}, nil
}

// Register validates the form, allocates the next customer number and
// inserts the row inside one transaction.
func (srv *customerService) Register(ctx context.Context, input *usecase.RegisterCustomerInput) (*entity.Customer, error) {
	form := validation.CustomerForm{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	var registered *entity.Customer
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		customerRepo := repoFactory.NewCustomerRepository()

		custNo, err := customerRepo.NextCustNo(ctx)
		if err != nil {
			return err
		}

		customer := &entity.Customer{
			CustNo:  custNo,
			Name:    input.Name,
			Email:   input.Email,
			Phone:   input.Phone,
			Address: input.Address,
		}
		if err := customerRepo.Create(ctx, customer); err != nil {
			return err
		}
		registered = customer

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to register customer", slog.String("name", input.Name), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Info("Customer registered", slog.Int("custNo", registered.CustNo))

	return registered, nil
}

// Profile returns the customer record and their order numbers.
func (srv *customerService) Profile(ctx context.Context, custNo int) (*usecase.CustomerProfileOutput, error) {
	customer, err := srv.findCustomer(ctx, custNo)
	if err != nil {
		return nil, err
	}

	orderNos, err := srv.orderRepo.OrderNumbersByCustomer(ctx, custNo)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load customer orders")
	}

	return &usecase.CustomerProfileOutput{
		Customer: customer,
		OrderNos: orderNos,
	}, nil
}

// DeletePreview collects, without deleting anything, the dependent rows a
// cascading delete of the customer would remove.
func (srv *customerService) DeletePreview(ctx context.Context, custNo int) (*usecase.CustomerDeletePreview, error) {
	customer, err := srv.findCustomer(ctx, custNo)
	if err != nil {
		return nil, err
	}

	orderNos, err := srv.cascadeRepo.OrderNumbersByCustomer(ctx, custNo)
	if err != nil {
		return nil, err
	}

	keys := &cascadeKeys{orderNos: orderNos, root: []int{custNo}}
	impact, err := previewCascade(ctx, srv.cascadeRepo, customerCascade, keys)
	if err != nil {
		return nil, err
	}

	return &usecase.CustomerDeletePreview{
		Customer: customer,
		OrderNos: orderNos,
		Impact:   impact,
	}, nil
}

// Delete removes the customer and every dependent row, children first, in a
// single transaction.
func (srv *customerService) Delete(ctx context.Context, custNo int) error {
	if _, err := srv.findCustomer(ctx, custNo); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cascadeRepo := repoFactory.NewCascadeRepository()

		orderNos, err := cascadeRepo.OrderNumbersByCustomer(ctx, custNo)
		if err != nil {
			return err
		}

		keys := &cascadeKeys{orderNos: orderNos, root: []int{custNo}}

		return runCascade(ctx, cascadeRepo, customerCascade, keys)
	})
	if err != nil {
		srv.logger.Error("Failed to delete customer", slog.Int("custNo", custNo), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Customer deleted", slog.Int("custNo", custNo))

	return nil
}

// findCustomer loads the customer, translating the persistence sentinel into
// the API-visible not-found error.
func (srv *customerService) findCustomer(ctx context.Context, custNo int) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByCustNo(ctx, custNo)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	return customer, nil
}
