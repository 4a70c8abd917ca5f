package impl

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager    repository.TransactionManager
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	cartRepo     repository.CartRepository
	logger       *slog.Logger
}

// OrderServiceParams holds dependencies for orderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	OrderRepo    repository.OrderRepository
	CustomerRepo repository.CustomerRepository
	CartRepo     repository.CartRepository
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:    params.TxManager,
		orderRepo:    params.OrderRepo,
		customerRepo: params.CustomerRepo,
		cartRepo:     params.CartRepo,
		logger:       params.Logger,
	}
}

// Status returns the order's line items joined with their product and
// whether the order has been paid. An order number that does not belong to
// the customer is reported as not found.
func (srv *orderService) Status(ctx context.Context, custNo, orderNo int) (*usecase.OrderStatusOutput, error) {
	order, err := srv.findOrderOwnedBy(ctx, custNo, orderNo)
	if err != nil {
		return nil, err
	}

	lines, err := srv.orderRepo.LinesByOrder(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	paid, err := srv.orderRepo.IsPaid(ctx, orderNo, custNo)
	if err != nil {
		return nil, err
	}

	return &usecase.OrderStatusOutput{
		Order: order,
		Lines: lines,
		Paid:  paid,
	}, nil
}

// MarkPaid records the payment row for the order. Paying twice is rejected
// before any write.
func (srv *orderService) MarkPaid(ctx context.Context, custNo, orderNo int) error {
	if _, err := srv.findOrderOwnedBy(ctx, custNo, orderNo); err != nil {
		return err
	}

	paid, err := srv.orderRepo.IsPaid(ctx, orderNo, custNo)
	if err != nil {
		return err
	}
	if paid {
		return domainerrors.ErrAlreadyPaid
	}

	payment := &entity.Payment{OrderNo: orderNo, CustNo: custNo}
	if err := srv.orderRepo.CreatePayment(ctx, payment); err != nil {
		srv.logger.Error("Failed to record payment", slog.Int("orderNo", orderNo), slog.Any("error", err))

		return err
	}

	srv.logger.Info("Order paid", slog.Int("orderNo", orderNo), slog.Int("custNo", custNo))

	return nil
}

// Checkout turns the session's cart into an order: one orders row dated
// today plus one contains row per cart entry, all inside a transaction. The
// cart survives a failed transaction and is cleared only after commit.
func (srv *orderService) Checkout(ctx context.Context, sessionID string, custNo int) (*usecase.CheckoutOutput, error) {
	cart := srv.cartRepo.Get(sessionID)
	if len(cart) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	if _, err := srv.customerRepo.FindByCustNo(ctx, custNo); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to find customer")
	}

	skus := make([]string, 0, len(cart))
	for sku := range cart {
		skus = append(skus, sku)
	}
	sort.Strings(skus)

	var output *usecase.CheckoutOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		orderNo, err := orderRepo.NextOrderNo(ctx)
		if err != nil {
			return err
		}

		order := &entity.Order{
			OrderNo: orderNo,
			CustNo:  custNo,
			Date:    time.Now(),
		}
		if err := orderRepo.Create(ctx, order); err != nil {
			return err
		}

		items := make([]*entity.LineItem, 0, len(skus))
		for _, sku := range skus {
			item := &entity.LineItem{OrderNo: orderNo, SKU: sku, Qty: cart[sku]}
			if err := orderRepo.CreateLineItem(ctx, item); err != nil {
				return err
			}
			items = append(items, item)
		}

		output = &usecase.CheckoutOutput{Order: order, LineItems: items}

		return nil
	})
	if err != nil {
		srv.logger.Error("Failed to place order", slog.Int("custNo", custNo), slog.Any("error", err))

		return nil, err
	}

	srv.cartRepo.Clear(sessionID)

	srv.logger.Info("Order placed",
		slog.Int("orderNo", output.Order.OrderNo),
		slog.Int("custNo", custNo),
		slog.Int("items", len(output.LineItems)))

	return output, nil
}

// findOrderOwnedBy loads the order and checks it belongs to the customer.
// An order owned by someone else is indistinguishable from a missing one.
func (srv *orderService) findOrderOwnedBy(ctx context.Context, custNo, orderNo int) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByOrderNo(ctx, orderNo)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}
	if order.CustNo != custNo {
		return nil, domainerrors.ErrOrderNotFound
	}

	return order, nil
}
