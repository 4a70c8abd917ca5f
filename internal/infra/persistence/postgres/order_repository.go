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

// orderNoLockKey serializes order number allocation across concurrent
// checkouts via pg_advisory_xact_lock.
const orderNoLockKey = 0x6f726472 // "ordr"

// orderRepository implements the repository.OrderRepository interface using GORM.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// OrderNumbersByCustomer retrieves all order numbers owned by the customer.
func (repo *orderRepository) OrderNumbersByCustomer(ctx context.Context, custNo int) ([]int, error) {
	var orderNos []int

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("cust_no = ?", custNo).
		Order("order_no").
		Pluck("order_no", &orderNos).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order numbers by customer")
	}

	return orderNos, nil
}

// FindByOrderNo retrieves a single order by its order number.
func (repo *orderRepository) FindByOrderNo(ctx context.Context, orderNo int) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("order_no = ?", orderNo).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by order_no")
	}

	return &entity.Order{
		OrderNo: orderM.OrderNo,
		CustNo:  orderM.CustNo,
		Date:    orderM.Date,
	}, nil
}

// NextOrderNo allocates the next order number. The advisory lock is
// transaction scoped, so this must run inside txManager.Execute; the lock
// releases on commit or rollback.
func (repo *orderRepository) NextOrderNo(ctx context.Context) (int, error) {
	if err := repo.db.WithContext(ctx).
		Exec("SELECT pg_advisory_xact_lock(?)", orderNoLockKey).Error; err != nil {
		return 0, errors.Wrap(err, "failed to acquire order_no allocation lock")
	}

	var next int
	if err := repo.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(order_no), 0) + 1 FROM orders").
		Scan(&next).Error; err != nil {
		return 0, errors.Wrap(err, "failed to allocate next order_no")
	}

	return next, nil
}

// Create persists a new order row.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := &model.OrderModel{
		OrderNo: order.OrderNo,
		CustNo:  order.CustNo,
		Date:    order.Date,
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCustomerNotFound.WrapMessage("order references an unknown customer")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	return nil
}

// CreateLineItem persists one contains row.
func (repo *orderRepository) CreateLineItem(ctx context.Context, item *entity.LineItem) error {
	itemM := &model.LineItemModel{
		OrderNo: item.OrderNo,
		SKU:     item.SKU,
		Qty:     item.Qty,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("line item references an unknown sku")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create line item")
	}

	return nil
}

// LinesByOrder retrieves the order's line items joined with their product;
// the line total is qty times the product's current price.
func (repo *orderRepository) LinesByOrder(ctx context.Context, orderNo int) ([]*entity.OrderLine, error) {
	var lines []*entity.OrderLine

	if err := repo.db.WithContext(ctx).
		Table("contains AS c").
		Select("p.name, p.sku, c.qty, c.qty * p.price AS line_total").
		Joins("JOIN product p ON p.sku = c.sku").
		Where("c.order_no = ?", orderNo).
		Order("p.sku").
		Scan(&lines).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find order lines")
	}

	return lines, nil
}

// IsPaid reports whether a pay row exists for the order and customer.
func (repo *orderRepository) IsPaid(ctx context.Context, orderNo, custNo int) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.PaymentModel{}).
		Where("order_no = ? AND cust_no = ?", orderNo, custNo).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check payment")
	}

	return count > 0, nil
}

// CreatePayment persists the pay row marking the order as paid.
func (repo *orderRepository) CreatePayment(ctx context.Context, payment *entity.Payment) error {
	paymentM := &model.PaymentModel{
		OrderNo: payment.OrderNo,
		CustNo:  payment.CustNo,
	}

	if err := repo.db.WithContext(ctx).Create(paymentM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAlreadyPaid.WrapMessage("payment already recorded")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderNotFound.WrapMessage("payment references an unknown order")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create payment")
	}

	return nil
}
