// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"

	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

// keySet names the group of keys a cascade step deletes by.
type keySet int

const (
	keysOrders keySet = iota // order numbers resolved for the root
	keysTINs                 // supplier tax ids resolved for the root
	keysRoot                 // the root id itself
)

// cascadeStep is one (table, foreign-key column) pair of a deletion plan.
// Steps run strictly in order: children before parents, so the store's
// referential-integrity checks never fire.
type cascadeStep struct {
	table  string
	column string
	keys   keySet
}

// customerCascade removes everything hanging off a customer's orders before
// the orders and finally the customer row.
var customerCascade = []cascadeStep{
	{table: "pay", column: "order_no", keys: keysOrders},
	{table: "process", column: "order_no", keys: keysOrders},
	{table: "contains", column: "order_no", keys: keysOrders},
	{table: "orders", column: "order_no", keys: keysOrders},
	{table: "customer", column: "cust_no", keys: keysRoot},
}

// productCascade additionally clears the delivery and supplier rows of the
// SKU's suppliers before the product row. Suppliers are dependents, keyed by
// the resolved TINs, so the preview counts them like any other child table.
var productCascade = []cascadeStep{
	{table: "pay", column: "order_no", keys: keysOrders},
	{table: "process", column: "order_no", keys: keysOrders},
	{table: "contains", column: "order_no", keys: keysOrders},
	{table: "orders", column: "order_no", keys: keysOrders},
	{table: "delivery", column: "tin", keys: keysTINs},
	{table: "supplier", column: "tin", keys: keysTINs},
	{table: "product", column: "sku", keys: keysRoot},
}

// cascadeKeys holds the resolved key groups for one root entity.
type cascadeKeys struct {
	orderNos []int
	tins     []string
	root     any
}

// keysFor returns the key group a step deletes by and whether it is non-empty.
func (k *cascadeKeys) keysFor(step cascadeStep) (any, bool) {
	switch step.keys {
	case keysOrders:
		return k.orderNos, len(k.orderNos) > 0
	case keysTINs:
		return k.tins, len(k.tins) > 0
	default:
		return k.root, true
	}
}

// runCascade executes the plan's deletes in order. It must run inside a
// transaction so a failing step aborts every prior delete.
func runCascade(ctx context.Context, repo repository.CascadeRepository, plan []cascadeStep, keys *cascadeKeys) error {
	for _, step := range plan {
		stepKeys, ok := keys.keysFor(step)
		if !ok {
			continue
		}
		if _, err := repo.DeleteRows(ctx, step.table, step.column, stepKeys); err != nil {
			return err
		}
	}

	return nil
}

// previewCascade runs only the read half of the plan: per-table counts of
// the rows a delete would remove, across all resolved keys. The root step is
// excluded; callers report the root record separately.
func previewCascade(ctx context.Context, repo repository.CascadeRepository, plan []cascadeStep, keys *cascadeKeys) ([]usecase.TableImpact, error) {
	impact := make([]usecase.TableImpact, 0, len(plan))
	for _, step := range plan {
		if step.keys == keysRoot {
			continue
		}
		stepKeys, ok := keys.keysFor(step)
		if !ok {
			impact = append(impact, usecase.TableImpact{Table: step.table, Rows: 0})

			continue
		}
		rows, err := repo.CountRows(ctx, step.table, step.column, stepKeys)
		if err != nil {
			return nil, err
		}
		impact = append(impact, usecase.TableImpact{Table: step.table, Rows: rows})
	}

	return impact, nil
}
