package repository

import "context"

// CascadeRepository provides the generic row access used by the cascading
// delete executor. Tables are addressed by name so one traversal function
// can run an ordered deletion plan for any root entity type.
type CascadeRepository interface {
	// OrderNumbersByCustomer resolves the order numbers owned by the customer.
	OrderNumbersByCustomer(ctx context.Context, custNo int) ([]int, error)

	// OrderNumbersBySKU resolves the order numbers that contain the SKU.
	OrderNumbersBySKU(ctx context.Context, sku string) ([]int, error)

	// SupplierTINsBySKU resolves the TINs of the SKU's suppliers.
	SupplierTINsBySKU(ctx context.Context, sku string) ([]string, error)

	// CountRows counts the rows of table whose column matches any of keys.
	CountRows(ctx context.Context, table, column string, keys any) (int64, error)

	// DeleteRows removes the rows of table whose column matches any of keys
	// and returns the number of rows removed.
	DeleteRows(ctx context.Context, table, column string, keys any) (int64, error)
}
