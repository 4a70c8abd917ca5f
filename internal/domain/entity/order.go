package entity

import "time"

// Order represents one row of the orders table. Orders are created only
// through the checkout flow.
type Order struct {
	OrderNo int
	CustNo  int
	Date    time.Time
}

// LineItem represents one row of the contains table. Identity is the
// (order number, SKU) pair; one row per distinct product in an order.
type LineItem struct {
	OrderNo int
	SKU     string
	Qty     int
}

// OrderLine is a line item joined with its product for the order view.
type OrderLine struct {
	Name      string
	SKU       string
	Qty       int
	LineTotal float64 // Qty times the product's current price.
}

// Payment represents one row of the pay table. Presence of the row means the
// order has been paid.
type Payment struct {
	OrderNo int
	CustNo  int
}

// Cart is the per-session mapping from SKU to desired quantity, consumed at
// checkout.
type Cart map[string]int
