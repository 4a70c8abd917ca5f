package entity

import "time"

// Product represents one row of the product table. EAN is optional and nil
// when the barcode is unknown.
type Product struct {
	SKU         string
	Name        string
	Description string
	Price       float64
	EAN         *string
}

// Supplier represents one row of the supplier table. A supplier is attached
// to exactly one SKU and may have dependent delivery rows keyed by TIN.
type Supplier struct {
	TIN     string // Tax identification number, digit-only, at most 20 digits.
	Name    string
	Address string
	SKU     string
	Date    time.Time // Registration date.
}

// Delivery is an auxiliary row linked to a supplier's TIN. Delivery rows are
// removed before their supplier during cascading deletes.
type Delivery struct {
	Address string
	TIN     string
}
