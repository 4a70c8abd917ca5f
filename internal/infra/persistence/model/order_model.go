package model

import "time"

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	OrderNo int       `gorm:"column:order_no;primaryKey"`
	CustNo  int       `gorm:"column:cust_no"`
	Date    time.Time `gorm:"column:date"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// LineItemModel mirrors the 'contains' table; composite key (order_no, sku).
type LineItemModel struct {
	OrderNo int    `gorm:"column:order_no;primaryKey"`
	SKU     string `gorm:"column:sku;primaryKey"`
	Qty     int    `gorm:"column:qty"`
}

// TableName explicitly sets the table name for GORM.
func (LineItemModel) TableName() string {
	return "contains"
}

// PaymentModel mirrors the 'pay' table; a row marks the order as paid.
type PaymentModel struct {
	OrderNo int `gorm:"column:order_no;primaryKey"`
	CustNo  int `gorm:"column:cust_no"`
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "pay"
}

// ProcessModel mirrors the 'process' table, an auxiliary order dependency
// touched only by the cascading deletes.
type ProcessModel struct {
	OrderNo int `gorm:"column:order_no"`
}

// TableName explicitly sets the table name for GORM.
func (ProcessModel) TableName() string {
	return "process"
}
