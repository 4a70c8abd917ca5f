package model

import "time"

// ProductModel mirrors the 'product' table. EAN is nullable.
type ProductModel struct {
	SKU         string  `gorm:"column:sku;primaryKey"`
	Name        string  `gorm:"column:name"`
	Description string  `gorm:"column:description"`
	Price       float64 `gorm:"column:price"`
	EAN         *string `gorm:"column:ean"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "product"
}

// SupplierModel mirrors the 'supplier' table.
type SupplierModel struct {
	TIN     string    `gorm:"column:tin;primaryKey"`
	Name    string    `gorm:"column:name"`
	Address string    `gorm:"column:address"`
	SKU     string    `gorm:"column:sku"`
	Date    time.Time `gorm:"column:date"`
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "supplier"
}

// DeliveryModel mirrors the 'delivery' table; rows depend on a supplier TIN.
type DeliveryModel struct {
	Address string `gorm:"column:address"`
	TIN     string `gorm:"column:tin"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "delivery"
}
