// Package model contains the GORM persistence models mirroring the external
// relational schema. The schema is owned by the store, not by this service;
// the models only declare the columns and table names the SQL must honor.
package model

// CustomerModel mirrors the 'customer' table.
type CustomerModel struct {
	CustNo  int    `gorm:"column:cust_no;primaryKey"`
	Name    string `gorm:"column:name"`
	Email   string `gorm:"column:email"`
	Phone   string `gorm:"column:phone"`
	Address string `gorm:"column:address"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customer"
}

// AccountModel mirrors the 'account' table.
type AccountModel struct {
	AccountNumber int     `gorm:"column:account_number;primaryKey"`
	BranchName    string  `gorm:"column:branch_name"`
	Balance       float64 `gorm:"column:balance"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "account"
}
