// Package entity contains the core business objects of the storefront,
// mirroring the rows of the external relational schema.
package entity

// Customer represents one row of the customer table. CustNo is allocated by
// the registration flow, not by the store.
type Customer struct {
	CustNo  int    // Unique customer number.
	Name    string // The customer's full name.
	Email   string // Contact email.
	Phone   string // Digit-only phone number, at most 15 digits.
	Address string // Postal address.
}

// Account holds the bank account row associated with a customer number.
type Account struct {
	AccountNumber int
	BranchName    string
	Balance       float64
}
