// Package validation contains the pure form checks applied before any row is
// written. Each Validate returns the first violated rule as a domain
// validation error, or nil; callers decide whether to persist or re-display
// the form.
package validation

import (
	"strconv"
	"unicode"

	domainerrors "storefront/internal/domain/errors"
)

const (
	maxPhoneDigits = 15
	maxTINDigits   = 20
)

// CustomerForm holds the submitted customer registration fields.
type CustomerForm struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Validate checks the customer form and returns the first violated rule.
func (f CustomerForm) Validate() error {
	switch {
	case f.Name == "":
		return invalid("Name is required.")
	case hasDigits(f.Name):
		return invalid("Name is required to be only characters.")
	case f.Email == "":
		return invalid("Email is required.")
	case f.Address == "":
		return invalid("Address is required.")
	case f.Phone == "":
		return invalid("Phone is required.")
	case !isDigits(f.Phone) || len(f.Phone) > maxPhoneDigits:
		return invalid("Phone is required to be max 15 digits.")
	}

	return nil
}

// ProductForm holds the submitted product registration fields. EAN is
// optional; when present it must be digit-only.
type ProductForm struct {
	SKU         string
	Name        string
	Description string
	Price       string
	EAN         string
}

// Validate checks the product form and returns the first violated rule.
func (f ProductForm) Validate() error {
	switch {
	case f.SKU == "":
		return invalid("SKU is required.")
	case f.Name == "":
		return invalid("Name is required.")
	case f.Description == "":
		return invalid("Description is required.")
	case f.Price == "":
		return invalid("Price is required.")
	case !isNumericNonZero(f.Price):
		return invalid("Price is required to be numeric.")
	case f.EAN != "" && !isDigits(f.EAN):
		return invalid("EAN is required to be numeric.")
	}

	return nil
}

// SupplierForm holds the submitted supplier registration fields.
type SupplierForm struct {
	Name    string
	TIN     string
	Address string
}

// Validate checks the supplier form and returns the first violated rule.
func (f SupplierForm) Validate() error {
	switch {
	case f.Name == "":
		return invalid("Name is required.")
	case f.Address == "":
		return invalid("Address is required.")
	case f.TIN == "":
		return invalid("TIN is required.")
	case !isDigits(f.TIN) || len(f.TIN) > maxTINDigits:
		return invalid("TIN is required to be max 20 digits.")
	}

	return nil
}

// BalanceForm holds the submitted account balance field.
type BalanceForm struct {
	Balance string
}

// Validate checks the balance form and returns the first violated rule.
func (f BalanceForm) Validate() error {
	switch {
	case f.Balance == "":
		return invalid("Balance is required.")
	case !isNumericNonZero(f.Balance):
		return invalid("Balance is required to be numeric.")
	}

	return nil
}

// PriceField checks a standalone price value against the product price
// rules, for edits that submit only a new price.
func PriceField(price string) error {
	switch {
	case price == "":
		return invalid("Price is required.")
	case !isNumericNonZero(price):
		return invalid("Price is required to be numeric.")
	}

	return nil
}

func invalid(rule string) error {
	return domainerrors.ErrValidationFailed.WithDetails(rule)
}

// isDigits reports whether s is non-empty and contains only ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

// hasDigits reports whether s contains any digit rune.
func hasDigits(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}

	return false
}

// isNumericNonZero reports whether s parses as a number other than zero.
func isNumericNonZero(s string) bool {
	v, err := strconv.ParseFloat(s, 64)

	return err == nil && v != 0
}
