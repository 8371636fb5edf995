package quote

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError describes the first input that falls outside the domain
// the engine is defined on. Index is the line position, or -1 for parameters.
type ValidationError struct {
	Field  string
	Index  int
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("item %d: %s %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func Validate(items []LineItem, p Parameters) error {
	for i, it := range items {
		if err := validateItem(i, it); err != nil {
			return err
		}
	}
	return ValidateParameters(p)
}

func ValidateParameters(p Parameters) error {
	if !allowedVAT(p.VATRate) {
		return &ValidationError{Field: "vat_rate", Index: -1, Reason: fmt.Sprintf("must be one of %s", vatList())}
	}
	if p.ProfitMarginRate.IsNegative() {
		return &ValidationError{Field: "profit_margin_rate", Index: -1, Reason: "must not be negative"}
	}
	if p.DiscountRate.IsNegative() || p.DiscountRate.GreaterThan(one) {
		return &ValidationError{Field: "discount_rate", Index: -1, Reason: "must be between 0 and 1"}
	}
	if !p.ExchangeRate.IsPositive() {
		return &ValidationError{Field: "exchange_rate", Index: -1, Reason: "must be positive"}
	}
	return nil
}

func validateItem(i int, it LineItem) error {
	switch {
	case it.Quantity <= 0:
		return &ValidationError{Field: "quantity", Index: i, Reason: "must be positive"}
	case it.UnitPrice.IsNegative():
		return &ValidationError{Field: "unit_price", Index: i, Reason: "must not be negative"}
	case it.CostRate.IsNegative() || it.CostRate.GreaterThan(one):
		return &ValidationError{Field: "cost_rate", Index: i, Reason: "must be between 0 and 1"}
	}
	return nil
}

func allowedVAT(r decimal.Decimal) bool {
	for _, v := range VATRates {
		if v.Equal(r) {
			return true
		}
	}
	return false
}

func vatList() string {
	parts := make([]string, 0, len(VATRates))
	for _, v := range VATRates {
		parts = append(parts, v.Shift(2).String()+"%")
	}
	return strings.Join(parts, ", ")
}
