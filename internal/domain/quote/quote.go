package quote

import (
	"time"

	"github.com/shopspring/decimal"

	"iq-home/quickquote/internal/domain/catalog"
)

// LineItem is a catalog product with a quantity, as added by the user.
type LineItem struct {
	catalog.Entry
	Quantity int `json:"quantity"`
}

// Parameters are the business rates applied to every line. All rates are
// fractions (0.10 means 10%). ExchangeRate converts EUR into TRY.
type Parameters struct {
	VATRate          decimal.Decimal `json:"vat_rate"`
	ProfitMarginRate decimal.Decimal `json:"profit_margin_rate"`
	DiscountRate     decimal.Decimal `json:"discount_rate"`
	ExchangeRate     decimal.Decimal `json:"exchange_rate"`
}

type PricedLine struct {
	Item             LineItem        `json:"item"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	ImportCost       decimal.Decimal `json:"import_cost"`
	AmountWithMargin decimal.Decimal `json:"amount_with_margin"`
	AmountWithVAT    decimal.Decimal `json:"amount_with_vat"`
}

type Totals struct {
	Total           decimal.Decimal `json:"total"`
	DiscountedTotal decimal.Decimal `json:"discounted_total"`
	TotalSecondary  decimal.Decimal `json:"total_secondary"`
}

// Quote is a fully priced snapshot handed to renderers. Amounts keep full
// precision; rounding is up to the presentation layer.
type Quote struct {
	Number    string       `json:"number"`
	CreatedAt time.Time    `json:"created_at"`
	Customer  Customer     `json:"customer"`
	Params    Parameters   `json:"params"`
	Lines     []PricedLine `json:"lines"`
	Totals    Totals       `json:"totals"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

var (
	VAT10 = decimal.RequireFromString("0.10")
	VAT20 = decimal.RequireFromString("0.20")

	// VATRates is the enumerated set of accepted VAT rates.
	VATRates = []decimal.Decimal{VAT10, VAT20}
)

// DefaultExchangeRate is used until a live EUR→TRY rate has been fetched.
var DefaultExchangeRate = decimal.NewFromInt(37)

func DefaultParameters() Parameters {
	return Parameters{
		VATRate:          VAT10,
		ProfitMarginRate: decimal.RequireFromString("0.30"),
		DiscountRate:     decimal.Zero,
		ExchangeRate:     DefaultExchangeRate,
	}
}

// Percent converts a whole-number percentage into a fraction.
func Percent(p decimal.Decimal) decimal.Decimal {
	return p.Shift(-2)
}
