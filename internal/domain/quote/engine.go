package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// PriceLine prices a single line. The import cost is informational and does
// not feed into the other amounts.
func PriceLine(item LineItem, p Parameters) PricedLine {
	subtotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	withMargin := subtotal.Mul(one.Add(p.ProfitMarginRate))
	return PricedLine{
		Item:             item,
		Subtotal:         subtotal,
		ImportCost:       subtotal.Mul(item.CostRate),
		AmountWithMargin: withMargin,
		AmountWithVAT:    withMargin.Mul(one.Add(p.VATRate)),
	}
}

func PriceLines(items []LineItem, p Parameters) []PricedLine {
	lines := make([]PricedLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, PriceLine(it, p))
	}
	return lines
}

// PriceQuote aggregates the VAT-inclusive amounts of all lines, then applies
// the discount and converts into the secondary currency.
func PriceQuote(items []LineItem, p Parameters) Totals {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(PriceLine(it, p).AmountWithVAT)
	}
	return totals(total, p)
}

func totals(total decimal.Decimal, p Parameters) Totals {
	discounted := total.Mul(one.Sub(p.DiscountRate))
	return Totals{
		Total:           total,
		DiscountedTotal: discounted,
		TotalSecondary:  discounted.Mul(p.ExchangeRate),
	}
}

// Compute validates the whole input before pricing anything, so a quote is
// either fully built or not at all.
func Compute(number string, customer Customer, items []LineItem, p Parameters, now time.Time) (Quote, error) {
	if err := Validate(items, p); err != nil {
		return Quote{}, err
	}
	lines := PriceLines(items, p)
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.AmountWithVAT)
	}
	return Quote{
		Number:    number,
		CreatedAt: now,
		Customer:  customer,
		Params:    p,
		Lines:     lines,
		Totals:    totals(total, p),
	}, nil
}
