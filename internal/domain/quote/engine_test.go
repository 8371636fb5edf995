package quote_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"iq-home/quickquote/internal/domain/catalog"
	"iq-home/quickquote/internal/domain/quote"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func requireDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, dec(want).Equal(got), "want %s, got %s", want, got)
}

func item(price, costRate string, qty int) quote.LineItem {
	return quote.LineItem{
		Entry:    catalog.Entry{Name: "p" + price, UnitPrice: dec(price), CostRate: dec(costRate)},
		Quantity: qty,
	}
}

func params(vat, margin, discount, rate string) quote.Parameters {
	return quote.Parameters{
		VATRate:          dec(vat),
		ProfitMarginRate: dec(margin),
		DiscountRate:     dec(discount),
		ExchangeRate:     dec(rate),
	}
}

func TestPriceLineExample(t *testing.T) {
	l := quote.PriceLine(item("72", "0.7", 2), params("0.10", "0.30", "0", "37"))
	requireDec(t, "144", l.Subtotal)
	requireDec(t, "100.8", l.ImportCost)
	requireDec(t, "187.2", l.AmountWithMargin)
	requireDec(t, "205.92", l.AmountWithVAT)
}

func TestPriceQuoteSingleItem(t *testing.T) {
	tot := quote.PriceQuote([]quote.LineItem{item("72", "0.7", 2)}, params("0.10", "0.30", "0", "37"))
	requireDec(t, "205.92", tot.Total)
	requireDec(t, "205.92", tot.DiscountedTotal)
	requireDec(t, "7619.04", tot.TotalSecondary)
}

func TestPriceQuoteTwoItemsWithDiscount(t *testing.T) {
	items := []quote.LineItem{item("11", "0.7", 3), item("16", "0.7", 1)}
	p := params("0.20", "0", "0.10", "37")

	lines := quote.PriceLines(items, p)
	require.Len(t, lines, 2)
	requireDec(t, "33", lines[0].Subtotal)
	requireDec(t, "16", lines[1].Subtotal)
	requireDec(t, "39.6", lines[0].AmountWithVAT)
	requireDec(t, "19.2", lines[1].AmountWithVAT)

	tot := quote.PriceQuote(items, p)
	requireDec(t, "58.8", tot.Total)
	requireDec(t, "52.92", tot.DiscountedTotal)
}

func TestPriceQuoteEmpty(t *testing.T) {
	tot := quote.PriceQuote(nil, quote.DefaultParameters())
	require.True(t, tot.Total.IsZero())
	require.True(t, tot.DiscountedTotal.IsZero())
	require.True(t, tot.TotalSecondary.IsZero())
}

func TestIdentities(t *testing.T) {
	items := []quote.LineItem{item("3.5", "0.2", 7), item("9000", "0.2", 1)}

	t.Run("zero discount", func(t *testing.T) {
		tot := quote.PriceQuote(items, params("0.20", "0.30", "0", "37"))
		require.True(t, tot.Total.Equal(tot.DiscountedTotal))
	})

	t.Run("zero margin and vat", func(t *testing.T) {
		for _, l := range quote.PriceLines(items, params("0", "0", "0", "1")) {
			require.True(t, l.Subtotal.Equal(l.AmountWithVAT))
			require.True(t, l.Subtotal.Equal(l.AmountWithMargin))
		}
	})
}

func TestAmountWithVATFormula(t *testing.T) {
	cases := []struct {
		price, margin, vat string
		qty                int
	}{
		{"72", "0.30", "0.10", 2},
		{"3.5", "0", "0.20", 11},
		{"16000", "1.25", "0.10", 3},
		{"0", "0.5", "0.2", 4},
	}
	for _, tc := range cases {
		l := quote.PriceLine(item(tc.price, "0.2", tc.qty), params(tc.vat, tc.margin, "0", "37"))
		want := dec(tc.price).
			Mul(decimal.NewFromInt(int64(tc.qty))).
			Mul(decimal.NewFromInt(1).Add(dec(tc.margin))).
			Mul(decimal.NewFromInt(1).Add(dec(tc.vat)))
		require.True(t, want.Equal(l.AmountWithVAT), "price=%s qty=%d", tc.price, tc.qty)
	}
}

func TestMonotonicity(t *testing.T) {
	base := params("0.10", "0.30", "0.05", "37")
	baseItems := []quote.LineItem{item("72", "0.7", 2)}
	baseTot := quote.PriceQuote(baseItems, base)

	more := func(name string, items []quote.LineItem, p quote.Parameters) {
		t.Helper()
		tot := quote.PriceQuote(items, p)
		require.True(t, tot.Total.GreaterThanOrEqual(baseTot.Total), name)
		require.True(t, tot.DiscountedTotal.GreaterThanOrEqual(baseTot.DiscountedTotal), name)
		require.True(t, tot.TotalSecondary.GreaterThan(baseTot.TotalSecondary), name)
	}

	more("quantity", []quote.LineItem{item("72", "0.7", 3)}, base)
	more("unit price", []quote.LineItem{item("84", "0.7", 2)}, base)

	p := base
	p.ProfitMarginRate = dec("0.40")
	more("margin", baseItems, p)

	p = base
	p.VATRate = dec("0.20")
	more("vat", baseItems, p)

	p = base
	p.ExchangeRate = dec("38.25")
	more("exchange rate", baseItems, p)
}

func TestCurrencyConversionIsScalar(t *testing.T) {
	for _, rate := range []string{"37", "34.9271", "1", "0.5"} {
		tot := quote.PriceQuote([]quote.LineItem{item("72", "0.7", 2), item("16", "0.7", 5)}, params("0.20", "0.30", "0.15", rate))
		back := tot.TotalSecondary.Div(dec(rate))
		require.True(t, back.Sub(tot.DiscountedTotal).Abs().LessThan(dec("0.000001")), "rate %s", rate)
	}
}

func TestPricingIsIdempotent(t *testing.T) {
	items := []quote.LineItem{item("72", "0.7", 2), item("11", "0.7", 3)}
	p := quote.DefaultParameters()
	first := quote.PriceQuote(items, p)
	second := quote.PriceQuote(items, p)
	require.True(t, first.TotalSecondary.Equal(second.TotalSecondary))
	require.Equal(t, 2, items[0].Quantity)
}

func TestImportCostDoesNotAffectTotals(t *testing.T) {
	p := quote.DefaultParameters()
	a := quote.PriceQuote([]quote.LineItem{item("72", "0.7", 2)}, p)
	b := quote.PriceQuote([]quote.LineItem{item("72", "0.2", 2)}, p)
	require.True(t, a.TotalSecondary.Equal(b.TotalSecondary))
}

func TestCompute(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	items := []quote.LineItem{item("72", "0.7", 2)}

	q, err := quote.Compute("TK-1", quote.Customer{Name: "Ayşe"}, items, quote.DefaultParameters(), now)
	require.NoError(t, err)
	require.Equal(t, "TK-1", q.Number)
	require.Equal(t, now, q.CreatedAt)
	require.Len(t, q.Lines, 1)
	requireDec(t, "205.92", q.Totals.Total)
	requireDec(t, "7619.04", q.Totals.TotalSecondary)

	bad := append(items, item("11", "0.7", 0))
	q, err = quote.Compute("TK-2", quote.Customer{}, bad, quote.DefaultParameters(), now)
	require.Error(t, err)
	require.Empty(t, q.Lines)
	require.True(t, q.Totals.Total.IsZero())
}

func TestDefaultParameters(t *testing.T) {
	p := quote.DefaultParameters()
	requireDec(t, "0.10", p.VATRate)
	requireDec(t, "0.30", p.ProfitMarginRate)
	requireDec(t, "0", p.DiscountRate)
	requireDec(t, "37", p.ExchangeRate)
	requireDec(t, "0.2", quote.Percent(dec("20")))
	require.NoError(t, quote.ValidateParameters(p))
}
