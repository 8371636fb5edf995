package gofpdf

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"iq-home/quickquote/internal/domain/quote"
)

var (
	//go:embed fonts/DejaVuSansCondensed.ttf
	defaultRegular []byte
	//go:embed fonts/DejaVuSansCondensed-Bold.ttf
	defaultBold []byte
)

const family = "DejaVu"

// Options overrides the embedded DejaVu fonts with TrueType files on disk.
// A regular font without a bold one is used for both styles.
type Options struct {
	RegularFont string
	BoldFont    string
}

type Generator struct {
	opts Options
}

func New(opts Options) *Generator { return &Generator{opts: opts} }

var columns = []struct {
	title string
	width float64
}{
	{"Ürün", 58},
	{"Adet", 14},
	{"Ara Toplam", 26},
	{"İthalat Maliyeti", 32},
	{"Kar Marjlı", 28},
	{"KDV Dahil", 30},
}

func (g *Generator) fonts() (regular, bold []byte, err error) {
	if g.opts.RegularFont == "" {
		return defaultRegular, defaultBold, nil
	}
	if regular, err = os.ReadFile(g.opts.RegularFont); err != nil {
		return nil, nil, err
	}
	if g.opts.BoldFont == "" {
		return regular, regular, nil
	}
	if bold, err = os.ReadFile(g.opts.BoldFont); err != nil {
		return nil, nil, err
	}
	return regular, bold, nil
}

func (g *Generator) Generate(q quote.Quote) ([]byte, error) {
	regular, bold, err := g.fonts()
	if err != nil {
		return nil, fmt.Errorf("quote pdf: fonts: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Hızlı Fiyat Teklifi", true)
	pdf.SetCreator("quickquote", false)
	pdf.AddUTF8FontFromBytes(family, "", regular)
	pdf.AddUTF8FontFromBytes(family, "B", bold)
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("quote pdf: fonts: %w", err)
	}
	pdf.AddPage()

	pdf.SetFont(family, "B", 16)
	pdf.Cell(0, 10, "Hızlı Fiyat Teklifi")
	pdf.Ln(10)

	pdf.SetFont(family, "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("No: %s  Tarih: %s", q.Number, q.CreatedAt.Format("02.01.2006")))
	pdf.Ln(6)
	if q.Customer.Name != "" {
		pdf.Cell(0, 6, "Müşteri: "+q.Customer.Name)
		pdf.Ln(6)
	}
	if q.Customer.Email != "" {
		pdf.Cell(0, 6, "E-posta: "+q.Customer.Email)
		pdf.Ln(6)
	}
	pdf.Cell(0, 6, fmt.Sprintf("KDV: %%%s  Kar Marjı: %%%s  İskonto: %%%s",
		percent(q.Params.VATRate), percent(q.Params.ProfitMarginRate), percent(q.Params.DiscountRate)))
	pdf.Ln(10)

	pdf.SetFont(family, "B", 9)
	pdf.SetFillColor(235, 235, 235)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	for _, l := range q.Lines {
		cells := []string{
			trim(l.Item.Name, 32),
			fmt.Sprintf("%d", l.Item.Quantity),
			euro(l.Subtotal),
			euro(l.ImportCost),
			euro(l.AmountWithMargin),
			euro(l.AmountWithVAT),
		}
		for i, c := range columns {
			align := "R"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(c.width, 6, cells[i], "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(4)
	pdf.SetFont(family, "B", 11)
	pdf.Cell(0, 7, "Genel Toplam (EUR): "+euro(q.Totals.Total))
	pdf.Ln(7)
	pdf.Cell(0, 7, "İskontolu Toplam (EUR): "+euro(q.Totals.DiscountedTotal))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Genel Toplam (TL): ₺"+q.Totals.TotalSecondary.StringFixed(2))
	pdf.Ln(8)

	pdf.SetFont(family, "", 8)
	pdf.Cell(0, 5, "Güncel Kur (EUR → TRY): "+q.Params.ExchangeRate.StringFixed(2))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Error().Err(err).Str("number", q.Number).Msg("quote pdf: output failed")
		return nil, err
	}
	return buf.Bytes(), nil
}

func euro(d decimal.Decimal) string { return "€" + d.StringFixed(2) }

func percent(rate decimal.Decimal) string { return rate.Shift(2).String() }

func trim(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
