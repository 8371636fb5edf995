package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"iq-home/quickquote/internal/domain/quote"
	"iq-home/quickquote/internal/domain/quote/pdf"
)

// CreateQuoteRequest carries percentages as whole numbers (10 means 10%).
// Omitted parameters fall back to the defaults; an omitted exchange rate
// uses the current rate.
type CreateQuoteRequest struct {
	Customer struct {
		Name  string `json:"name" validate:"max=200"`
		Email string `json:"email" validate:"omitempty,email"`
	} `json:"customer"`
	Items []struct {
		Name string `json:"name"`
		Qty  int    `json:"qty"`
	} `json:"items" validate:"max=500"`
	VATPercent          *decimal.Decimal `json:"vat_percent"`
	ProfitMarginPercent *decimal.Decimal `json:"profit_margin_percent"`
	DiscountPercent     *decimal.Decimal `json:"discount_percent"`
	ExchangeRate        *decimal.Decimal `json:"exchange_rate"`
}

type quoteLineResponse struct {
	Name             string `json:"name"`
	Quantity         int    `json:"quantity"`
	UnitPrice        string `json:"unit_price"`
	Subtotal         string `json:"subtotal"`
	ImportCost       string `json:"import_cost"`
	AmountWithMargin string `json:"amount_with_margin"`
	AmountWithVAT    string `json:"amount_with_vat"`
}

type quoteResponse struct {
	Number              string              `json:"number"`
	CreatedAt           time.Time           `json:"created_at"`
	Customer            quote.Customer      `json:"customer"`
	VATPercent          string              `json:"vat_percent"`
	ProfitMarginPercent string              `json:"profit_margin_percent"`
	DiscountPercent     string              `json:"discount_percent"`
	ExchangeRate        string              `json:"exchange_rate"`
	Lines               []quoteLineResponse `json:"lines"`
	TotalEUR            string              `json:"total_eur"`
	DiscountedTotalEUR  string              `json:"discounted_total_eur"`
	TotalTRY            string              `json:"total_try"`
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	q, ok := h.buildQuote(w, r)
	if !ok {
		return
	}
	h.countQuote("json")
	writeJSON(w, http.StatusOK, toResponse(q))
}

func (h *Handlers) CreateQuotePDF(w http.ResponseWriter, r *http.Request) {
	q, ok := h.buildQuote(w, r)
	if !ok {
		return
	}
	pdfBytes, err := h.PDF.Generate(q)
	if err != nil {
		log.Error().Err(err).Str("number", q.Number).Msg("quote pdf: generate")
		writeError(w, http.StatusInternalServerError, "pdf generation failed", nil)
		return
	}
	h.countQuote("pdf")

	name := pdf.FileName(q.Customer.Name)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"; filename*=UTF-8''%s`,
		asciiFileName(name), url.PathEscape(name)))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}

// buildQuote decodes and prices the request, writing the error response
// itself when it returns false.
func (h *Handlers) buildQuote(w http.ResponseWriter, r *http.Request) (quote.Quote, bool) {
	var req CreateQuoteRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad request", err.Error())
		return quote.Quote{}, false
	}
	if err := h.validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			details := make([]fieldError, 0, len(verrs))
			for _, fe := range verrs {
				details = append(details, fieldError{Field: fe.Namespace(), Rule: fe.Tag()})
			}
			writeError(w, http.StatusBadRequest, "invalid request", details)
			return quote.Quote{}, false
		}
		writeError(w, http.StatusBadRequest, "invalid request", err.Error())
		return quote.Quote{}, false
	}

	entries, err := h.Catalog.Entries(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("catalog: load")
		writeError(w, http.StatusBadGateway, "catalog unavailable", nil)
		return quote.Quote{}, false
	}

	var draft quote.Draft
	for _, it := range req.Items {
		if err := draft.AddByName(entries, it.Name, it.Qty); err != nil {
			writeValidation(w, err)
			return quote.Quote{}, false
		}
	}

	now := h.now()
	q, err := quote.Compute(h.number(now), quote.Customer{Name: req.Customer.Name, Email: req.Customer.Email},
		draft.Items(), h.parameters(req), now)
	if err != nil {
		writeValidation(w, err)
		return quote.Quote{}, false
	}
	log.Debug().Str("number", q.Number).Int("lines", len(q.Lines)).
		Str("total_try", q.Totals.TotalSecondary.StringFixed(2)).Msg("quote priced")
	return q, true
}

func (h *Handlers) parameters(req CreateQuoteRequest) quote.Parameters {
	p := quote.DefaultParameters()
	p.ExchangeRate = h.Rates.Current().Rate
	if req.VATPercent != nil {
		p.VATRate = quote.Percent(*req.VATPercent)
	}
	if req.ProfitMarginPercent != nil {
		p.ProfitMarginRate = quote.Percent(*req.ProfitMarginPercent)
	}
	if req.DiscountPercent != nil {
		p.DiscountRate = quote.Percent(*req.DiscountPercent)
	}
	if req.ExchangeRate != nil {
		p.ExchangeRate = *req.ExchangeRate
	}
	return p
}

func (h *Handlers) countQuote(format string) {
	if h.Metrics != nil {
		h.Metrics.Quotes.WithLabelValues(format).Inc()
	}
}

func writeValidation(w http.ResponseWriter, err error) {
	var verr *quote.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Error(), fieldError{Field: verr.Field, Rule: verr.Reason})
		return
	}
	log.Error().Err(err).Msg("quote: compute")
	writeError(w, http.StatusInternalServerError, "quote failed", nil)
}

func toResponse(q quote.Quote) quoteResponse {
	resp := quoteResponse{
		Number:              q.Number,
		CreatedAt:           q.CreatedAt,
		Customer:            q.Customer,
		VATPercent:          q.Params.VATRate.Shift(2).String(),
		ProfitMarginPercent: q.Params.ProfitMarginRate.Shift(2).String(),
		DiscountPercent:     q.Params.DiscountRate.Shift(2).String(),
		ExchangeRate:        q.Params.ExchangeRate.StringFixed(2),
		Lines:               make([]quoteLineResponse, 0, len(q.Lines)),
		TotalEUR:            q.Totals.Total.StringFixed(2),
		DiscountedTotalEUR:  q.Totals.DiscountedTotal.StringFixed(2),
		TotalTRY:            q.Totals.TotalSecondary.StringFixed(2),
	}
	for _, l := range q.Lines {
		resp.Lines = append(resp.Lines, quoteLineResponse{
			Name:             l.Item.Name,
			Quantity:         l.Item.Quantity,
			UnitPrice:        l.Item.UnitPrice.StringFixed(2),
			Subtotal:         l.Subtotal.StringFixed(2),
			ImportCost:       l.ImportCost.StringFixed(2),
			AmountWithMargin: l.AmountWithMargin.StringFixed(2),
			AmountWithVAT:    l.AmountWithVAT.StringFixed(2),
		})
	}
	return resp
}

func asciiFileName(name string) string {
	out := make([]rune, 0, len(name))
	for _, r := range name {
		if r < 0x20 || r > 0x7e {
			r = '_'
		}
		out = append(out, r)
	}
	return string(out)
}
