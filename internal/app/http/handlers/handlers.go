package handlers

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"iq-home/quickquote/internal/app/metrics"
	"iq-home/quickquote/internal/domain/catalog"
	"iq-home/quickquote/internal/domain/quote/pdf"
	"iq-home/quickquote/internal/domain/rate"
)

// RateSource is the current-rate view of rate.Fallback.
type RateSource interface {
	Current() rate.Snapshot
}

type Handlers struct {
	Catalog catalog.Provider
	Rates   RateSource
	PDF     pdf.Generator
	Metrics *metrics.Metrics

	validate *validator.Validate
	now      func() time.Time
	number   func(time.Time) string
}

func New(cat catalog.Provider, rates RateSource, gen pdf.Generator, m *metrics.Metrics) *Handlers {
	return &Handlers{
		Catalog:  cat,
		Rates:    rates,
		PDF:      gen,
		Metrics:  m,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
		number:   quoteNumber,
	}
}

func quoteNumber(t time.Time) string {
	return "TK-" + t.Format("20060102") + "-" + strings.ToUpper(uuid.NewString()[:8])
}
