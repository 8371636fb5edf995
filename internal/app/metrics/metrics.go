package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"iq-home/quickquote/internal/domain/rate"
)

type Metrics struct {
	Registry     *prometheus.Registry
	Quotes       *prometheus.CounterVec
	RateRefresh  *prometheus.CounterVec
	ExchangeRate prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Quotes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quickquote",
			Name:      "quotes_total",
			Help:      "Quotes priced, by output format.",
		}, []string{"format"}),
		RateRefresh: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quickquote",
			Name:      "rate_refresh_total",
			Help:      "Exchange rate refresh attempts, by result.",
		}, []string{"result"}),
		ExchangeRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "quickquote",
			Name:      "exchange_rate",
			Help:      "EUR to TRY rate currently used for pricing.",
		}),
	}
	m.Registry.MustRegister(m.Quotes, m.RateRefresh, m.ExchangeRate,
		collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return m
}

// ObserveRate records a refresh attempt; it matches rate.Observer.
func (m *Metrics) ObserveRate(s rate.Snapshot, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.RateRefresh.WithLabelValues(result).Inc()
	m.ExchangeRate.Set(s.Rate.InexactFloat64())
}
