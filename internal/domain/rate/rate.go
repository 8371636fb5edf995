package rate

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// Provider fetches the current EUR→TRY exchange rate.
type Provider interface {
	Rate(ctx context.Context) (decimal.Decimal, error)
}

type Static decimal.Decimal

func (s Static) Rate(context.Context) (decimal.Decimal, error) {
	return decimal.Decimal(s), nil
}

// Snapshot is the rate in use. Live is false while the default is in effect.
type Snapshot struct {
	Rate      decimal.Decimal `json:"rate"`
	Live      bool            `json:"live"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Observer is notified after each refresh attempt.
type Observer func(s Snapshot, err error)

// Fallback keeps the last successfully fetched rate and falls back to a
// default until the first fetch succeeds. Current never fails.
type Fallback struct {
	provider Provider
	observe  Observer
	now      func() time.Time

	mu   sync.RWMutex
	snap Snapshot
}

func NewFallback(p Provider, def decimal.Decimal, observe Observer) *Fallback {
	return &Fallback{
		provider: p,
		observe:  observe,
		now:      time.Now,
		snap:     Snapshot{Rate: def},
	}
}

func (f *Fallback) Current() Snapshot {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.snap
}

// Refresh asks the provider for a new rate. On failure the previous rate is
// kept and the error is returned for logging only.
func (f *Fallback) Refresh(ctx context.Context) error {
	r, err := f.provider.Rate(ctx)
	if err == nil && !r.IsPositive() {
		err = &InvalidRateError{Rate: r}
	}

	f.mu.Lock()
	if err == nil {
		f.snap = Snapshot{Rate: r, Live: true, UpdatedAt: f.now()}
	}
	snap := f.snap
	f.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Str("rate", snap.Rate.String()).Bool("live", snap.Live).Msg("exchange rate refresh failed, keeping previous rate")
	} else {
		log.Info().Str("rate", snap.Rate.String()).Msg("exchange rate updated")
	}
	if f.observe != nil {
		f.observe(snap, err)
	}
	return err
}

// Run refreshes once, then every interval until ctx is done. A non-positive
// interval means a single refresh.
func (f *Fallback) Run(ctx context.Context, interval time.Duration) {
	_ = f.Refresh(ctx)
	if interval <= 0 {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			_ = f.Refresh(ctx)
		}
	}
}

type InvalidRateError struct {
	Rate decimal.Decimal
}

func (e *InvalidRateError) Error() string {
	return "exchange rate must be positive, got " + e.Rate.String()
}
