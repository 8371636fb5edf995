package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"iq-home/quickquote/internal/app/config"
	apphttp "iq-home/quickquote/internal/app/http"
	"iq-home/quickquote/internal/app/http/handlers"
	"iq-home/quickquote/internal/app/logging"
	"iq-home/quickquote/internal/app/metrics"
	"iq-home/quickquote/internal/domain/catalog"
	pdfgen "iq-home/quickquote/internal/domain/quote/pdf/gofpdf"
	"iq-home/quickquote/internal/domain/rate"
	"iq-home/quickquote/internal/infra/db/postgres"
)

// Run serves until SIGINT/SIGTERM. Errors are returned after deferred
// cleanup has run.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logging.Setup(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var products catalog.Provider = catalog.Default()
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("db: %w", err)
		}
		defer db.Close()
		products = postgres.NewCatalogRepo(db)
		log.Info().Msg("catalog: postgres")
	} else {
		log.Info().Msg("catalog: built-in")
	}

	m := metrics.New()
	rates := rate.NewFallback(rate.NewHTTPProvider(cfg.RateAPIURL, cfg.RateAPIKey, cfg.RateTimeout), cfg.DefaultExchangeRate, m.ObserveRate)
	m.ExchangeRate.Set(rates.Current().Rate.InexactFloat64())
	go rates.Run(ctx, cfg.RateRefreshInterval)

	gen := pdfgen.New(pdfgen.Options{RegularFont: cfg.PDFFontRegular, BoldFont: cfg.PDFFontBold})
	h := handlers.New(products, rates, gen, m)
	router := apphttp.NewRouter(cfg, h, m)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info().Str("addr", cfg.HTTPAddr).Msg("listening")
	return serve(ctx, srv)
}

// serve runs srv until ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("http server: %w", err)
			return
		}
		errc <- nil
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}
