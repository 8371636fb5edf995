package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	HTTPAddr            string
	DatabaseURL         string
	InternalToken       string
	CORSAllowOrigin     string
	LogLevel            string
	LogFormat           string
	RateAPIURL          string
	RateAPIKey          string
	DefaultExchangeRate decimal.Decimal
	RateRefreshInterval time.Duration
	RateTimeout         time.Duration
	PDFFontRegular      string
	PDFFontBold         string
}

// Load reads the environment, after applying an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DatabaseURL:     env("DATABASE_URL", ""),
		InternalToken:   env("INTERNAL_TOKEN", ""),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		LogLevel:        env("LOG_LEVEL", "info"),
		LogFormat:       env("LOG_FORMAT", "json"),
		RateAPIURL:      env("RATE_API_URL", "https://api.exchangerate.host"),
		RateAPIKey:      env("RATE_API_KEY", ""),
		PDFFontRegular:  env("PDF_FONT_REGULAR", ""),
		PDFFontBold:     env("PDF_FONT_BOLD", ""),
	}

	var err error
	if cfg.DefaultExchangeRate, err = decimal.NewFromString(env("DEFAULT_EXCHANGE_RATE", "37")); err != nil {
		return Config{}, fmt.Errorf("DEFAULT_EXCHANGE_RATE: %w", err)
	}
	if !cfg.DefaultExchangeRate.IsPositive() {
		return Config{}, fmt.Errorf("DEFAULT_EXCHANGE_RATE must be positive, got %s", cfg.DefaultExchangeRate)
	}
	if cfg.RateRefreshInterval, err = time.ParseDuration(env("RATE_REFRESH_INTERVAL", "0s")); err != nil {
		return Config{}, fmt.Errorf("RATE_REFRESH_INTERVAL: %w", err)
	}
	if cfg.RateTimeout, err = time.ParseDuration(env("RATE_TIMEOUT", "10s")); err != nil {
		return Config{}, fmt.Errorf("RATE_TIMEOUT: %w", err)
	}
	return cfg, nil
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
