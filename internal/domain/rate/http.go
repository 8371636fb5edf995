package rate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrMissingRate is returned when the response carries no rate for the
// requested symbol.
var ErrMissingRate = errors.New("rate: missing rate in response")

// HTTPProvider reads rates from an exchangerate.host compatible endpoint:
// GET {BaseURL}/latest?base=EUR&symbols=TRY -> {"rates":{"TRY":37.1}}.
// AccessKey, when set, is sent as the access_key query parameter.
type HTTPProvider struct {
	BaseURL   string
	AccessKey string
	Base      string
	Symbol    string
	HTTP      *http.Client
}

func NewHTTPProvider(baseURL, accessKey string, timeout time.Duration) *HTTPProvider {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPProvider{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		AccessKey: accessKey,
		Base:      "EUR",
		Symbol:    "TRY",
		HTTP:      &http.Client{Timeout: timeout},
	}
}

type latestResponse struct {
	Rates map[string]decimal.Decimal `json:"rates"`
}

func (p *HTTPProvider) Rate(ctx context.Context) (decimal.Decimal, error) {
	q := url.Values{}
	q.Set("base", p.Base)
	q.Set("symbols", p.Symbol)
	if p.AccessKey != "" {
		q.Set("access_key", p.AccessKey)
	}
	endpoint := p.BaseURL + "/latest?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.HTTP.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate: fetch %s: %w", p.BaseURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return decimal.Zero, fmt.Errorf("rate: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return decimal.Zero, fmt.Errorf("rate: decode: %w", err)
	}
	r, ok := out.Rates[p.Symbol]
	if !ok {
		return decimal.Zero, ErrMissingRate
	}
	if !r.IsPositive() {
		return decimal.Zero, &InvalidRateError{Rate: r}
	}
	return r, nil
}
