package catalog

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is a product the quote can be built from. Prices are in EUR.
type Entry struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	CostRate  decimal.Decimal `json:"cost_rate"`
}

// Provider returns the catalog in display order.
type Provider interface {
	Entries(ctx context.Context) ([]Entry, error)
}

type Static struct {
	entries []Entry
}

func NewStatic(entries []Entry) *Static {
	cp := make([]Entry, len(entries))
	copy(cp, entries)
	return &Static{entries: cp}
}

func (s *Static) Entries(context.Context) ([]Entry, error) {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Find looks an entry up by its exact name, ignoring surrounding spaces.
func Find(entries []Entry, name string) (Entry, bool) {
	name = strings.TrimSpace(name)
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
