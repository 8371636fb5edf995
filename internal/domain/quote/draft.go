package quote

import (
	"strings"

	"iq-home/quickquote/internal/domain/catalog"
)

// Draft is the list of line items a quote is being built from. Invalid adds
// are rejected and leave the list untouched.
type Draft struct {
	items []LineItem
}

func (d *Draft) Add(entry catalog.Entry, qty int) error {
	it := LineItem{Entry: entry, Quantity: qty}
	if err := validateItem(len(d.items), it); err != nil {
		return err
	}
	d.items = append(d.items, it)
	return nil
}

func (d *Draft) AddByName(entries []catalog.Entry, name string, qty int) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "product", Index: len(d.items), Reason: "is required"}
	}
	e, ok := catalog.Find(entries, name)
	if !ok {
		return &ValidationError{Field: "product", Index: len(d.items), Reason: "not found: " + strings.TrimSpace(name)}
	}
	return d.Add(e, qty)
}

func (d *Draft) Items() []LineItem {
	out := make([]LineItem, len(d.items))
	copy(out, d.items)
	return out
}

func (d *Draft) Len() int { return len(d.items) }
