package pdf

import (
	"strings"

	"iq-home/quickquote/internal/domain/quote"
)

type Generator interface {
	Generate(q quote.Quote) ([]byte, error)
}

// FileName returns the download name for a quote: the customer name, or
// "Teklif" when none was given.
func FileName(customerName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '"', ':', '*', '?', '<', '>', '|', '\r', '\n':
			return -1
		}
		return r
	}, strings.TrimSpace(customerName))
	if name == "" {
		name = "Teklif"
	}
	return name + ".pdf"
}
