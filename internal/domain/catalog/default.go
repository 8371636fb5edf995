package catalog

import "github.com/shopspring/decimal"

// Default is the built-in product list used when no database is configured.
func Default() *Static {
	return NewStatic([]Entry{
		entry("Revypeel Low", "72", "0.7"),
		entry("Revypeel High", "84", "0.7"),
		entry("Prepeeling Solüsyon", "11", "0.7"),
		entry("Nötralize Edici Jel", "11", "0.7"),
		entry("Post Peeling Krem", "16", "0.7"),
		entry("Revypeel Low Set", "205", "0.7"),
		entry("Revypeel High Set", "235", "0.7"),
		entry("Cryopen O+", "1500", "0.2"),
		entry("Cryopen XP", "2400", "0.2"),
		entry("16gr N2O Kartuş", "3.5", "0.2"),
		entry("Dermalab Aesthetics", "9000", "0.2"),
		entry("Dermalab Combo", "16000", "0.2"),
		entry("DSM Colorimetre 4", "2000", "0.2"),
	})
}

func entry(name, price, costRate string) Entry {
	return Entry{
		Name:      name,
		UnitPrice: decimal.RequireFromString(price),
		CostRate:  decimal.RequireFromString(costRate),
	}
}
