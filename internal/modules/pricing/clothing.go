package pricing

import "strings"

// ClothingEstimator maps a free-text item description to a flat alteration fee.
type ClothingEstimator struct {
	table PriceTable
}

func NewClothingEstimator(table PriceTable) ClothingEstimator {
	return ClothingEstimator{table: table}
}

// Estimate returns the price of the first keyword contained in item, or the
// table default when nothing matches. Matching is case-insensitive.
func (e ClothingEstimator) Estimate(item string) float64 {
	lower := strings.ToLower(item)
	for _, entry := range e.table.Entries {
		if entry.Keyword == "" {
			continue
		}
		if strings.Contains(lower, strings.ToLower(entry.Keyword)) {
			return entry.Price
		}
	}
	return e.table.DefaultPrice
}
