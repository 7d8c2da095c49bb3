package analysis

import (
	"sort"

	"github.com/shopspring/decimal"
)

// RankedProduct is one entry of a revenue ranking.
type RankedProduct struct {
	Product string
	Revenue decimal.Decimal
}

// RankProducts orders products by revenue, highest first, and returns at
// most topN entries. Equal revenues are broken by product name, ascending,
// so repeated runs over the same data rank identically.
func RankProducts(revenue map[string]decimal.Decimal, topN int) []RankedProduct {
	if topN <= 0 || len(revenue) == 0 {
		return nil
	}

	ranked := make([]RankedProduct, 0, len(revenue))
	for product, rev := range revenue {
		ranked = append(ranked, RankedProduct{Product: product, Revenue: rev})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if c := ranked[i].Revenue.Cmp(ranked[j].Revenue); c != 0 {
			return c > 0
		}
		return ranked[i].Product < ranked[j].Product
	})

	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
