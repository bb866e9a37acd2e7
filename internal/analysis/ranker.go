package analysis

import (
	"sort"

	"github.com/soopyv/bazscan/internal/market"
)

// Rank sorts items by score descending, breaking exact ties by identifier
// ascending so output is reproducible across runs, and truncates to topN.
// Fewer than topN survivors are returned as-is.
func Rank(items []market.ScoredItem, topN int) []market.ScoredItem {
	ranked := make([]market.ScoredItem, len(items))
	copy(ranked, items)

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	return ranked
}
