package analysis

import (
	"github.com/soopyv/bazscan/internal/market"
)

// scoreFunc computes a metric for one quote. ok is false when the metric is
// undefined for the quote (zero denominator), in which case the item is
// unscoreable and must be excluded from ranking rather than zero-scored.
type scoreFunc func(q market.ItemQuote) (score float64, ok bool)

// scoreFuncs is the closed method table. Adding a fifth method is a one-line
// change here plus the market.ScoreMethod enum.
var scoreFuncs = map[market.ScoreMethod]scoreFunc{
	market.BuySellOrderPercent: func(q market.ItemQuote) (float64, bool) {
		if q.BuyPrice <= 0 {
			return 0, false
		}
		return (q.SellPrice - q.BuyPrice) / q.BuyPrice * 100, true
	},
	market.QuickBuySellPercent: func(q market.ItemQuote) (float64, bool) {
		if q.QuickBuy <= 0 {
			return 0, false
		}
		return (q.QuickSell - q.QuickBuy) / q.QuickBuy * 100, true
	},
	market.BuyOrderToSellOrderMargin: func(q market.ItemQuote) (float64, bool) {
		return q.SellPrice - q.BuyPrice, true
	},
	market.QuickBuyToSellOrderMargin: func(q market.ItemQuote) (float64, bool) {
		return q.QuickSell - q.QuickBuy, true
	},
}

// Score computes the metric for one quote under the given method.
// ok is false for unscoreable quotes and unknown methods.
func Score(q market.ItemQuote, method market.ScoreMethod) (float64, bool) {
	fn, exists := scoreFuncs[method]
	if !exists {
		return 0, false
	}
	return fn(q)
}
