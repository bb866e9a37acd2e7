package market

import (
	"fmt"
	"time"
)

// ItemQuote is one tradable item's market state within a snapshot.
//
// Bazaar order books are counterintuitive: you buy instantly from the top of
// the sell summary and sell instantly into the top of the buy summary, so
// BuyPrice is the best standing sell-order price and SellPrice the best
// standing buy-order price. The loader performs that swap; downstream code
// only ever sees buy-at / sell-at prices.
type ItemQuote struct {
	ID        string  `json:"item_id"`
	BuyPrice  float64 `json:"buy_price"`  // price you buy at (order book)
	SellPrice float64 `json:"sell_price"` // price you sell at (order book)
	QuickBuy  float64 `json:"quick_buy"`  // instant-fill buy price
	QuickSell float64 `json:"quick_sell"` // instant-fill sell price
	Volume    int64   `json:"volume"`     // combined buy+sell activity in the window
}

// Snapshot is one point-in-time market read, keyed by item identifier.
// Immutable once loaded.
type Snapshot struct {
	Items      map[string]ItemQuote `json:"items"`
	CapturedAt time.Time            `json:"captured_at"`
	Source     string               `json:"source"`    // endpoint URL or file path
	Malformed  int                  `json:"malformed"` // entries the loader had to skip
}

// Len returns the number of usable quotes in the snapshot.
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// ScoreMethod selects one of the four profit metrics used for ranking.
type ScoreMethod string

const (
	// BuySellOrderPercent is (sell - buy) / buy * 100 over order-book prices.
	BuySellOrderPercent ScoreMethod = "buy-sell-order-percent"
	// QuickBuySellPercent is (quickSell - quickBuy) / quickBuy * 100.
	QuickBuySellPercent ScoreMethod = "quick-buy-sell-percent"
	// BuyOrderToSellOrderMargin is sell - buy in raw coins.
	BuyOrderToSellOrderMargin ScoreMethod = "buy-order-to-sell-order-margin"
	// QuickBuyToSellOrderMargin is quickSell - quickBuy in raw coins.
	QuickBuyToSellOrderMargin ScoreMethod = "quick-buy-to-sell-order-margin"
)

// Methods lists every supported score method in display order.
func Methods() []ScoreMethod {
	return []ScoreMethod{
		BuySellOrderPercent,
		QuickBuySellPercent,
		BuyOrderToSellOrderMargin,
		QuickBuyToSellOrderMargin,
	}
}

// ParseMethod converts a CLI/config string into a ScoreMethod.
func ParseMethod(s string) (ScoreMethod, error) {
	m := ScoreMethod(s)
	switch m {
	case BuySellOrderPercent, QuickBuySellPercent,
		BuyOrderToSellOrderMargin, QuickBuyToSellOrderMargin:
		return m, nil
	}
	return "", fmt.Errorf("unknown score method %q (valid: %v)", s, Methods())
}

// IsPercent reports whether the method expresses profit as a percentage of
// the base price rather than raw coins.
func (m ScoreMethod) IsPercent() bool {
	return m == BuySellOrderPercent || m == QuickBuySellPercent
}

// Description returns a one-line human description for method listings.
func (m ScoreMethod) Description() string {
	switch m {
	case BuySellOrderPercent:
		return "order-book spread as a percentage of the buy price"
	case QuickBuySellPercent:
		return "instant-fill spread as a percentage of the quick-buy price"
	case BuyOrderToSellOrderMargin:
		return "order-book spread in raw coins"
	case QuickBuyToSellOrderMargin:
		return "instant-fill spread in raw coins"
	}
	return "unknown method"
}

// FilterCriteria defines the hard cut applied before ranking.
type FilterCriteria struct {
	MinVolume int64   `json:"min_volume"`
	TopN      int     `json:"top_n"`
	MinPrice  float64 `json:"min_price"`
	// MaxPrice <= 0 means unbounded above.
	MaxPrice float64 `json:"max_price"`
	// RequirePositive drops non-positive scores, matching the classic
	// flipping workflow. Off by default.
	RequirePositive bool `json:"require_positive"`
}

// Unbounded reports whether no upper price bound is in effect.
func (c FilterCriteria) Unbounded() bool {
	return c.MaxPrice <= 0
}

// Validate checks criteria sanity before running the pipeline.
func (c FilterCriteria) Validate() error {
	if c.MinVolume < 0 {
		return fmt.Errorf("min volume must be >= 0, got %d", c.MinVolume)
	}
	if c.TopN <= 0 {
		return fmt.Errorf("top N must be > 0, got %d", c.TopN)
	}
	if c.MinPrice < 0 {
		return fmt.Errorf("min price must be >= 0, got %f", c.MinPrice)
	}
	if !c.Unbounded() && c.MaxPrice < c.MinPrice {
		return fmt.Errorf("max price %.2f is below min price %.2f", c.MaxPrice, c.MinPrice)
	}
	return nil
}

// DefaultCriteria returns the default filter, mirroring the historical
// analyzer defaults.
func DefaultCriteria() FilterCriteria {
	return FilterCriteria{
		MinVolume: 1000,
		TopN:      20,
		MinPrice:  0,
		MaxPrice:  0,
	}
}

// ScoredItem is an ItemQuote augmented with its score under the active
// method. Scores keep full float precision; rounding happens only at
// presentation time.
type ScoredItem struct {
	ItemQuote
	Score float64 `json:"score"`
}

// Result is a ranked analysis outcome plus the metadata needed to reproduce
// and interpret it.
type Result struct {
	Method     ScoreMethod    `json:"method"`
	Criteria   FilterCriteria `json:"criteria"`
	CapturedAt time.Time      `json:"captured_at"`
	Source     string         `json:"source"`

	// Considered is the number of quotes in the snapshot; Skipped counts
	// malformed entries dropped by the loader and the pipeline combined.
	Considered int `json:"considered"`
	Skipped    int `json:"skipped"`

	// Filtered maps exclusion reason to count, for diagnostics.
	Filtered map[string]int `json:"filtered,omitempty"`

	// Items is sorted by score descending, ties by identifier ascending,
	// truncated to Criteria.TopN.
	Items []ScoredItem `json:"items"`

	// PresetHash identifies the strategy preset in effect, when one was used.
	PresetHash string `json:"preset_hash,omitempty"`
}
