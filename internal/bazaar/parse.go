package bazaar

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/soopyv/bazscan/internal/market"
)

// ParsePayload normalizes a raw bazaar response body into a Snapshot.
// Entries missing an order book are skipped and counted on the snapshot,
// never fatal for the batch.
func ParsePayload(data []byte, source string, capturedAt time.Time) (*market.Snapshot, error) {
	entries, err := extractEntries(data)
	if err != nil {
		return nil, err
	}

	snapshot := &market.Snapshot{
		Items:      make(map[string]market.ItemQuote, len(entries)),
		CapturedAt: capturedAt,
		Source:     source,
	}

	for id, entry := range entries {
		quote, ok := toQuote(id, entry)
		if !ok {
			snapshot.Malformed++
			continue
		}
		snapshot.Items[id] = quote
	}

	if len(snapshot.Items) == 0 {
		return nil, fmt.Errorf("payload from %s contains no usable items", source)
	}

	return snapshot, nil
}

// extractEntries locates the item map inside the response envelope.
func extractEntries(data []byte) (map[string]productEntry, error) {
	var p payload
	if err := json.Unmarshal(data, &p); err == nil {
		if len(p.Products) > 0 {
			return p.Products, nil
		}
		if p.Success && len(p.Bazaar) > 0 {
			return p.Bazaar, nil
		}
	}

	// Fall back to a bare top-level item map, the shape our own saved raw
	// payloads use.
	var bare map[string]productEntry
	if err := json.Unmarshal(data, &bare); err != nil {
		return nil, fmt.Errorf("unrecognized payload structure: %w", err)
	}
	if len(bare) == 0 {
		return nil, fmt.Errorf("payload contains no items")
	}
	return bare, nil
}

// toQuote converts one raw entry into buy-at/sell-at terms.
//
// buy_summary holds players buying from you (you sell to them) and
// sell_summary players selling to you (you buy from them), so the buy-at
// price comes from sell_summary and vice versa. Quick prices swap the same
// way. Entries with an empty book on either side are unusable.
func toQuote(id string, entry productEntry) (market.ItemQuote, bool) {
	buyBook := entry.BuySummary
	sellBook := entry.SellSummary
	status := entry.QuickStatus

	// Mirror naming scheme
	if len(buyBook) == 0 && len(sellBook) == 0 {
		buyBook = entry.BuyOrders
		sellBook = entry.SellOrders
		if status == nil {
			status = &quickStatus{
				BuyVolume:  entry.BuyVolume,
				SellVolume: entry.SellVolume,
			}
		}
	}

	if len(buyBook) == 0 || len(sellBook) == 0 {
		return market.ItemQuote{}, false
	}

	buyAt := sellBook[0].PricePerUnit
	sellAt := buyBook[0].PricePerUnit

	quickBuy := buyAt
	quickSell := sellAt
	var volume int64
	if status != nil {
		if status.SellPrice > 0 {
			quickBuy = status.SellPrice
		}
		if status.BuyPrice > 0 {
			quickSell = status.BuyPrice
		}
		volume = status.BuyVolume + status.SellVolume
	}

	if buyAt < 0 || sellAt < 0 || volume < 0 {
		return market.ItemQuote{}, false
	}

	return market.ItemQuote{
		ID:        id,
		BuyPrice:  buyAt,
		SellPrice: sellAt,
		QuickBuy:  quickBuy,
		QuickSell: quickSell,
		Volume:    volume,
	}, true
}
