package bazaar

import "encoding/json"

// payload covers the response envelopes of the supported bazaar sources.
// Hypixel wraps items in "products"; SkyCrypt in "bazaar"; some mirrors
// return the item map at the top level (handled separately in parse.go).
type payload struct {
	Success     bool                    `json:"success"`
	LastUpdated int64                   `json:"lastUpdated"`
	Products    map[string]productEntry `json:"products"`
	Bazaar      map[string]productEntry `json:"bazaar"`
}

// productEntry is one item's order book data. Field pairs cover the two
// naming schemes seen in the wild: buy_summary/sell_summary with a
// quick_status block (Hypixel), and buyOrders/sellOrders with flat volume
// fields (some mirrors).
type productEntry struct {
	BuySummary  []orderEntry `json:"buy_summary"`
	SellSummary []orderEntry `json:"sell_summary"`
	QuickStatus *quickStatus `json:"quick_status"`

	BuyOrders  []orderEntry `json:"buyOrders"`
	SellOrders []orderEntry `json:"sellOrders"`
	BuyVolume  int64        `json:"buyVolume"`
	SellVolume int64        `json:"sellVolume"`
}

// quickStatus carries instant-fill prices and rolling volumes.
// Hypixel's buyPrice is the instant-sell side and sellPrice the instant-buy
// side; the swap to buy-at/sell-at terms happens in parse.go.
type quickStatus struct {
	BuyPrice   float64 `json:"buyPrice"`
	SellPrice  float64 `json:"sellPrice"`
	BuyVolume  int64   `json:"buyVolume"`
	SellVolume int64   `json:"sellVolume"`
}

// orderEntry is a single order book level. Some sources emit levels as
// objects with pricePerUnit, others as bare numbers; both decode here.
type orderEntry struct {
	PricePerUnit float64 `json:"pricePerUnit"`
	Amount       int64   `json:"amount"`
	Orders       int     `json:"orders"`
}

func (o *orderEntry) UnmarshalJSON(data []byte) error {
	// Bare number form
	var price float64
	if err := json.Unmarshal(data, &price); err == nil {
		o.PricePerUnit = price
		return nil
	}

	type alias orderEntry
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*o = orderEntry(a)
	return nil
}
