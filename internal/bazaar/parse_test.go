package bazaar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

const hypixelPayload = `{
  "success": true,
  "lastUpdated": 1756641600000,
  "products": {
    "ENCHANTED_DIAMOND": {
      "buy_summary": [{"amount": 640, "pricePerUnit": 120.5, "orders": 3}],
      "sell_summary": [{"amount": 320, "pricePerUnit": 100.2, "orders": 5}],
      "quick_status": {
        "buyPrice": 118.9,
        "sellPrice": 102.7,
        "buyVolume": 4000,
        "sellVolume": 2500
      }
    },
    "DEAD_ITEM": {
      "buy_summary": [],
      "sell_summary": [{"amount": 1, "pricePerUnit": 5, "orders": 1}],
      "quick_status": {"buyPrice": 0, "sellPrice": 5, "buyVolume": 0, "sellVolume": 1}
    }
  }
}`

func TestParsePayload_HypixelFormat(t *testing.T) {
	snapshot, err := ParsePayload([]byte(hypixelPayload), "hypixel", testTime)
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, 1, snapshot.Malformed) // DEAD_ITEM has an empty buy book
	assert.Equal(t, "hypixel", snapshot.Source)
	assert.Equal(t, testTime, snapshot.CapturedAt)

	quote, exists := snapshot.Items["ENCHANTED_DIAMOND"]
	require.True(t, exists)

	// You buy from the sell summary and sell into the buy summary
	assert.InDelta(t, 100.2, quote.BuyPrice, 1e-9)
	assert.InDelta(t, 120.5, quote.SellPrice, 1e-9)
	// Quick prices swap the same way
	assert.InDelta(t, 102.7, quote.QuickBuy, 1e-9)
	assert.InDelta(t, 118.9, quote.QuickSell, 1e-9)
	// Combined volume
	assert.Equal(t, int64(6500), quote.Volume)
}

func TestParsePayload_SkyCryptFormat(t *testing.T) {
	payload := `{
	  "success": true,
	  "bazaar": {
	    "WHEAT": {
	      "buy_summary": [{"pricePerUnit": 6.1}],
	      "sell_summary": [{"pricePerUnit": 4.2}],
	      "quick_status": {"buyPrice": 6.0, "sellPrice": 4.3, "buyVolume": 100, "sellVolume": 200}
	    }
	  }
	}`

	snapshot, err := ParsePayload([]byte(payload), "skycrypt", testTime)
	require.NoError(t, err)

	quote := snapshot.Items["WHEAT"]
	assert.InDelta(t, 4.2, quote.BuyPrice, 1e-9)
	assert.InDelta(t, 6.1, quote.SellPrice, 1e-9)
	assert.Equal(t, int64(300), quote.Volume)
}

func TestParsePayload_BareItemMap(t *testing.T) {
	// Shape of our own saved raw payloads
	payload := `{
	  "SUGAR_CANE": {
	    "buy_summary": [{"pricePerUnit": 10}],
	    "sell_summary": [{"pricePerUnit": 8}],
	    "quick_status": {"buyPrice": 9.5, "sellPrice": 8.2, "buyVolume": 50, "sellVolume": 60}
	  }
	}`

	snapshot, err := ParsePayload([]byte(payload), "file", testTime)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
}

func TestParsePayload_MirrorOrderNaming(t *testing.T) {
	payload := `{
	  "products": {
	    "COBBLESTONE": {
	      "buyOrders": [{"pricePerUnit": 3.5}],
	      "sellOrders": [{"pricePerUnit": 2.1}],
	      "buyVolume": 700,
	      "sellVolume": 300
	    }
	  }
	}`

	snapshot, err := ParsePayload([]byte(payload), "mirror", testTime)
	require.NoError(t, err)

	quote := snapshot.Items["COBBLESTONE"]
	assert.InDelta(t, 2.1, quote.BuyPrice, 1e-9)
	assert.InDelta(t, 3.5, quote.SellPrice, 1e-9)
	// No quick_status: quick prices fall back to the order book
	assert.InDelta(t, 2.1, quote.QuickBuy, 1e-9)
	assert.InDelta(t, 3.5, quote.QuickSell, 1e-9)
	assert.Equal(t, int64(1000), quote.Volume)
}

func TestParsePayload_BareNumberOrderLevels(t *testing.T) {
	payload := `{
	  "products": {
	    "MELON": {
	      "buyOrders": [4.5],
	      "sellOrders": [3.25],
	      "buyVolume": 10,
	      "sellVolume": 10
	    }
	  }
	}`

	snapshot, err := ParsePayload([]byte(payload), "mirror", testTime)
	require.NoError(t, err)

	quote := snapshot.Items["MELON"]
	assert.InDelta(t, 3.25, quote.BuyPrice, 1e-9)
	assert.InDelta(t, 4.5, quote.SellPrice, 1e-9)
}

func TestParsePayload_Unparseable(t *testing.T) {
	_, err := ParsePayload([]byte(`not json at all`), "bad", testTime)
	assert.Error(t, err)
}

func TestParsePayload_NoUsableItems(t *testing.T) {
	payload := `{
	  "products": {
	    "EMPTY": {"buy_summary": [], "sell_summary": []}
	  }
	}`

	_, err := ParsePayload([]byte(payload), "hypixel", testTime)
	assert.Error(t, err)
}
