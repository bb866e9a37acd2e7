package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soopyv/bazscan/internal/market"
	"github.com/soopyv/bazscan/pkg/logger"
)

func sampleResult(method market.ScoreMethod) *market.Result {
	return &market.Result{
		Method: method,
		Criteria: market.FilterCriteria{
			MinVolume: 1000,
			TopN:      20,
		},
		CapturedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		Source:     "test",
		Considered: 3,
		Skipped:    1,
		Items: []market.ScoredItem{
			{
				ItemQuote: market.ItemQuote{ID: "ENCHANTED_DIAMOND", BuyPrice: 100.239, SellPrice: 120.5, Volume: 6500},
				Score:     20.214999,
			},
			{
				ItemQuote: market.ItemQuote{ID: "WHEAT", BuyPrice: 4.2, SellPrice: 6.1, Volume: 300},
				Score:     12.5,
			},
		},
	}
}

func TestWriteTable_PercentMethod(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResult(market.BuySellOrderPercent))

	out := buf.String()
	assert.Contains(t, out, "TOP PROFIT OPPORTUNITIES")
	assert.Contains(t, out, "Profit %")
	assert.Contains(t, out, "ENCHANTED_DIAMOND")
	// Rounded to two decimals at presentation time
	assert.Contains(t, out, "20.21%")
	assert.Contains(t, out, "Considered 3 items, skipped 1 malformed entries.")
}

func TestWriteTable_MarginMethod(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, sampleResult(market.BuyOrderToSellOrderMargin))

	out := buf.String()
	assert.Contains(t, out, "Margin (coins)")
	assert.NotContains(t, out, "Profit %")
}

func TestWriteTable_EmptyResultEchoesCriteria(t *testing.T) {
	result := sampleResult(market.BuySellOrderPercent)
	result.Items = nil

	var buf bytes.Buffer
	WriteTable(&buf, result)

	out := buf.String()
	assert.Contains(t, out, "No profit opportunities found.")
	assert.Contains(t, out, "min volume 1000")
	assert.Contains(t, out, "max price unbounded")
	assert.Contains(t, out, "top 20")
}

func TestWriter_WriteAll(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 31, 13, 45, 0, 0, time.UTC)
	writer := NewWriter(dir, logger.NewNop())

	jsonPath, csvPath, err := writer.WriteAll(sampleResult(market.BuySellOrderPercent), now)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "bazaar_profit_analysis_20260831_134500.json"), jsonPath)
	assert.Equal(t, filepath.Join(dir, "bazaar_profit_analysis_20260831_134500.csv"), csvPath)

	// JSON round-trips with full precision
	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var decoded market.Result
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, market.BuySellOrderPercent, decoded.Method)
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, 20.214999, decoded.Items[0].Score)

	// CSV holds the simplified columns
	f, err := os.Open(csvPath)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"item_id", "buy_price", "sell_price", "profit_percent", "volume"}, rows[0])
	assert.Equal(t, []string{"ENCHANTED_DIAMOND", "100.24", "120.50", "20.21", "6500"}, rows[1])
}

func TestWriter_CSVMarginHeader(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(dir, logger.NewNop())

	csvPath, err := writer.WriteCSV(sampleResult(market.QuickBuyToSellOrderMargin), time.Now())
	require.NoError(t, err)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "item_id,buy_price,sell_price,margin,volume"))
}
