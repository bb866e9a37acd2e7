package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    ScoreMethod
		wantErr bool
	}{
		{"buy-sell-order-percent", BuySellOrderPercent, false},
		{"quick-buy-sell-percent", QuickBuySellPercent, false},
		{"buy-order-to-sell-order-margin", BuyOrderToSellOrderMargin, false},
		{"quick-buy-to-sell-order-margin", QuickBuyToSellOrderMargin, false},
		{"", "", true},
		{"sharpe-ratio", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseMethod(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScoreMethod_IsPercent(t *testing.T) {
	assert.True(t, BuySellOrderPercent.IsPercent())
	assert.True(t, QuickBuySellPercent.IsPercent())
	assert.False(t, BuyOrderToSellOrderMargin.IsPercent())
	assert.False(t, QuickBuyToSellOrderMargin.IsPercent())
}

func TestFilterCriteria_Validate(t *testing.T) {
	valid := DefaultCriteria()
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name     string
		criteria FilterCriteria
	}{
		{"negative min volume", FilterCriteria{MinVolume: -1, TopN: 20}},
		{"zero top n", FilterCriteria{TopN: 0}},
		{"negative top n", FilterCriteria{TopN: -5}},
		{"negative min price", FilterCriteria{TopN: 20, MinPrice: -1}},
		{"max below min", FilterCriteria{TopN: 20, MinPrice: 100, MaxPrice: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.criteria.Validate())
		})
	}
}

func TestFilterCriteria_Unbounded(t *testing.T) {
	assert.True(t, FilterCriteria{MaxPrice: 0}.Unbounded())
	assert.True(t, FilterCriteria{MaxPrice: -1}.Unbounded())
	assert.False(t, FilterCriteria{MaxPrice: 100}.Unbounded())
}

func TestSnapshot_Len(t *testing.T) {
	var nilSnapshot *Snapshot
	assert.Equal(t, 0, nilSnapshot.Len())

	snapshot := &Snapshot{Items: map[string]ItemQuote{"A": {ID: "A"}}}
	assert.Equal(t, 1, snapshot.Len())
}
