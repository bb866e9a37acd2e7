package strategy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soopyv/bazscan/internal/market"
)

const validPreset = `meta:
  preset_id: high_volume_flips
  version: "1"
  description: liquid items only
method: quick-buy-sell-percent
filter:
  min_volume: 50000
  top_n: 10
  min_price: 100
  max_price: 1000000
  require_positive: true
`

func writePreset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "preset.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	cfg, yamlData, err := Load(writePreset(t, validPreset))
	require.NoError(t, err)
	assert.NotEmpty(t, yamlData)

	assert.Equal(t, "high_volume_flips", cfg.Meta.PresetID)

	method, err := cfg.ScoreMethod()
	require.NoError(t, err)
	assert.Equal(t, market.QuickBuySellPercent, method)

	criteria := cfg.Criteria()
	assert.Equal(t, int64(50000), criteria.MinVolume)
	assert.Equal(t, 10, criteria.TopN)
	assert.Equal(t, 100.0, criteria.MinPrice)
	assert.Equal(t, 1000000.0, criteria.MaxPrice)
	assert.True(t, criteria.RequirePositive)
}

func TestLoad_UnknownFieldRejected(t *testing.T) {
	preset := validPreset + "unknown_knob: 42\n"

	_, _, err := Load(writePreset(t, preset))
	assert.Error(t, err)
}

func TestLoad_InvalidMethodRejected(t *testing.T) {
	preset := `meta:
  preset_id: broken
method: not-a-method
filter:
  min_volume: 1
  top_n: 5
`

	_, _, err := Load(writePreset(t, preset))
	require.Error(t, err)

	var vErr ValidationError
	assert.ErrorAs(t, err, &vErr)
	assert.Equal(t, "method", vErr.Field)
}

func TestLoad_MissingPresetIDRejected(t *testing.T) {
	preset := `method: buy-sell-order-percent
filter:
  top_n: 5
`

	_, _, err := Load(writePreset(t, preset))
	assert.Error(t, err)
}

func TestHash_Deterministic(t *testing.T) {
	cfg, _, err := Load(writePreset(t, validPreset))
	require.NoError(t, err)

	hash1, err := Hash(cfg)
	require.NoError(t, err)
	assert.Len(t, hash1, 64)

	hash2, err := Hash(cfg)
	require.NoError(t, err)
	assert.Equal(t, hash1, hash2)

	// Any change produces a different hash
	cfg.Filter.TopN = 11
	hash3, err := Hash(cfg)
	require.NoError(t, err)
	assert.NotEqual(t, hash1, hash3)
}
