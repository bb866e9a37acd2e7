package strategy

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/soopyv/bazscan/internal/market"
)

// Load reads a preset YAML file. KnownFields(true) makes typos and unused
// fields fail immediately instead of silently falling back to defaults.
func Load(path string) (*Config, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, data, err
	}

	return &cfg, data, nil
}

// Hash generates a SHA-256 hash of the canonical JSON form of the preset.
// Struct marshaling keeps field order deterministic, so identical presets
// always hash identically.
func Hash(cfg *Config) (string, error) {
	jsonBytes, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(jsonBytes)
	return hex.EncodeToString(sum[:]), nil
}

// ScoreMethod returns the preset's parsed score method.
func (c *Config) ScoreMethod() (market.ScoreMethod, error) {
	return market.ParseMethod(c.Method)
}

// Criteria converts the preset filter into pipeline criteria.
func (c *Config) Criteria() market.FilterCriteria {
	return market.FilterCriteria{
		MinVolume:       c.Filter.MinVolume,
		TopN:            c.Filter.TopN,
		MinPrice:        c.Filter.MinPrice,
		MaxPrice:        c.Filter.MaxPrice,
		RequirePositive: c.Filter.RequirePositive,
	}
}
