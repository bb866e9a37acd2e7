package commands

import (
	"fmt"

	"github.com/soopyv/bazscan/internal/bazaar"
	"github.com/soopyv/bazscan/internal/market"
	"github.com/soopyv/bazscan/internal/report"
	"github.com/soopyv/bazscan/internal/scan"
	"github.com/soopyv/bazscan/internal/strategy"
	"github.com/soopyv/bazscan/pkg/config"
	"github.com/soopyv/bazscan/pkg/httputil"
	"github.com/soopyv/bazscan/pkg/logger"
)

// app bundles the wired components every command starts from.
type app struct {
	cfg    *config.Config
	log    *logger.Logger
	client *bazaar.Client
	runner *scan.Runner
}

// setup loads config and wires the scan runner.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if verbose {
		cfg.LogLevel = "debug"
	}

	log := logger.New(cfg)

	httpClient := httputil.New(cfg, log)
	client := bazaar.NewClient(cfg, httpClient, log)
	writer := report.NewWriter(cfg.Output.Dir, log)
	runner := scan.NewRunner(cfg, client, writer, log)

	return &app{cfg: cfg, log: log, client: client, runner: runner}, nil
}

// scanFlags holds the flag values shared by analyze, watch and serve.
type scanFlags struct {
	method    string
	minVolume int64
	topN      int
	minPrice  float64
	maxPrice  float64
	positive  bool
}

// defaultScanFlags returns flag defaults matching the historical analyzer.
func defaultScanFlags() scanFlags {
	criteria := market.DefaultCriteria()
	return scanFlags{
		method:    string(market.BuySellOrderPercent),
		minVolume: criteria.MinVolume,
		topN:      criteria.TopN,
		minPrice:  criteria.MinPrice,
		maxPrice:  criteria.MaxPrice,
	}
}

// resolveScanConfig merges the optional preset file with command-line flags.
// The preset provides the base; flags the user explicitly set win over it.
// Without a preset the flags (including their defaults) apply directly.
func resolveScanConfig(flags scanFlags, changed func(name string) bool) (market.ScoreMethod, market.FilterCriteria, string, error) {
	method, err := market.ParseMethod(flags.method)
	if err != nil {
		return "", market.FilterCriteria{}, "", err
	}

	criteria := market.FilterCriteria{
		MinVolume:       flags.minVolume,
		TopN:            flags.topN,
		MinPrice:        flags.minPrice,
		MaxPrice:        flags.maxPrice,
		RequirePositive: flags.positive,
	}
	presetHash := ""

	if presetFile != "" {
		preset, _, err := strategy.Load(presetFile)
		if err != nil {
			return "", market.FilterCriteria{}, "", fmt.Errorf("load preset: %w", err)
		}

		presetMethod, err := preset.ScoreMethod()
		if err != nil {
			return "", market.FilterCriteria{}, "", err
		}
		presetCriteria := preset.Criteria()

		if !changed("method") {
			method = presetMethod
		}
		if !changed("min-volume") {
			criteria.MinVolume = presetCriteria.MinVolume
		}
		if !changed("top-n") {
			criteria.TopN = presetCriteria.TopN
		}
		if !changed("min-price") {
			criteria.MinPrice = presetCriteria.MinPrice
		}
		if !changed("max-price") {
			criteria.MaxPrice = presetCriteria.MaxPrice
		}
		if !changed("positive") {
			criteria.RequirePositive = presetCriteria.RequirePositive
		}

		presetHash, err = strategy.Hash(preset)
		if err != nil {
			return "", market.FilterCriteria{}, "", fmt.Errorf("hash preset: %w", err)
		}
	}

	if err := criteria.Validate(); err != nil {
		return "", market.FilterCriteria{}, "", err
	}

	return method, criteria, presetHash, nil
}
