package analysis

import (
	"github.com/soopyv/bazscan/internal/market"
	"github.com/soopyv/bazscan/pkg/logger"
)

// Screener applies the hard-cut filter criteria to scored items.
type Screener struct {
	criteria market.FilterCriteria
	logger   *logger.Logger
}

// NewScreener creates a new screener.
func NewScreener(criteria market.FilterCriteria, log *logger.Logger) *Screener {
	return &Screener{
		criteria: criteria,
		logger:   log,
	}
}

// Screen returns the subset of items passing every predicate, plus a
// reason→count map for the excluded ones. An empty result is valid, not an
// error.
func (s *Screener) Screen(items []market.ScoredItem) ([]market.ScoredItem, map[string]int) {
	passed := make([]market.ScoredItem, 0, len(items))
	filtered := make(map[string]int)

	for _, item := range items {
		reason := s.checkConditions(item)
		if reason == "" {
			passed = append(passed, item)
		} else {
			filtered[reason]++
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"total_input":  len(items),
		"passed":       len(passed),
		"filtered_out": len(items) - len(passed),
		"filters":      filtered,
	}).Debug("Screening completed")

	return passed, filtered
}

// checkConditions checks if an item passes all predicates.
// Returns empty string if passed, otherwise the failing filter name.
func (s *Screener) checkConditions(item market.ScoredItem) string {
	if item.Volume < s.criteria.MinVolume {
		return "volume"
	}

	if item.BuyPrice < s.criteria.MinPrice {
		return "min_price"
	}

	if !s.criteria.Unbounded() && item.BuyPrice > s.criteria.MaxPrice {
		return "max_price"
	}

	if s.criteria.RequirePositive && item.Score <= 0 {
		return "non_positive"
	}

	return ""
}
