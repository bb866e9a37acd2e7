package analysis

import (
	"errors"
	"math"

	"github.com/soopyv/bazscan/internal/market"
	"github.com/soopyv/bazscan/pkg/logger"
)

// ErrNoData is returned when the snapshot holds no usable quotes at all.
// An empty result after filtering is not an error; a snapshot with nothing
// to consider is.
var ErrNoData = errors.New("snapshot contains no usable quotes")

// Analyzer runs the score → filter → rank pipeline over one snapshot.
// It holds no state across runs; identical inputs produce identical results.
type Analyzer struct {
	method   market.ScoreMethod
	criteria market.FilterCriteria
	logger   *logger.Logger
}

// New creates an analyzer for one method/criteria combination.
func New(method market.ScoreMethod, criteria market.FilterCriteria, log *logger.Logger) *Analyzer {
	return &Analyzer{
		method:   method,
		criteria: criteria,
		logger:   log,
	}
}

// Run produces a ranked result from the snapshot.
//
// Malformed quotes are counted and skipped, never fatal. Quotes for which the
// chosen method is undefined (zero denominator) are excluded from ranking
// without counting as errors.
func (a *Analyzer) Run(snapshot *market.Snapshot) (*market.Result, error) {
	if snapshot.Len() == 0 {
		return nil, ErrNoData
	}

	if err := a.criteria.Validate(); err != nil {
		return nil, err
	}

	scored := make([]market.ScoredItem, 0, snapshot.Len())
	malformed := 0
	unscoreable := 0

	for id, quote := range snapshot.Items {
		if !wellFormed(id, quote) {
			malformed++
			continue
		}

		score, ok := Score(quote, a.method)
		if !ok {
			unscoreable++
			continue
		}

		scored = append(scored, market.ScoredItem{ItemQuote: quote, Score: score})
	}

	passed, filtered := NewScreener(a.criteria, a.logger).Screen(scored)
	ranked := Rank(passed, a.criteria.TopN)

	a.logger.WithFields(map[string]interface{}{
		"method":      string(a.method),
		"considered":  snapshot.Len(),
		"malformed":   malformed,
		"unscoreable": unscoreable,
		"ranked":      len(ranked),
	}).Info("Analysis completed")

	return &market.Result{
		Method:     a.method,
		Criteria:   a.criteria,
		CapturedAt: snapshot.CapturedAt,
		Source:     snapshot.Source,
		Considered: snapshot.Len(),
		Skipped:    snapshot.Malformed + malformed,
		Filtered:   filtered,
		Items:      ranked,
	}, nil
}

// wellFormed rejects quotes with missing or nonsensical required fields.
func wellFormed(id string, q market.ItemQuote) bool {
	if id == "" || q.ID == "" {
		return false
	}
	if q.Volume < 0 {
		return false
	}
	for _, v := range []float64{q.BuyPrice, q.SellPrice, q.QuickBuy, q.QuickSell} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
