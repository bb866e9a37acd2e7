package scan

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/soopyv/bazscan/internal/analysis"
	"github.com/soopyv/bazscan/internal/bazaar"
	"github.com/soopyv/bazscan/internal/market"
	"github.com/soopyv/bazscan/internal/report"
	"github.com/soopyv/bazscan/pkg/config"
	"github.com/soopyv/bazscan/pkg/logger"
)

// Runner coordinates one full scan: obtain a snapshot (live or replay),
// run the score/filter/rank pipeline and emit the report and artifacts.
type Runner struct {
	cfg    *config.Config
	client *bazaar.Client
	writer *report.Writer
	logger *logger.Logger
}

// Options configures a single scan invocation.
type Options struct {
	Method   market.ScoreMethod
	Criteria market.FilterCriteria

	// ReplayFile, when set, loads the snapshot from disk instead of the
	// live sources.
	ReplayFile string

	// PresetHash tags the result with the strategy preset that produced it.
	PresetHash string

	// WriteArtifacts controls JSON/CSV output; Out receives the console
	// table when non-nil.
	WriteArtifacts bool
	Out            io.Writer
}

// NewRunner creates a scan runner.
func NewRunner(cfg *config.Config, client *bazaar.Client, writer *report.Writer, log *logger.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		client: client,
		writer: writer,
		logger: log,
	}
}

// Run executes one scan and returns the ranked result.
//
// An empty result is success; only failing to obtain any snapshot is an
// error. On live fetches the raw payload is saved for later replay when
// configured.
func (r *Runner) Run(ctx context.Context, opts Options) (*market.Result, error) {
	snapshot, err := r.obtainSnapshot(ctx, opts)
	if err != nil {
		return nil, err
	}

	analyzer := analysis.New(opts.Method, opts.Criteria, r.logger)
	result, err := analyzer.Run(snapshot)
	if err != nil {
		return nil, fmt.Errorf("analysis failed: %w", err)
	}
	result.PresetHash = opts.PresetHash

	if opts.Out != nil {
		report.WriteTable(opts.Out, result)
	}

	if opts.WriteArtifacts {
		jsonPath, csvPath, err := r.writer.WriteAll(result, time.Now())
		if err != nil {
			return nil, fmt.Errorf("write artifacts: %w", err)
		}
		r.logger.WithFields(map[string]interface{}{
			"json": jsonPath,
			"csv":  csvPath,
		}).Info("Artifacts written")
	}

	return result, nil
}

// obtainSnapshot loads from the replay file when given, otherwise fetches
// live and saves the raw payload for future replay.
func (r *Runner) obtainSnapshot(ctx context.Context, opts Options) (*market.Snapshot, error) {
	if opts.ReplayFile != "" {
		snapshot, err := bazaar.LoadFile(opts.ReplayFile)
		if err != nil {
			return nil, fmt.Errorf("replay failed: %w", err)
		}
		r.logger.WithFields(map[string]interface{}{
			"file":  opts.ReplayFile,
			"items": snapshot.Len(),
		}).Info("Loaded snapshot from file")
		return snapshot, nil
	}

	snapshot, raw, err := r.client.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	if r.cfg.Bazaar.SaveRawPayload {
		path, err := bazaar.SaveRaw(r.cfg.Output.Dir, raw, time.Now())
		if err != nil {
			// Replay convenience only; the scan itself can proceed.
			r.logger.WithError(err).Warn("Failed to save raw payload")
		} else {
			r.logger.WithField("path", path).Info("Saved raw payload for replay")
		}
	}

	return snapshot, nil
}
