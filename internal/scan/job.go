package scan

import (
	"context"
	"sync"

	"github.com/soopyv/bazscan/internal/market"
)

// Job wraps a Runner as a scheduler job for watch mode, keeping the most
// recent result available to readers such as the HTTP API.
type Job struct {
	runner   *Runner
	opts     Options
	schedule string

	mu     sync.RWMutex
	latest *market.Result
}

// NewJob creates a scheduled scan job.
func NewJob(runner *Runner, opts Options, schedule string) *Job {
	return &Job{
		runner:   runner,
		opts:     opts,
		schedule: schedule,
	}
}

// Name implements scheduler.Job
func (j *Job) Name() string {
	return "bazaar-scan"
}

// Schedule implements scheduler.Job
func (j *Job) Schedule() string {
	return j.schedule
}

// Run implements scheduler.Job
func (j *Job) Run(ctx context.Context) error {
	result, err := j.runner.Run(ctx, j.opts)
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.latest = result
	j.mu.Unlock()
	return nil
}

// Latest returns the most recent result, or nil before the first run.
func (j *Job) Latest() *market.Result {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.latest
}
