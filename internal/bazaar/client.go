package bazaar

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/soopyv/bazscan/internal/market"
	"github.com/soopyv/bazscan/pkg/config"
	"github.com/soopyv/bazscan/pkg/httputil"
	"github.com/soopyv/bazscan/pkg/logger"
)

// ErrUnavailable is returned when no configured endpoint yields a usable
// snapshot. Fatal to the run; the caller should suggest retrying later or
// replaying a saved payload.
var ErrUnavailable = errors.New("bazaar data unavailable from all sources")

// Client fetches bazaar snapshots, trying each configured endpoint in order
// until one returns a parseable payload.
type Client struct {
	endpoints  []string
	httpClient *httputil.Client
	logger     *logger.Logger
}

// NewClient creates a bazaar client from config.
func NewClient(cfg *config.Config, httpClient *httputil.Client, log *logger.Logger) *Client {
	return &Client{
		endpoints:  cfg.Bazaar.Endpoints,
		httpClient: httpClient,
		logger:     log,
	}
}

// Fetch returns the first usable snapshot plus the raw payload it was parsed
// from, so callers can save it for later replay.
func (c *Client) Fetch(ctx context.Context) (*market.Snapshot, []byte, error) {
	var lastErr error

	for _, endpoint := range c.endpoints {
		snapshot, raw, err := c.tryEndpoint(ctx, endpoint)
		if err != nil {
			c.logger.WithFields(map[string]interface{}{
				"endpoint": endpoint,
				"error":    err.Error(),
			}).Warn("Bazaar endpoint failed")
			lastErr = err
			continue
		}

		c.logger.WithFields(map[string]interface{}{
			"endpoint": endpoint,
			"items":    snapshot.Len(),
			"skipped":  snapshot.Malformed,
		}).Info("Fetched bazaar snapshot")
		return snapshot, raw, nil
	}

	if lastErr != nil {
		return nil, nil, fmt.Errorf("%w: last error: %v", ErrUnavailable, lastErr)
	}
	return nil, nil, ErrUnavailable
}

// tryEndpoint fetches and parses a single source.
func (c *Client) tryEndpoint(ctx context.Context, endpoint string) (*market.Snapshot, []byte, error) {
	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return nil, nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("read response body failed: %w", err)
	}

	snapshot, err := ParsePayload(raw, endpoint, time.Now())
	if err != nil {
		return nil, nil, fmt.Errorf("parse response failed: %w", err)
	}

	return snapshot, raw, nil
}
