package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/soopyv/bazscan/internal/analysis"
	"github.com/soopyv/bazscan/internal/bazaar"
	"github.com/soopyv/bazscan/internal/market"
	"github.com/soopyv/bazscan/internal/scan"
	"github.com/soopyv/bazscan/pkg/logger"
)

// ScanHandler serves scan results over HTTP.
type ScanHandler struct {
	runner      *scan.Runner
	defaultOpts scan.Options
	logger      *logger.Logger

	mu     sync.RWMutex
	latest *market.Result
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(runner *scan.Runner, defaultOpts scan.Options, log *logger.Logger) *ScanHandler {
	return &ScanHandler{
		runner:      runner,
		defaultOpts: defaultOpts,
		logger:      log,
	}
}

// SetLatest seeds the latest result, e.g. from a scheduled watch job.
func (h *ScanHandler) SetLatest(result *market.Result) {
	h.mu.Lock()
	h.latest = result
	h.mu.Unlock()
}

// GetLatest returns the most recent scan result.
// GET /api/scan/latest
func (h *ScanHandler) GetLatest(w http.ResponseWriter, r *http.Request) {
	h.mu.RLock()
	latest := h.latest
	h.mu.RUnlock()

	if latest == nil {
		writeError(w, http.StatusNotFound, "no scan has completed yet")
		return
	}

	writeJSON(w, http.StatusOK, latest)
}

// RunScan runs a scan on demand and returns the result.
// POST /api/scan/run?method=...&min_volume=...&top_n=...&min_price=...&max_price=...
func (h *ScanHandler) RunScan(w http.ResponseWriter, r *http.Request) {
	opts := h.defaultOpts
	// API consumers get results back directly; no console table, no files.
	opts.Out = nil
	opts.WriteArtifacts = false

	if err := applyQueryOverrides(&opts, r); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.runner.Run(r.Context(), opts)
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, analysis.ErrNoData) {
			status = http.StatusNotFound
		} else if errors.Is(err, bazaar.ErrUnavailable) {
			status = http.StatusServiceUnavailable
		}
		h.logger.WithError(err).Error("On-demand scan failed")
		writeError(w, status, err.Error())
		return
	}

	h.SetLatest(result)
	writeJSON(w, http.StatusOK, result)
}

// GetMethods lists the supported score methods.
// GET /api/scan/methods
func (h *ScanHandler) GetMethods(w http.ResponseWriter, r *http.Request) {
	type methodInfo struct {
		Name        string `json:"name"`
		Percent     bool   `json:"percent"`
		Description string `json:"description"`
	}

	methods := make([]methodInfo, 0, 4)
	for _, m := range market.Methods() {
		methods = append(methods, methodInfo{
			Name:        string(m),
			Percent:     m.IsPercent(),
			Description: m.Description(),
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"methods": methods})
}

// applyQueryOverrides merges request query parameters over the default
// options.
func applyQueryOverrides(opts *scan.Options, r *http.Request) error {
	q := r.URL.Query()

	if v := q.Get("method"); v != "" {
		method, err := market.ParseMethod(v)
		if err != nil {
			return err
		}
		opts.Method = method
	}

	if v := q.Get("min_volume"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return err
		}
		opts.Criteria.MinVolume = n
	}

	if v := q.Get("top_n"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		opts.Criteria.TopN = n
	}

	if v := q.Get("min_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		opts.Criteria.MinPrice = f
	}

	if v := q.Get("max_price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		opts.Criteria.MaxPrice = f
	}

	return opts.Criteria.Validate()
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
