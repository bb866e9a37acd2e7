package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soopyv/bazscan/internal/market"
	"github.com/soopyv/bazscan/pkg/logger"
)

const artifactTimestampLayout = "20060102_150405"

// Writer persists analysis artifacts: a complete JSON result and a
// simplified CSV for spreadsheet import.
type Writer struct {
	dir    string
	logger *logger.Logger
}

// NewWriter creates an artifact writer targeting dir.
func NewWriter(dir string, log *logger.Logger) *Writer {
	return &Writer{
		dir:    dir,
		logger: log,
	}
}

// WriteAll writes both artifacts and returns their paths.
func (w *Writer) WriteAll(result *market.Result, now time.Time) (jsonPath, csvPath string, err error) {
	jsonPath, err = w.WriteJSON(result, now)
	if err != nil {
		return "", "", err
	}

	csvPath, err = w.WriteCSV(result, now)
	if err != nil {
		return "", "", err
	}

	return jsonPath, csvPath, nil
}

// WriteJSON writes the full result with metadata, keeping scores at full
// precision.
func (w *Writer) WriteJSON(result *market.Result, now time.Time) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("bazaar_profit_analysis_%s.json", now.Format(artifactTimestampLayout)))

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write JSON artifact: %w", err)
	}

	w.logger.WithField("path", path).Info("Saved JSON artifact")
	return path, nil
}

// WriteCSV writes the simplified artifact: one row per ranked item with the
// active metric value rounded to two decimals.
func (w *Writer) WriteCSV(result *market.Result, now time.Time) (string, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(w.dir, fmt.Sprintf("bazaar_profit_analysis_%s.csv", now.Format(artifactTimestampLayout)))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create CSV artifact: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)

	valueHeader := "margin"
	if result.Method.IsPercent() {
		valueHeader = "profit_percent"
	}
	header := []string{"item_id", "buy_price", "sell_price", valueHeader, "volume"}
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write CSV header: %w", err)
	}

	for _, item := range result.Items {
		row := []string{
			item.ID,
			fmt.Sprintf("%.2f", item.BuyPrice),
			fmt.Sprintf("%.2f", item.SellPrice),
			fmt.Sprintf("%.2f", item.Score),
			fmt.Sprintf("%d", item.Volume),
		}
		if err := cw.Write(row); err != nil {
			return "", fmt.Errorf("write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush CSV artifact: %w", err)
	}

	w.logger.WithField("path", path).Info("Saved CSV artifact")
	return path, nil
}
