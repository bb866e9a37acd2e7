package bazaar

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/soopyv/bazscan/internal/market"
)

// rawTimestampLayout names saved payloads so replay files sort
// chronologically.
const rawTimestampLayout = "20060102_150405"

// LoadFile loads a snapshot from a previously saved raw payload, enabling
// offline replay. The file's modification time becomes the capture time.
func LoadFile(path string) (*market.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	capturedAt := time.Now()
	if info, err := os.Stat(path); err == nil {
		capturedAt = info.ModTime()
	}

	snapshot, err := ParsePayload(data, path, capturedAt)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot file %s: %w", path, err)
	}

	return snapshot, nil
}

// SaveRaw writes a fetched payload to dir for future replay and returns the
// path written.
func SaveRaw(dir string, raw []byte, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("bazaar_raw_%s.json", now.Format(rawTimestampLayout)))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write raw payload: %w", err)
	}

	return path, nil
}
