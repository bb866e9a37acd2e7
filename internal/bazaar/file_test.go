package bazaar

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveRawAndLoadFile(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)

	path, err := SaveRaw(dir, []byte(hypixelPayload), now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "bazaar_raw_20260831_123045.json"), path)

	snapshot, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, snapshot.Len())
	assert.Equal(t, path, snapshot.Source)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFile_Corrupt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{"), 0o644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
