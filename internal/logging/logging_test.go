package logging

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesJSONLines(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	cfg := DefaultConfig()
	cfg.FilePath = logPath

	logger, cleanup, err := Setup(cfg)
	require.NoError(t, err)

	logger.Info("catalog_loaded", slog.Int("templates", 42))
	cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(strings.Split(strings.TrimSpace(string(data)), "\n")[0]), &entry))
	assert.Equal(t, "catalog_loaded", entry["msg"])
	assert.Equal(t, float64(42), entry["templates"])
}

func TestSetup_RespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	cfg := DefaultConfig()
	cfg.FilePath = logPath
	cfg.Level = "warn"

	logger, cleanup, err := Setup(cfg)
	require.NoError(t, err)

	logger.Info("should_be_dropped")
	logger.Warn("should_be_kept")
	cleanup()

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)

	assert.NotContains(t, string(data), "should_be_dropped")
	assert.Contains(t, string(data), "should_be_kept")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestRotatingWriter_RotatesAtSizeLimit(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "rotate.log")

	// 1MB limit is the smallest expressible; write past it.
	w, err := NewRotatingWriter(logPath, 1, 2)
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	chunk := strings.Repeat("x", 64*1024)
	for i := 0; i < 20; i++ {
		_, err := w.Write([]byte(fmt.Sprintf("%d %s\n", i, chunk)))
		require.NoError(t, err)
	}

	_, err = os.Stat(logPath + ".1")
	assert.NoError(t, err, "expected rotated file to exist")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(1024*1024)+int64(len(chunk))+16)
}

func TestDiscard_DoesNotPanic(t *testing.T) {
	logger := Discard()
	logger.Info("swallowed")
}
