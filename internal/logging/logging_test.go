package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("INFO"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLevel("bogus"))
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loadsheet.log")

	cleanup, err := Setup(Config{Level: "debug", FilePath: path})
	require.NoError(t, err)

	slog.Debug("plan_started", slog.String("aircraft", "ph-dha"))
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"plan_started"`)
	assert.Contains(t, string(data), `"aircraft":"ph-dha"`)
}

func TestRotatingWriter_RotatesAtSizeLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loadsheet.log")

	w, err := NewRotatingWriter(path, 1)
	require.NoError(t, err)
	defer w.Close()

	// Force the limit low enough to trigger rotation.
	w.maxSize = 64

	line := strings.Repeat("x", 40) + "\n"
	_, err = w.Write([]byte(line))
	require.NoError(t, err)
	_, err = w.Write([]byte(line))
	require.NoError(t, err)

	_, err = os.Stat(path + ".old")
	assert.NoError(t, err, "rotated file should exist")
}

func TestDefaultLogPath(t *testing.T) {
	assert.True(t, strings.HasSuffix(DefaultLogPath(), filepath.Join("logs", "loadsheet.log")))
}
