package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesJSONLinesToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "statidx.log")

	logger, cleanup, err := Setup(Config{Level: "info", FilePath: path, MaxSizeMB: 1, MaxFiles: 2})
	require.NoError(t, err)
	defer cleanup()

	logger.Info("build started", "documents", 3)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)

	var line map[string]any
	firstLine := bytes.SplitN(data, []byte("\n"), 2)[0]
	require.NoError(t, json.Unmarshal(firstLine, &line))
	assert.Equal(t, "build started", line["msg"])
	assert.Equal(t, float64(3), line["documents"])
}

func TestParseLevel_UnknownDefaultsToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LevelFromString("nonsense"))
}

func TestParseLevel_RecognizesEachLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromString("debug"))
	assert.Equal(t, slog.LevelWarn, LevelFromString("warn"))
	assert.Equal(t, slog.LevelError, LevelFromString("error"))
}

func TestDebugConfig_SetsDebugLevel(t *testing.T) {
	assert.Equal(t, "debug", DebugConfig().Level)
}
