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

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"error", slog.LevelError},
		{"unknown", slog.LevelInfo}, // default
		{"", slog.LevelInfo},        // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ParseLevel(tt.input)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo, FormatText)

	logger.Debug("hidden")
	logger.Info("rendered report", "cards", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="rendered report"`)
	assert.Contains(t, out, "cards=3")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug, FormatJSON)

	logger.Warn("error finding issue", "ref", "api#12")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "error finding issue", entry["msg"])
	assert.Equal(t, "api#12", entry["ref"])
}

func TestSink_WritesToFile(t *testing.T) {
	// Setup
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "logs", "butler.log")
	sink, err := NewSink(&stderr, path)
	require.NoError(t, err)

	// Execute
	logger := New(sink, slog.LevelInfo, FormatText)
	logger.Info("first")
	logger.Info("second")
	require.NoError(t, sink.Close())

	// Assert
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "msg=first")
	assert.Contains(t, string(content), "msg=second")
	assert.Equal(t, stderr.String(), string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm()&0o640)
}

func TestSink_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "butler.log")
	require.NoError(t, os.WriteFile(path, []byte("existing\n"), 0o640))

	sink, err := NewSink(&bytes.Buffer{}, path)
	require.NoError(t, err)
	_, err = sink.Write([]byte("appended\n"))
	require.NoError(t, err)
	require.NoError(t, sink.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing\nappended\n", string(content))
}

func TestSink_NoFile(t *testing.T) {
	var stderr bytes.Buffer
	sink, err := NewSink(&stderr, "")
	require.NoError(t, err)

	_, err = sink.Write([]byte("line\n"))

	require.NoError(t, err)
	assert.Equal(t, "line\n", stderr.String())
	assert.NoError(t, sink.Close())
}
