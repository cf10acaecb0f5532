package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
		"info":  slog.LevelInfo,
		"":      slog.LevelInfo,
	}

	for in, want := range testCases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNewWithWriterFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithWriter(&buf, "warn")
	log.Info("dropped")
	log.Warn("kept", slog.String("key", "value"))

	var rec map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, "kept", rec["msg"])
	assert.Equal(t, "value", rec["key"])
}
