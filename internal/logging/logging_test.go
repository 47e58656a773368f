package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelDebug, Format: FormatText, Output: &buf})

	logger.Debug("problem stored", "problem_id", "p-1")

	out := buf.String()
	require.Contains(t, out, "problem stored")
	require.Contains(t, out, "problem_id=p-1")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelInfo, Format: FormatJSON, Output: &buf})

	logger.Info("serving", "listen", "0.0.0.0:3000")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "serving", entry["msg"])
	require.Equal(t, "0.0.0.0:3000", entry["listen"])
}

func TestNewLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: LevelError, Format: FormatText, Output: &buf})

	logger.Info("dropped")
	logger.Error("kept")

	out := buf.String()
	require.NotContains(t, out, "dropped")
	require.Contains(t, out, "kept")
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "verbose", Format: FormatText, Output: &buf})

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "shown")
}
