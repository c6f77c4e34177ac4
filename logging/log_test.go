package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"error":   slog.LevelError,
		"warn":    slog.LevelWarn,
		"WARNING": slog.LevelWarn,
		"Info":    slog.LevelInfo,
		"debug":   slog.LevelDebug,
	}

	for input, want := range tests {
		got, err := GetLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := GetLevel("verbose")
	assert.ErrorIs(t, err, ErrUnknownLogLevel)
}

func TestGetFormat(t *testing.T) {
	got, err := GetFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, got)

	_, err = GetFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownLogFormat)
}

// TestNewHandler_InvalidArgument verifies bad names wrap ErrInvalidArgument
func TestNewHandler_InvalidArgument(t *testing.T) {
	var buf bytes.Buffer

	_, err := NewHandler(&buf, "loud", "text")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrUnknownLogLevel)

	_, err = NewHandler(&buf, "info", "xml")
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.ErrorIs(t, err, ErrUnknownLogFormat)
}

// TestNewHandler_JSON verifies JSON output and level filtering
func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewHandler(&buf, "warn", "json")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("dropped")
	logger.Warn("kept", "rule", "foo")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "foo", entry["rule"])
	assert.NotContains(t, buf.String(), "dropped")
}

// TestNewHandler_Text verifies the text handler writes messages and
// attributes
func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	h, err := NewHandler(&buf, "debug", "text")
	require.NoError(t, err)

	slog.New(h).Debug("rendered rule", "name", "foo")

	assert.Contains(t, buf.String(), "rendered rule")
	assert.Contains(t, buf.String(), "foo")
}
