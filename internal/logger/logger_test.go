package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/shapecheck/internal/logger"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(
		logger.WithFormat(logger.FormatJSON),
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithAttr(slog.String("service", "shapecheck")),
	)
	l.Debug("hello", "k", 1)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.Equal(t, "shapecheck", rec["service"])
	assert.Equal(t, float64(1), rec["k"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(logger.WithOutput(&buf), logger.WithLevel(slog.LevelWarn))
	l.Info("dropped")
	assert.Empty(t, buf.String())
	l.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParse(t *testing.T) {
	lvl, err := logger.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	_, err = logger.ParseLevel("loud")
	assert.Error(t, err)

	f, err := logger.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logger.FormatJSON, f)
	_, err = logger.ParseFormat("xml")
	assert.Error(t, err)
}
