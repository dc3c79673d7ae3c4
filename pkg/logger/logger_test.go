package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONOutputCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Level: "debug", Writer: &buf})

	log.WithComponent("Fetcher").Info("Fetching range", "start_date", "2024-01-01")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "Fetching range", line["message"])
	assert.Equal(t, "Fetcher", line["component"])
	assert.Equal(t, "2024-01-01", line["start_date"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Level: "warn", Writer: &buf})

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
