package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfitcast/internal/infra/config"
)

func TestNewWritesJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, config.LogConfig{Level: "info"})

	log.Info("forecast generated", "location", "Goa — Panaji")
	log.Debug("dropped")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "outfitcast", entry["service"])
	require.Equal(t, "forecast generated", entry["msg"])
	require.Equal(t, "Goa — Panaji", entry["location"])
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := newWithWriter(&buf, config.LogConfig{Level: "debug", Format: "TEXT"})

	log.Debug("hello")
	require.Contains(t, buf.String(), "msg=hello")
	require.Contains(t, buf.String(), "service=outfitcast")
}

func TestParseLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, parseLevel("warn"))
	require.Equal(t, slog.LevelError, parseLevel("error"))
	require.Equal(t, slog.LevelInfo, parseLevel(""))
}
