// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(DefaultConfig(), &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("seat awarded", zap.Int("list", 3))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "seat awarded", entry["msg"])
	assert.EqualValues(t, 3, entry["list"])
	assert.Contains(t, entry, "ts")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Format = "console"
	cfg.Level = "debug"

	logger, err := New(cfg, &buf)
	require.NoError(t, err)
	logger.Debug("state changed", zap.String("to", "done"))

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "state changed")
	assert.Contains(t, buf.String(), `{"to": "done"}`)
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "apportion.log")
	cfg := DefaultConfig()
	cfg.File = path

	var buf bytes.Buffer
	logger, err := New(cfg, &buf)
	require.NoError(t, err)
	logger.Warn("written to file")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "written to file")
	assert.Zero(t, buf.Len(), "file output should not reach the fallback writer")
}

func TestNewErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"level", func(c *Config) { c.Level = "loud" }},
		{"format", func(c *Config) { c.Format = "xml" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			_, err := New(cfg, &bytes.Buffer{})
			assert.Error(t, err)
		})
	}
}
