package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/library/internal/infrastructure/config"
)

func TestNew(t *testing.T) {
	t.Run("json格式", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "info", Format: "json"}, &buf)

		log.Info("book.registered", slog.Uint64("book_id", 3))

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "book.registered", entry["msg"])
		assert.Equal(t, float64(3), entry["book_id"])
	})

	t.Run("低于级别的日志被丢弃", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(config.LogConfig{Level: "warn", Format: "text"}, &buf)

		log.Info("ignored")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warn "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("unknown"))
}

func TestNewLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "library.log")
	cfg := &config.Config{Log: config.LogConfig{Level: "info", Format: "json", Output: path}}

	log, err := NewLogger(cfg)
	require.NoError(t, err)
	log.Info("hello")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
