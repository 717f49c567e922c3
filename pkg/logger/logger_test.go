package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "warn")
	require.NoError(t, err)

	log.Info("skipped: id=%d", 1)
	log.Warn("slot taken: date=%s hour=%d", "2026-10-22", 10)
	log.Error("sink failed: %v", "timeout")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "slot taken: date=2026-10-22 hour=10", entry["msg"])
	assert.Contains(t, entry, "ts")

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "sink failed: timeout", entry["msg"])
}

func TestNew_UnknownLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "info"},
		{"INFO", "info"},
		{" debug ", "debug"},
		{"warning", "warn"},
		{"error", "error"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			lvl, err := parseLevel(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, lvl.String())
		})
	}
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing %d", 1)
	log.Warn("nothing")
	log.Error("nothing")
	assert.NoError(t, log.Close())
}
