package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled(t *testing.T) {
	closeLog, err := Init(Options{})
	require.NoError(t, err)
	require.NoError(t, closeLog())
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		assert.False(t, L.Enabled(t.Context(), level), level.String())
	}
}

func TestInit_WritesJSON(t *testing.T) {
	dir := t.TempDir()
	closeLog, err := Init(Options{Enabled: true, LogDir: dir, Level: slog.LevelDebug})
	require.NoError(t, err)
	t.Cleanup(func() { L = discard() })

	Debug("exec", "command", "alloc A 10")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(filepath.Join(dir, fileName(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"exec"`)
	assert.Contains(t, string(data), `"command":"alloc A 10"`)
}

func TestLogDate(t *testing.T) {
	day, ok := logDate("memexplorer-2024-01-05.log")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), day)

	for _, name := range []string{"memexplorer-latest.log", "other-2024-01-05.log", "memexplorer-2024-01-05.txt"} {
		_, ok := logDate(name)
		assert.False(t, ok, name)
	}
}

func TestCleanOldLogs(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	files := []string{
		fileName(now),
		fileName(now.AddDate(0, 0, -10)),
		fileName(now.AddDate(0, 0, -45)),
		fileName(now.AddDate(0, -6, 0)),
		"notes.txt",
	}
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), nil, 0o644))
	}

	assert.Equal(t, 2, cleanOldLogs(dir, now))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	var left []string
	for _, e := range entries {
		left = append(left, e.Name())
	}
	assert.ElementsMatch(t, []string{files[0], files[1], "notes.txt"}, left)
}
