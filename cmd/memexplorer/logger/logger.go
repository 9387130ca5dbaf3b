// Package logger provides the memexplorer debug log. Logging is off unless
// Init is called with Enabled set, because the TUI owns the terminal.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// L is the global logger. It discards everything until Init enables it.
var L = discard()

const (
	logPrefix     = "memexplorer-"
	logSuffix     = ".log"
	dateLayout    = "2006-01-02"
	retentionDays = 30
)

// Options configures the logger initialization.
type Options struct {
	Enabled bool       // If false, all logging is discarded
	LogDir  string     // Directory for log files. Default: ~/.memexplorer/logs
	Level   slog.Level // Minimum log level
}

// Init configures logging and returns a function that closes the log file.
// Call from main() before any log calls.
func Init(opts Options) (func() error, error) {
	if !opts.Enabled {
		L = discard()
		return func() error { return nil }, nil
	}

	dir := opts.LogDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(home, ".memexplorer", "logs")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	now := time.Now()
	removed := cleanOldLogs(dir, now)

	f, err := os.OpenFile(filepath.Join(dir, fileName(now)), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}

	L = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: opts.Level}))
	if removed > 0 {
		L.Debug("removed old logs", "count", removed, "dir", dir)
	}
	return f.Close, nil
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// fileName returns the log file for day t, e.g. memexplorer-2024-01-05.log.
func fileName(t time.Time) string {
	return logPrefix + t.Format(dateLayout) + logSuffix
}

// logDate extracts the day from a log file name.
func logDate(name string) (time.Time, bool) {
	if !strings.HasPrefix(name, logPrefix) || !strings.HasSuffix(name, logSuffix) {
		return time.Time{}, false
	}
	day, err := time.Parse(dateLayout, strings.TrimSuffix(strings.TrimPrefix(name, logPrefix), logSuffix))
	if err != nil {
		return time.Time{}, false
	}
	return day, true
}

// cleanOldLogs removes log files older than retentionDays and reports how
// many were removed. Errors are ignored.
func cleanOldLogs(dir string, now time.Time) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0
	}

	cutoff := now.AddDate(0, 0, -retentionDays)
	removed := 0
	for _, e := range entries {
		day, ok := logDate(e.Name())
		if !ok || !day.Before(cutoff) {
			continue
		}
		if os.Remove(filepath.Join(dir, e.Name())) == nil {
			removed++
		}
	}
	return removed
}

// Debug logs a debug message with optional key-value pairs.
func Debug(msg string, args ...any) { L.Debug(msg, args...) }

// Info logs an info message with optional key-value pairs.
func Info(msg string, args ...any) { L.Info(msg, args...) }

// Warn logs a warning message with optional key-value pairs.
func Warn(msg string, args ...any) { L.Warn(msg, args...) }

// Error logs an error message with optional key-value pairs.
func Error(msg string, args ...any) { L.Error(msg, args...) }
