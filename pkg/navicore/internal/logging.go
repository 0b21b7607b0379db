// Package internal holds infrastructure shared across the navigation core
// that is not part of the public API: the logger singleton and the small
// shared constants (timing defaults, id alphabets) every package pulls from.
package internal

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	writerMu sync.Mutex
	writer   io.Writer = os.Stderr

	loggerOnce sync.Once
	logger     *slog.Logger
	levelVar   *slog.LevelVar
)

// SetOutput redirects all subsequent log output to w. Unlike gabagool's
// logger, which always writes to a log file on disk, navicore is an
// embedded library and must not assume it owns the process's filesystem:
// the default is os.Stderr, and embedders that want a file or a
// multi-writer call SetOutput themselves before the first log line.
// Call before GetLogger's first use; it has no effect afterwards.
func SetOutput(w io.Writer) {
	writerMu.Lock()
	defer writerMu.Unlock()
	writer = w
}

// GetLogger returns the package-wide structured logger, lazily constructing
// it on first use with a JSON handler over the configured writer.
func GetLogger() *slog.Logger {
	loggerOnce.Do(func() {
		levelVar = &slog.LevelVar{}
		writerMu.Lock()
		w := writer
		writerMu.Unlock()
		handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     levelVar,
			AddSource: false,
		})
		logger = slog.New(handler)
	})
	return logger
}

// SetLogLevel sets the minimum level the logger emits.
func SetLogLevel(level slog.Level) {
	GetLogger()
	levelVar.Set(level)
}

// SetRawLogLevel parses a level name ("debug", "info", "warn", "error") and
// applies it, defaulting to info for anything unrecognized.
func SetRawLogLevel(rawLevel string) {
	var level slog.Level
	switch strings.ToLower(rawLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	GetLogger()
	levelVar.Set(level)
}
