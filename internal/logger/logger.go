// Package logger provides leveled diagnostics for the editor. Nothing
// is written unless Init is called with an output; the editor's own
// output never goes through here.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

var (
	mu            sync.Mutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	logLevel      = new(slog.LevelVar)
)

// Config holds the logger settings.
type Config struct {
	// Level is the minimum level to log (debug, info, warn, error).
	Level string `toml:"level"`
	// File is the path of the log file. Empty discards, "-" is stderr.
	File string `toml:"file"`
}

// ParseLevel converts a level name into a slog.Level, defaulting to
// info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Open returns the writer described by cfg.File. The returned close
// function must be called once logging is done.
func (cfg Config) Open() (io.Writer, func() error, error) {
	switch cfg.File {
	case "":
		return io.Discard, func() error { return nil }, nil
	case "-":
		return os.Stderr, func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %q: %w", cfg.File, err)
	}
	return f, f.Close, nil
}

// Init sets the level and output of the package logger.
func Init(level slog.Level, output io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		output = io.Discard
	}
	logLevel.Set(level)
	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	defaultLogger = slog.New(slog.NewTextHandler(output, &opts))
}

// logAtLevel logs a record at level with the caller of the exported
// wrapper as its source.
func logAtLevel(level slog.Level, format string, args ...any) {
	l := get()
	if !l.Enabled(context.Background(), level) {
		return
	}
	var pcs [1]uintptr
	runtime.Callers(3, pcs[:])
	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...any) { logAtLevel(slog.LevelDebug, format, args...) }

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...any) { logAtLevel(slog.LevelInfo, format, args...) }

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...any) { logAtLevel(slog.LevelWarn, format, args...) }

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...any) { logAtLevel(slog.LevelError, format, args...) }

// get returns the package logger.
func get() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}
