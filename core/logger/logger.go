package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

var (
	instance *slog.Logger
	once     sync.Once
)

func get() *slog.Logger {
	once.Do(func() {
		instance = newLogger(os.Stderr, "info", "text")
	})
	return instance
}

func newLogger(w io.Writer, level string, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Init replaces the process logger. Safe to call more than once.
func Init(level string, format string) {
	Setup(os.Stderr, level, format)
}

// Setup is Init with an explicit writer, mostly for tests.
func Setup(w io.Writer, level string, format string) {
	once.Do(func() {})
	instance = newLogger(w, level, format)
}

func Debug(msg string, args ...any) {
	get().Debug(msg, normalize(args)...)
}

func Info(msg string, args ...any) {
	get().Info(msg, normalize(args)...)
}

func Warn(msg string, args ...any) {
	get().Warn(msg, normalize(args)...)
}

func Error(msg string, args ...any) {
	get().Error(msg, normalize(args)...)
}

// normalize lets callers pass a bare error as the first argument,
// the way most call sites do: logger.Error("Repo:Op", err).
func normalize(args []any) []any {
	if len(args) == 0 {
		return args
	}
	if err, ok := args[0].(error); ok {
		return append([]any{"error", err}, args[1:]...)
	}
	if len(args) == 1 {
		return []any{"detail", args[0]}
	}
	return args
}
