// Package logger configures structured logging for assetbatch.
//
// The loader core receives a *slog.Logger and emits diagnostics with
// consistent field keys (bundle, path, kind, err) so failures can be
// correlated per item. Binaries call New once at startup; libraries never
// configure logging themselves.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Standard field keys used across all log statements.
const (
	KeyBundle = "bundle"
	KeyPath   = "path"
	KeyKind   = "kind"
	KeyBatch  = "batch"
	KeyError  = "err"
)

// New returns a text-format slog.Logger writing to w at the given level.
//
// Level is one of "debug", "info", "warn", "error" (case-insensitive);
// unknown values fall back to info.
func New(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	}))
}

// ParseLevel maps a settings string to a slog.Level.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
