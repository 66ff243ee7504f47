package main

import (
	"io"
	"log/slog"
)

const logLevelEnv = "FIXREQS_LOG_LEVEL"

// newLogger returns a text logger at the named level (debug, info, warn, error). Empty or unknown
// names fall back to warn.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl := slog.LevelWarn
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			lvl = parsed
		}
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
