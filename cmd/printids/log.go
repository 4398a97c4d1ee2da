package main

import (
	"log/slog"
)

const progName = "printids"

func logLevel(opts Opts) slog.Level {
	if opts.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// setupLogging sends all diagnostics to stderr; stdout only ever carries
// the report line.
func setupLogging(opts Opts) {
	hOpts := &slog.HandlerOptions{Level: logLevel(opts)}
	handler := slog.NewTextHandler(stderr, hOpts)
	slog.SetDefault(slog.New(handler).With("prog", progName))
}
