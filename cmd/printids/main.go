package main

import (
	"log/slog"
	"os"
)

func main() {
	opts, err := GetOpts(os.Args[1:])
	setupLogging(opts)
	if err != nil {
		// the report is printed regardless of what is on the command line
		slog.Warn("bad arguments", "error", err)
	}
	slog.Debug("cmdline", "opts", opts)

	App{Opts: opts}.run()
}
