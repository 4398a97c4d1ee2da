package main

import (
	"fmt"
	"io"
	"log/slog"
)

type App struct {
	Opts Opts
}

func (app App) report(w io.Writer) error {
	if len(app.Opts.Params) > 0 {
		slog.Debug("ignoring arguments", "params", app.Opts.Params)
	}

	ids := CurrentIDs()
	slog.Debug("ids",
		"real", ids.Real,
		"effective", ids.Effective,
		"elevated", ids.Elevated(),
		"root", ids.IsRoot(),
	)

	if _, err := fmt.Fprintln(w, ids); err != nil {
		return fmt.Errorf("failed to write ids: %w", err)
	}
	return nil
}

func (app App) run() {
	// a broken stdout is not fatal, the exit status stays 0
	if err := app.report(stdout); err != nil {
		slog.Warn("report", "error", err)
	}
}
