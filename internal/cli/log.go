// Package cli implements the histoscene command-line interface.
//
// The commands render chart specs from files, render the built-in demo
// datasets, serve the render pipeline over HTTP and manage the artifact
// cache. The CLI is built using cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - render: Render a chart spec file (JSON or TOML) to SVG, PNG or JSON
//   - demo: Render a built-in dataset, picked interactively when no name is given
//   - serve: Run the HTTP API
//   - cache: Inspect and clear the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// logs pipeline and cache events. Loggers are passed through
// context.Context.
//
// # Configuration
//
// Defaults are read from $XDG_CONFIG_HOME/histoscene/config.toml, or the
// file named by --config. See [Config].
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with "HH:MM:SS.ms" timestamps that writes to w
// and filters messages below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs completion of an operation with its elapsed duration.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond,
// e.g. "Rendered rewards (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
