// Package cli implements the wgraph command-line interface.
//
// This package provides commands for converting graphs between the
// structured document formats (JSON, TOML, YAML) and the delimited adjacency
// matrix, printing and browsing them, and editing vertices and edges in
// place. The CLI is built using cobra and viper and logs via the
// charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - convert: Re-encode a graph file in another format
//   - show: Print a graph as an adjacency table
//   - inspect: Browse vertices and their outgoing edges interactively
//   - vertex add/remove: Edit the vertex set of a graph file
//   - edge add/remove: Edit the edge set of a graph file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking, and
// storage events from pkg/io and pkg/graph are logged at debug level.
//
// # Example
//
//	import "github.com/graphlab/wgraph/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/graphlab/wgraph/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
// The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Converted graph.json (1.234s)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
// The logger can be retrieved later with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// storageLogger reports storage events through a charm logger.
type storageLogger struct {
	logger *log.Logger
}

func (s *storageLogger) OnLoad(_ context.Context, ev observability.Event, d time.Duration, err error) {
	if err != nil {
		s.logger.Debug("load failed", "path", ev.Path, "format", ev.Format, "err", err)
		return
	}
	s.logger.Debug("loaded graph", "path", ev.Path, "format", ev.Format,
		"vertices", ev.Vertices, "edges", ev.Edges, "took", d.Round(time.Microsecond))
}

func (s *storageLogger) OnSave(_ context.Context, ev observability.Event, d time.Duration, err error) {
	if err != nil {
		s.logger.Debug("save failed", "path", ev.Path, "format", ev.Format, "err", err)
		return
	}
	s.logger.Debug("saved graph", "path", ev.Path, "format", ev.Format,
		"vertices", ev.Vertices, "edges", ev.Edges, "took", d.Round(time.Microsecond))
}

func (s *storageLogger) OnMutate(_ context.Context, ev observability.Event) {
	s.logger.Debug("graph changed", "op", ev.Op, "vertices", ev.Vertices, "edges", ev.Edges)
}
