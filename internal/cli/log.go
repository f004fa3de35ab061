package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates the logger behind every command. It writes to w, which
// is stderr in normal use so that stdout stays free for trees and drawings,
// and drops messages below level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress measures one stage of a command (reading, rendering, writing)
// and logs its outcome with the elapsed time.
// It is meant for a single goroutine.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress starts measuring a stage now. Call done when the stage ends.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at Info level with the elapsed time rounded to the
// millisecond, e.g. "Read 3 trees from trees.nwk (12ms)".
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey keys values this package stores in a context.
type ctxKey int

// loggerKey is the context key of the command logger.
const loggerKey ctxKey = 0

// withLogger attaches the command logger to ctx. The root command does this
// once before any subcommand runs.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by withLogger. A nil ctx or
// one without a logger yields log.Default(), so helpers called outside a
// command still log somewhere.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
