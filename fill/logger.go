package fill

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false, so disabled logging skips attribute formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with fills on other goroutines.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by fill. By default nothing is logged.
// Pass nil to restore the silent default. Safe for concurrent use.
//
// Every completed fill emits one [slog.LevelDebug] record with the strategy,
// seed coordinates, and the filled and visited counts:
//
//	fill.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by fill.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// logDone records a finished fill and publishes its counters to opts.Stats.
func logDone(opts Options, strategy string, x, y int, st Stats) {
	if opts.Stats != nil {
		*opts.Stats = st
	}
	l := Logger()
	if !l.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.Debug("fill done",
		slog.String("strategy", strategy),
		slog.Int("x", x),
		slog.Int("y", y),
		slog.Int("filled", st.Filled),
		slog.Int("visited", st.Visited),
	)
}
