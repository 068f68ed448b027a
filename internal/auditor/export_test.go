package auditor

import (
	"io"
	"log/slog"
	"time"
)

// WithOut overrides where operator-facing panels are written.
func WithOut(out io.Writer) Options {
	return func(o *options) {
		o.out = out
	}
}

// WithLogger overrides the default logger.
func WithLogger(handler slog.Handler) Options {
	return func(o *options) {
		o.log = slog.New(handler)
	}
}

// WithClock overrides the ledger timestamp clock.
func WithClock(now func() time.Time) Options {
	return func(o *options) {
		o.time = clockFunc(now)
	}
}

type clockFunc func() time.Time

func (f clockFunc) Now() time.Time {
	return f()
}
