package wipe

import (
	"context"
	"io"
	"log/slog"
)

// WithRun overrides the wipe command runner.
func WithRun(run func(ctx context.Context, args ...string) error) Options {
	return func(o *options) {
		o.run = run
	}
}

// WithPrompt overrides the operator confirmation prompt.
func WithPrompt(prompt func(prompt string) (string, error)) Options {
	return func(o *options) {
		o.prompt = prompt
	}
}

// WithOut overrides where operator-facing text is written.
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
