package media

import (
	"context"
	"log/slog"

	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
)

// WithRoot overrides the default root directory of the system.
func WithRoot(root string) Options {
	return func(o *options) {
		o.root = root
	}
}

// WithRun overrides the mount command runner.
func WithRun(run func(ctx context.Context, args ...string) error) Options {
	return func(o *options) {
		o.run = run
	}
}

// WithProbe overrides the partition listing probe.
func WithProbe(probe hwscan.Runner) Options {
	return func(o *options) {
		o.probe = probe
	}
}

// WithMountPoints overrides the live and manual mount points and the fallback directory.
func WithMountPoints(livePoint, mountPoint, fallback string) Options {
	return func(o *options) {
		o.livePoint = livePoint
		o.mountPoint = mountPoint
		o.fallback = fallback
	}
}

// WithLogger overrides the default logger.
func WithLogger(handler slog.Handler) Options {
	return func(o *options) {
		o.log = slog.New(handler)
	}
}
