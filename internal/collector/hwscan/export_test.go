package hwscan

import (
	"log/slog"
)

// WithRoot overrides the default root directory of the system.
func WithRoot(root string) Options {
	return func(o *options) {
		o.root = root
	}
}

// WithRunner overrides the probe command runner.
func WithRunner(run Runner) Options {
	return func(o *options) {
		o.run = run
	}
}

// WithLogger overrides the default logger.
func WithLogger(handler slog.Handler) Options {
	return func(o *options) {
		o.log = slog.New(handler)
	}
}

// Parsers exported for direct tests against literal probe output.
var (
	ParseCPUInfo       = parseCPUInfo
	ParseCPUGeneration = parseCPUGeneration
	ParseMemTotalGB    = parseMemTotalGB
	ParseRAMType       = parseRAMType
	ParseBatteryPct    = parseBatteryPct
	ParseGPU           = parseGPU
	MaxResolution      = maxResolution
)
