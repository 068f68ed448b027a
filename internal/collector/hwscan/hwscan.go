// Package hwscan collects the hardware facts needed to grade a used laptop for
// resale: identity, CPU, memory, storage, battery, GPU and display.
//
// Every fact degrades to a documented sentinel when its probe fails or its output
// cannot be parsed. A scan never fails as a whole.
package hwscan

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/refurbworks/laptop-audit/internal/cmdutils"
	"github.com/refurbworks/laptop-audit/internal/constants"
	"github.com/refurbworks/laptop-audit/internal/fileutils"
)

// Sentinels for facts that could not be determined.
const (
	Unknown = "N/A"
	NoGPU   = "None"
)

// Storage kinds, derived from the device path convention.
const (
	StorageNVMe = "NVMe"
	StorageSATA = "SATA"
)

// SMART self-test verdicts.
const (
	HealthPassed = "PASSED"
	HealthFailed = "FAILED"
)

// Display classes.
const (
	ClassStandard = "Standard"
	Class4K       = "4K/Retina Class"
)

// Record is the normalized hardware record of one audited unit.
// It is fully populated by Collect; undetermined facts carry their sentinel.
type Record struct {
	ServiceTag      string
	Model           string
	CPUModel        string
	CPUCores        int
	CPUGeneration   int
	RAMSizeGB       int
	RAMType         string
	StorageKind     string
	StorageGB       int
	StorageHealth   string
	BatteryPct      string
	GPU             string
	Resolution      string
	ResolutionClass string

	// PrimaryDisk is the resolved internal disk device, kept for the wipe flow.
	// It is never written to the ledger.
	PrimaryDisk string
}

// Runner executes a probe command and returns its trimmed stdout, or "" when no
// output could be captured.
type Runner func(ctx context.Context, args ...string) string

// Collector handles dependencies for collecting hardware information.
type Collector struct {
	opts options
}

// Options is the variadic options available to the Collector.
type Options func(*options)

type options struct {
	root string
	run  Runner
	log  *slog.Logger

	serialCmd   []string
	productCmd  []string
	memTableCmd []string
	diskListCmd []string
	partListCmd []string
	diskSizeCmd []string // device appended at call time
	smartCmd    []string // device appended at call time
	batteryCmd  []string
	pciCmd      []string
	screenCmd   []string
}

// defaultOptions returns options for when running against a live machine.
func defaultOptions() *options {
	return &options{
		root: "/",
		log:  slog.Default(),

		serialCmd:   []string{"dmidecode", "-s", "system-serial-number"},
		productCmd:  []string{"dmidecode", "-s", "system-product-name"},
		memTableCmd: []string{"dmidecode", "-t", "memory"},
		diskListCmd: []string{"lsblk", "-dnpo", "NAME,TYPE,RM"},
		partListCmd: []string{"lsblk", "-nrpo", "NAME,RM,TYPE"},
		diskSizeCmd: []string{"lsblk", "-bdn", "-o", "SIZE"},
		smartCmd:    []string{"smartctl", "-H"},
		batteryCmd:  []string{"upower", "-i", "/org/freedesktop/UPower/devices/battery_BAT0"},
		pciCmd:      []string{"lspci"},
		screenCmd:   []string{"xrandr"},
	}
}

// New returns a new Collector.
func New(args ...Options) Collector {
	opts := defaultOptions()
	for _, opt := range args {
		opt(opts)
	}

	if opts.run == nil {
		log := opts.log
		opts.run = func(ctx context.Context, args ...string) string {
			return cmdutils.Probe(ctx, constants.ProbeTimeout, log, args...)
		}
	}

	return Collector{opts: *opts}
}

// Collect runs every probe in sequence and assembles the hardware record.
// A failed probe leaves its fields at their sentinel; Collect itself never fails.
func (c Collector) Collect(ctx context.Context) Record {
	c.opts.log.Debug("collecting hardware record")

	r := Record{
		ServiceTag: orUnknown(c.opts.run(ctx, c.opts.serialCmd...)),
		Model:      orUnknown(c.opts.run(ctx, c.opts.productCmd...)),
	}
	c.opts.log.Debug("identity collected", "serviceTag", r.ServiceTag, "model", r.Model)

	cpuinfo := fileutils.ReadFileLogError(filepath.Join(c.opts.root, "proc/cpuinfo"), c.opts.log)
	r.CPUModel, r.CPUCores = parseCPUInfo(cpuinfo)
	r.CPUGeneration = parseCPUGeneration(r.CPUModel)

	meminfo := fileutils.ReadFileLogError(filepath.Join(c.opts.root, "proc/meminfo"), c.opts.log)
	r.RAMSizeGB = parseMemTotalGB(meminfo)
	r.RAMType = parseRAMType(c.opts.run(ctx, c.opts.memTableCmd...))

	r.PrimaryDisk = c.primaryDisk(ctx)
	if r.PrimaryDisk == "" {
		c.opts.log.Warn("no internal disk detected, storage facts undetermined")
	}
	r.StorageKind, r.StorageGB, r.StorageHealth = c.collectStorage(ctx, r.PrimaryDisk)

	r.BatteryPct = parseBatteryPct(c.opts.run(ctx, c.opts.batteryCmd...))
	r.GPU = parseGPU(c.opts.run(ctx, c.opts.pciCmd...))
	r.Resolution, r.ResolutionClass = c.collectScreen(ctx)

	c.opts.log.Debug("hardware record complete", "record", fmt.Sprintf("%+v", r))
	return r
}

// collectScreen finds the largest advertised mode, preferring xrandr and falling
// back to the kernel mode lists per graphics card.
func (c Collector) collectScreen(ctx context.Context) (resolution, class string) {
	w, h := maxResolution(c.opts.run(ctx, c.opts.screenCmd...))

	if w == 0 {
		modes, err := filepath.Glob(filepath.Join(c.opts.root, "sys/class/drm", "*", "modes"))
		if err != nil {
			c.opts.log.Warn("failed to list kernel mode files", "error", err)
		}
		for _, m := range modes {
			if mw, mh := maxResolution(fileutils.ReadFileOrEmpty(m)); mw*mh > w*h {
				w, h = mw, mh
			}
		}
	}

	if w == 0 {
		return Unknown, Unknown
	}

	class = ClassStandard
	if w > 2500 {
		class = Class4K
	}
	return fmt.Sprintf("%dx%d", w, h), class
}

func orUnknown(s string) string {
	if s == "" {
		return Unknown
	}
	return s
}
