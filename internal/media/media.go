// Package media resolves a writable directory for ledger storage on the boot USB.
//
// SystemRescue mounts the boot medium read-only; the resolver remounts it in
// place, or mounts the boot partition somewhere writable, and falls back to a
// RAM-backed directory as a last resort.
package media

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/refurbworks/laptop-audit/internal/cmdutils"
	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
	"github.com/refurbworks/laptop-audit/internal/constants"
	"github.com/refurbworks/laptop-audit/internal/fileutils"
)

// Resolver makes the boot medium writable and exposes the directory to store
// the ledger in.
type Resolver struct {
	opts options
}

// Options is the variadic options available to the Resolver.
type Options func(*options)

type options struct {
	root  string
	run   func(ctx context.Context, args ...string) error
	probe hwscan.Runner
	log   *slog.Logger

	livePoint  string
	mountPoint string
	fallback   string

	partListCmd []string
}

func defaultOptions() *options {
	opts := &options{
		root: "/",
		log:  slog.Default(),

		livePoint:  constants.LiveMountPoint,
		mountPoint: constants.USBMountPoint,
		fallback:   constants.FallbackDir,

		partListCmd: []string{"lsblk", "-nrpo", "NAME,RM,TYPE"},
	}
	opts.run = func(ctx context.Context, args ...string) error {
		_, stderr, err := cmdutils.RunWithTimeout(ctx, constants.ProbeTimeout, args[0], args[1:]...)
		if err != nil {
			return fmt.Errorf("%s failed: %v (stderr: %s)", args[0], err, strings.TrimSpace(stderr.String()))
		}
		return nil
	}
	opts.probe = func(ctx context.Context, args ...string) string {
		return cmdutils.Probe(ctx, constants.ProbeTimeout, opts.log, args...)
	}
	return opts
}

// New returns a new Resolver.
func New(args ...Options) Resolver {
	opts := defaultOptions()
	for _, opt := range args {
		opt(opts)
	}
	return Resolver{opts: *opts}
}

// WritableDir resolves a writable directory for the ledger. It never fails:
// when neither the live mount point nor the boot partition can be made
// writable it returns the RAM-backed fallback with a warning.
func (r Resolver) WritableDir(ctx context.Context) string {
	if r.isMounted(r.opts.livePoint) {
		if err := r.opts.run(ctx, "mount", "-o", "remount,rw", r.opts.livePoint); err == nil {
			r.opts.log.Info("remounted boot medium read-write", "dir", r.opts.livePoint)
			return r.opts.livePoint
		}
		r.opts.log.Warn("failed to remount boot medium read-write", "dir", r.opts.livePoint)
	}

	if part := r.bootPartition(ctx); part != "" {
		if dir, err := r.mountPartition(ctx, part); err == nil {
			r.opts.log.Info("mounted boot partition read-write", "partition", part, "dir", dir)
			return dir
		}
		r.opts.log.Warn("failed to mount boot partition read-write", "partition", part)
	}

	r.opts.log.Warn("could not make the boot medium writable, ledger rows may be lost on reboot", "dir", r.opts.fallback)
	return r.opts.fallback
}

// Sync flushes pending writes to the medium.
func (r Resolver) Sync(ctx context.Context) {
	if err := r.opts.run(ctx, "sync"); err != nil {
		r.opts.log.Warn("sync failed", "error", err)
	}
}

func (r Resolver) mountPartition(ctx context.Context, part string) (string, error) {
	if err := os.MkdirAll(r.opts.mountPoint, 0755); err != nil {
		return "", err
	}
	err := r.opts.run(ctx, "mount", "-o", "remount,rw", part, r.opts.mountPoint)
	if err != nil {
		err = r.opts.run(ctx, "mount", "-o", "rw", part, r.opts.mountPoint)
	}
	if err != nil {
		return "", err
	}
	return r.opts.mountPoint, nil
}

func (r Resolver) bootPartition(ctx context.Context) string {
	mounts := fileutils.ReadFileOrEmpty(filepath.Join(r.opts.root, "proc/mounts"))
	return hwscan.BootPartition(mounts, r.opts.probe(ctx, r.opts.partListCmd...))
}

func (r Resolver) isMounted(dir string) bool {
	mounts := fileutils.ReadFileOrEmpty(filepath.Join(r.opts.root, "proc/mounts"))
	for _, line := range strings.Split(mounts, "\n") {
		f := strings.Fields(line)
		if len(f) >= 2 && f[1] == dir {
			return true
		}
	}
	return false
}
