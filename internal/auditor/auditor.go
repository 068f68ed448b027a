// Package auditor sequences one complete unit audit: resolve the ledger
// directory, scan the hardware, collect operator grades, classify, persist one
// ledger row, then offer the destructive wipe.
package auditor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/ubuntu/decorate"

	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
	"github.com/refurbworks/laptop-audit/internal/grading"
	"github.com/refurbworks/laptop-audit/internal/ledger"
	"github.com/refurbworks/laptop-audit/internal/wipe"
)

// Scanner collects the hardware record of the unit under audit.
type Scanner interface {
	Collect(ctx context.Context) hwscan.Record
}

// Grader obtains operator-entered condition grades, always fully populated.
type Grader interface {
	Grades() (grading.Grades, error)
}

// Ledger appends exactly one row per audited unit to the given directory.
type Ledger interface {
	Append(e ledger.Entry, dir string) error
}

// Wiper destroys data on the unit's internal disk, gated by its own
// confirmation policy. It must refuse an empty device path.
type Wiper interface {
	Wipe(ctx context.Context, device, kind string) error
}

// DirResolver resolves a writable directory for ledger storage and flushes
// writes to it.
type DirResolver interface {
	WritableDir(ctx context.Context) string
	Sync(ctx context.Context)
}

// Config represents the auditor specific data needed to run one audit.
type Config struct {
	Dir      string // ledger directory override, bypasses the resolver when set
	DryRun   bool   // collect and classify, but do not persist or wipe
	SkipWipe bool
}

type timeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}

// Auditor runs one audit end to end.
type Auditor struct {
	cfg Config

	scanner  Scanner
	grader   Grader
	ledger   Ledger
	wiper    Wiper
	resolver DirResolver

	out  io.Writer
	log  *slog.Logger
	time timeProvider
}

// Options is the variadic options available to the Auditor.
type Options func(*options)

type options struct {
	out  io.Writer
	log  *slog.Logger
	time timeProvider
}

// New returns a new Auditor wired to the given collaborators.
func New(cfg Config, scanner Scanner, grader Grader, l Ledger, wiper Wiper, resolver DirResolver, args ...Options) Auditor {
	opts := &options{
		out:  os.Stdout,
		log:  slog.Default(),
		time: realTimeProvider{},
	}
	for _, opt := range args {
		opt(opts)
	}

	return Auditor{
		cfg:      cfg,
		scanner:  scanner,
		grader:   grader,
		ledger:   l,
		wiper:    wiper,
		resolver: resolver,
		out:      opts.out,
		log:      opts.log,
		time:     opts.time,
	}
}

// Run audits one unit. The record is created fresh, fully populated, serialized
// once, and never reused across units.
func (a Auditor) Run(ctx context.Context) (err error) {
	defer decorate.OnError(&err, "audit failed")

	log := a.log.With("audit", uuid.NewString())
	log.Info("starting audit")

	dir := a.cfg.Dir
	if dir == "" && !a.cfg.DryRun {
		dir = a.resolver.WritableDir(ctx)
	}

	record := a.scanner.Collect(ctx)
	fmt.Fprintln(a.out, HardwareSummary(record))

	grades, err := a.grader.Grades()
	if err != nil {
		return err
	}

	entry := ledger.Entry{
		Time:           a.time.Now(),
		Hardware:       record,
		Grades:         grades,
		Recommendation: grading.Classify(record, grades),
	}
	fmt.Fprintln(a.out, Summary(entry))

	if a.cfg.DryRun {
		log.Info("dry run, not persisting", "recommendation", entry.Recommendation)
		return nil
	}

	if err := a.ledger.Append(entry, dir); err != nil {
		return err
	}
	a.resolver.Sync(ctx)
	log.Info("audit row appended", "dir", dir, "recommendation", entry.Recommendation)

	if !a.cfg.SkipWipe {
		a.offerWipe(ctx, log, record)
	}

	return nil
}

// offerWipe hands the disk to the wipe collaborator. A declined or impossible
// wipe never fails the audit: the ledger row is already written.
func (a Auditor) offerWipe(ctx context.Context, log *slog.Logger, record hwscan.Record) {
	err := a.wiper.Wipe(ctx, record.PrimaryDisk, record.StorageKind)
	switch {
	case err == nil:
		log.Info("wipe complete", "device", record.PrimaryDisk)
	case errors.Is(err, wipe.ErrNoDevice):
		log.Info("no internal disk detected, skipping wipe")
	case errors.Is(err, wipe.ErrDeclined):
		log.Info("wipe cancelled by operator")
	default:
		log.Warn("wipe did not complete, check the disk manually", "error", err)
	}
}
