// Package wipe destroys all data on a disk. The wipe only proceeds after a
// double confirmation from the operator and never acts on an empty device path.
package wipe

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ubuntu/decorate"

	"github.com/refurbworks/laptop-audit/internal/cmdutils"
	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
)

var (
	// ErrNoDevice is returned when no target device was resolved.
	ErrNoDevice = errors.New("no target device")

	// ErrDeclined is returned when the operator did not confirm the wipe.
	ErrDeclined = errors.New("wipe not confirmed")
)

// Wiper wipes the internal disk of an audited unit.
type Wiper struct {
	opts options
}

// Options is the variadic options available to the Wiper.
type Options func(*options)

type options struct {
	run    func(ctx context.Context, args ...string) error
	prompt func(prompt string) (string, error)
	out    io.Writer
	log    *slog.Logger
}

// New returns a new Wiper.
func New(args ...Options) Wiper {
	opts := &options{
		out: os.Stdout,
		log: slog.Default(),
	}
	for _, opt := range args {
		opt(opts)
	}

	if opts.run == nil {
		opts.run = func(ctx context.Context, args ...string) error {
			// No timeout: wiping a large disk legitimately takes a long time.
			_, stderr, err := cmdutils.Run(ctx, args[0], args[1:]...)
			if err != nil {
				return fmt.Errorf("%s: %v (stderr: %s)", args[0], err, strings.TrimSpace(stderr.String()))
			}
			return nil
		}
	}
	if opts.prompt == nil {
		out := opts.out
		reader := bufio.NewReader(os.Stdin)
		opts.prompt = func(prompt string) (string, error) {
			fmt.Fprint(out, prompt)
			line, err := reader.ReadString('\n')
			if err != nil {
				return "", err
			}
			return strings.ToUpper(strings.TrimSpace(line)), nil
		}
	}

	return Wiper{opts: *opts}
}

// Wipe destroys all data on device. kind selects the method: NVMe disks are
// discarded, everything else is overwritten with zeros. The operator must
// answer Y and then type CONFIRM before anything destructive runs.
func (w Wiper) Wipe(ctx context.Context, device, kind string) (err error) {
	defer decorate.OnError(&err, "could not wipe %s", device)

	if device == "" {
		return ErrNoDevice
	}

	fmt.Fprintf(w.opts.out, "\n  Target: %s (%s)\n\n", device, kind)

	answer, err := w.opts.prompt("  WIPE DRIVE NOW?  (Warning: Irreversible)  [Y/N] > ")
	if err != nil {
		return err
	}
	if answer != "Y" {
		return ErrDeclined
	}

	fmt.Fprintln(w.opts.out, "\n  THIS WILL DESTROY ALL DATA ON THE DISK")
	answer, err = w.opts.prompt("  Type CONFIRM to proceed > ")
	if err != nil {
		return err
	}
	if answer != "CONFIRM" {
		return ErrDeclined
	}

	w.opts.log.Info("wiping device", "device", device, "kind", kind)
	if kind == hwscan.StorageNVMe {
		return w.opts.run(ctx, "blkdiscard", "-f", device)
	}
	return w.opts.run(ctx, "nwipe", "--autonuke", "--method=zero", device)
}
