// Package constants is responsible for defining the constants used in the application.
package constants

import (
	"log/slog"
	"time"
)

var (
	// Version is the version of the application.
	Version = "Dev"
)

const (
	// CmdName is the name of the command line tool.
	CmdName = "laptop-audit"

	// LedgerFileName is the base name of the audit ledger file.
	LedgerFileName = "audit_master.csv"

	// DefaultLogLevel is the default log level selected without any verbosity flags.
	DefaultLogLevel = slog.LevelWarn

	// ProbeTimeout is the timeout applied to every hardware probe command.
	ProbeTimeout = 15 * time.Second

	// LiveMountPoint is where SystemRescue mounts the boot medium.
	LiveMountPoint = "/run/archiso/bootmnt"

	// USBMountPoint is where the boot USB partition gets mounted when the live
	// mount point cannot be remounted in place.
	USBMountPoint = "/mnt/usb_data"

	// FallbackDir receives the ledger when no writable medium can be resolved.
	// RAM backed, so rows written there do not survive a reboot.
	FallbackDir = "/tmp"

	// TimestampFormat is the layout of the timestamp column in the ledger.
	TimestampFormat = "2006-01-02 15:04:05"
)
