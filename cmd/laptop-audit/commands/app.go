// Package commands implements the laptop-audit command line interface.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/refurbworks/laptop-audit/internal/auditor"
	"github.com/refurbworks/laptop-audit/internal/cli"
	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
	"github.com/refurbworks/laptop-audit/internal/constants"
	"github.com/refurbworks/laptop-audit/internal/ledger"
	"github.com/refurbworks/laptop-audit/internal/media"
	"github.com/refurbworks/laptop-audit/internal/wipe"
	"github.com/refurbworks/laptop-audit/internal/wizard"
)

// App represents the application.
type App struct {
	cmd    *cobra.Command
	viper  *viper.Viper
	config appConfig
}

// appConfig holds the configuration for the application.
type appConfig struct {
	Verbosity int
	JSONLogs  bool

	Audit auditor.Config
}

// New creates a new App instance with default values.
func New() (*App, error) {
	a := App{}

	a.cmd = &cobra.Command{
		Use:   constants.CmdName + " [COMMAND]",
		Short: "Grade used laptops on the refurbishing line",
		Long: `Laptop audit tool for the refurbishing line.

It collects hardware facts, runs the interactive visual inspection, classifies
the unit and appends one row per unit to the persistent audit ledger.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Command parsing has been successful. Returns to not print usage anymore.
			a.cmd.SilenceUsage = true
			cli.SetVerbosity(a.config.Verbosity) // Set verbosity before loading config
			if err := cli.InitViperConfig(constants.CmdName, a.cmd, a.viper); err != nil {
				return err
			}
			if err := a.viper.Unmarshal(&a.config); err != nil {
				return fmt.Errorf("unable to strictly decode configuration into struct: %w", err)
			}

			cli.SetSlog(a.config.Verbosity, a.config.JSONLogs)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a.cmd.SilenceUsage = true

			return a.auditRun()
		},
	}
	a.viper = viper.New()

	installRootCmd(&a)
	cli.InstallConfigFlag(a.cmd)

	if err := a.viper.BindPFlags(a.cmd.PersistentFlags()); err != nil {
		return nil, err
	}

	a.installScan()
	a.installVersion()

	return &a, nil
}

func installRootCmd(app *App) {
	cmd := app.cmd

	cmd.PersistentFlags().CountVarP(&app.config.Verbosity, "verbose", "v", "issue INFO (-v), DEBUG (-vv)")
	cmd.PersistentFlags().BoolVar(&app.config.JSONLogs, "json-logs", false, "emit logs as JSON lines")

	cmd.Flags().StringVar(&app.config.Audit.Dir, "dir", "", "write the ledger to this directory instead of resolving the boot USB")
	cmd.Flags().BoolVarP(&app.config.Audit.DryRun, "dry-run", "d", false, "scan, grade and classify, but do not write the ledger or offer a wipe")
	cmd.Flags().BoolVar(&app.config.Audit.SkipWipe, "skip-wipe", false, "do not offer to wipe the internal disk")
}

// auditRun audits one unit end to end.
func (a App) auditRun() error {
	if !a.config.Audit.DryRun && os.Geteuid() != 0 {
		return errors.New("this tool must run as root: probes and the ledger medium need elevated privileges (use --dry-run to try it out)")
	}

	aud := auditor.New(a.config.Audit,
		hwscan.New(),
		wizard.New(),
		ledger.New(),
		wipe.New(),
		media.New(),
	)

	slog.Info("Running audit")
	return aud.Run(context.Background())
}

// Run executes the command and associated process, returning an error if any.
func (a App) Run() error {
	return a.cmd.Execute()
}

// UsageError returns if the error is a command parsing or runtime one.
func (a App) UsageError() bool {
	return !a.cmd.SilenceUsage
}

// RootCmd returns a copy of the root command.
func (a App) RootCmd() cobra.Command {
	return *a.cmd
}
