package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/refurbworks/laptop-audit/internal/auditor"
	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
)

func (a *App) installScan() {
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the hardware and print the record without grading",
		Long: `Run the silent hardware scan only and print the resulting record.

Useful for line-side triage. Probes that need elevated privileges degrade to
their sentinel values when run unprivileged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record := hwscan.New().Collect(context.Background())
			fmt.Fprintln(cmd.OutOrStdout(), auditor.HardwareSummary(record))
			return nil
		},
	}

	a.cmd.AddCommand(scanCmd)
}
