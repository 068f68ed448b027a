package auditor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/refurbworks/laptop-audit/internal/collector/hwscan"
	"github.com/refurbworks/laptop-audit/internal/ledger"
)

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2)

	panelTitleStyle = lipgloss.NewStyle().Bold(true)
	fieldNameStyle  = lipgloss.NewStyle().Faint(true).Width(15)
	verdictStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
)

// HardwareSummary renders the scanned hardware facts as a panel.
func HardwareSummary(r hwscan.Record) string {
	rows := []string{
		panelTitleStyle.Render("HARDWARE SCAN"),
		"",
		field("Service Tag", r.ServiceTag),
		field("Model", r.Model),
		field("CPU", fmt.Sprintf("%s (%d threads, gen %d)", r.CPUModel, r.CPUCores, r.CPUGeneration)),
		field("RAM", fmt.Sprintf("%d GB %s", r.RAMSizeGB, r.RAMType)),
		field("Storage", fmt.Sprintf("%s %d GB (SMART: %s)", r.StorageKind, r.StorageGB, r.StorageHealth)),
		field("Battery", r.BatteryPct+"%"),
		field("GPU", r.GPU),
		field("Display", fmt.Sprintf("%s (%s)", r.Resolution, r.ResolutionClass)),
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

// Summary renders the complete audit, grades and recommendation included.
func Summary(e ledger.Entry) string {
	rows := []string{
		panelTitleStyle.Render("AUDIT SUMMARY"),
		"",
		field("Service Tag", e.Hardware.ServiceTag),
		field("Model", e.Hardware.Model),
		field("CPU", fmt.Sprintf("%s (%d threads)", e.Hardware.CPUModel, e.Hardware.CPUCores)),
		field("RAM", fmt.Sprintf("%d GB %s", e.Hardware.RAMSizeGB, e.Hardware.RAMType)),
		field("Storage", fmt.Sprintf("%s %d GB (SMART: %s)", e.Hardware.StorageKind, e.Hardware.StorageGB, e.Hardware.StorageHealth)),
		field("Battery", e.Hardware.BatteryPct+"%"),
		field("GPU", e.Hardware.GPU),
		field("Display", fmt.Sprintf("%s (%s)", e.Hardware.Resolution, e.Hardware.ResolutionClass)),
		"",
		field("Screen Grade", string(e.Grades.Screen)),
		field("Chassis Grade", string(e.Grades.Chassis)),
		field("Charger", e.Grades.Charger),
		"",
		verdictStyle.Render(">> " + string(e.Recommendation)),
	}

	return panelStyle.Render(strings.Join(rows, "\n"))
}

func field(name, value string) string {
	return fieldNameStyle.Render(name+":") + " " + value
}
