package wizard

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/refurbworks/laptop-audit/internal/grading"
)

type phase int

const (
	phaseDisplayTest phase = iota
	phaseScreen
	phaseChassis
	phaseCharger
	phaseDone
)

// displayColors are cycled full screen, in order, one keypress each.
var displayColors = []struct {
	name  string
	color lipgloss.Color
	label lipgloss.Color
}{
	{"White", lipgloss.Color("#FFFFFF"), lipgloss.Color("#000000")},
	{"Red", lipgloss.Color("#CC0000"), lipgloss.Color("#FFFFFF")},
	{"Green", lipgloss.Color("#00AA00"), lipgloss.Color("#FFFFFF")},
	{"Blue", lipgloss.Color("#0000CC"), lipgloss.Color("#FFFFFF")},
	{"Black", lipgloss.Color("#000000"), lipgloss.Color("#FFFFFF")},
}

type prompt struct {
	question string
	options  []string // "KEY  label" lines, first rune is the accepted key
}

var prompts = map[phase]prompt{
	phaseScreen: {
		question: "Rate Screen Condition?",
		options:  []string{"A  Perfect", "B  White Spots / Dead Pixel", "C  Scratched"},
	},
	phaseChassis: {
		question: "Rate Chassis Condition?",
		options:  []string{"A  Mint", "B  Minor Scuffs", "C  Dents / Cracks"},
	},
	phaseCharger: {
		question: "Charger Included?",
		options:  []string{"Y  Yes", "N  No"},
	},
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Padding(1, 2)
	optionStyle   = lipgloss.NewStyle().Padding(0, 4)
	keyStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	invalidStyle  = lipgloss.NewStyle().Faint(true).Padding(1, 2)
	questionStyle = lipgloss.NewStyle().Bold(true).Padding(1, 2)
)

type model struct {
	phase    phase
	colorIdx int
	invalid  bool

	width  int
	height int

	grades grading.Grades
}

func newModel() model {
	return model{phase: phaseDisplayTest}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.Type == tea.KeyEsc {
			// Leaves the wizard before phaseDone so the caller sees an abort.
			return m, tea.Quit
		}
		m = m.handleKey(msg)
		return m, m.quitWhenDone()
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) model {
	switch m.phase {
	case phaseDisplayTest:
		// Any key advances to the next color.
		m.colorIdx++
		if m.colorIdx >= len(displayColors) {
			m.phase = phaseScreen
		}

	case phaseScreen:
		if g, ok := asGrade(msg.String()); ok {
			m.grades.Screen = g
			m.phase = phaseChassis
			m.invalid = false
		} else {
			m.invalid = true
		}

	case phaseChassis:
		if g, ok := asGrade(msg.String()); ok {
			m.grades.Chassis = g
			m.phase = phaseCharger
			m.invalid = false
		} else {
			m.invalid = true
		}

	case phaseCharger:
		switch strings.ToUpper(msg.String()) {
		case grading.ChargerYes:
			m.grades.Charger = grading.ChargerYes
			m.phase = phaseDone
			m.invalid = false
		case grading.ChargerNo:
			m.grades.Charger = grading.ChargerNo
			m.phase = phaseDone
			m.invalid = false
		default:
			m.invalid = true
		}
	}

	return m
}

func (m model) quitWhenDone() tea.Cmd {
	if m.phase == phaseDone {
		return tea.Quit
	}
	return nil
}

func (m model) View() string {
	switch m.phase {
	case phaseDisplayTest:
		return m.colorView()
	case phaseScreen, phaseChassis, phaseCharger:
		return m.promptView()
	}
	return ""
}

func (m model) colorView() string {
	if m.colorIdx >= len(displayColors) {
		return ""
	}
	c := displayColors[m.colorIdx]

	label := lipgloss.NewStyle().
		Foreground(c.label).
		Background(c.color).
		Bold(true).
		Render("  [ " + c.name + " - press any key ]  ")

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		label,
		lipgloss.WithWhitespaceBackground(c.color))
}

func (m model) promptView() string {
	p := prompts[m.phase]

	var b strings.Builder
	b.WriteString(titleStyle.Render("INTERACTIVE GRADING"))
	b.WriteString("\n")
	b.WriteString(questionStyle.Render(p.question))
	b.WriteString("\n")
	for _, opt := range p.options {
		key, label, _ := strings.Cut(opt, "  ")
		b.WriteString(optionStyle.Render("[" + keyStyle.Render(key) + "] " + label))
		b.WriteString("\n")
	}
	if m.invalid {
		b.WriteString(invalidStyle.Render("Invalid key, try again."))
		b.WriteString("\n")
	}

	return b.String()
}

func asGrade(key string) (grading.Grade, bool) {
	switch strings.ToUpper(key) {
	case "A":
		return grading.GradeA, true
	case "B":
		return grading.GradeB, true
	case "C":
		return grading.GradeC, true
	}
	return "", false
}
