// Package wizard runs the interactive grading phase: a full-screen color cycle
// for dead-pixel and backlight-bleed inspection, followed by validated condition
// prompts. It always returns fully populated grades or an abort error.
package wizard

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/refurbworks/laptop-audit/internal/grading"
)

// ErrAborted is returned when the operator quits the wizard without grading.
var ErrAborted = errors.New("grading aborted by operator")

// Wizard collects operator-entered condition grades.
type Wizard struct{}

// New returns a new Wizard.
func New() Wizard {
	return Wizard{}
}

// Grades runs the interactive program and returns the entered grades.
func (Wizard) Grades() (grading.Grades, error) {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	m, err := p.Run()
	if err != nil {
		return grading.Grades{}, err
	}

	final, ok := m.(model)
	if !ok || final.phase != phaseDone {
		return grading.Grades{}, ErrAborted
	}
	return final.grades, nil
}
