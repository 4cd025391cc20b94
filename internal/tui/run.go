package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/padvault/pad/pkg/core"
)

// Run opens the workspace and blocks until the user quits.
func Run(svc *core.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
