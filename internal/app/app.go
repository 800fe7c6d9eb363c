package app

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiaoxiae/vimvaldi/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	// NoLogo skips the startup splash screen.
	NoLogo bool
	// Path optionally names a score file to open on startup.
	Path string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	model := ui.NewController(ui.Options{NoLogo: cfg.NoLogo, Path: cfg.Path})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
