package tui

import (
	"devdirs-cli/internal/controller"
	"devdirs-cli/internal/finder"
	"devdirs-cli/internal/opener"
	"devdirs-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive picker. The controller is wired with the real
// editor opener and Finder selection provider; diagnostics land in the
// status line instead of stderr (which the alt screen would hide anyway).
func Run(cfg store.Config, st store.Store) error {
	applyColorProfilePreference()

	warns := &warnLog{}
	ctrl := controller.New(
		cfg,
		st,
		opener.Editor{App: cfg.EditorApp, Cmd: cfg.EditorCmd},
		finder.Finder{Warn: warns.add},
		warns.add,
	)

	m := newAppModel(ctrl, warns)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
