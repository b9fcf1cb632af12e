package tui

import (
	"context"
	"errors"
	"strings"

	"devdirs-cli/internal/controller"
	"devdirs-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type loadedMsg struct{}

// warnLog collects degraded-condition diagnostics from the controller so the
// status line can surface the most recent one. Shared by pointer because
// bubbletea copies the model value on every update.
type warnLog struct {
	msgs []string
}

func (w *warnLog) add(msg string) {
	w.msgs = append(w.msgs, msg)
}

func (w *warnLog) last() string {
	if len(w.msgs) == 0 {
		return ""
	}
	return w.msgs[len(w.msgs)-1]
}

type appModel struct {
	ctrl  *controller.Controller
	warns *warnLog

	list   list.Model
	width  int
	height int

	showPreview bool
	status      string
	statusErr   bool
}

func newAppModel(ctrl *controller.Controller, warns *warnLog) appModel {
	l := list.New([]list.Item{}, newFolderDelegate(), 0, 0)
	l.Title = "Projects"
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetStatusBarItemName("folder", "folders")

	return appModel{
		ctrl:   ctrl,
		warns:  warns,
		list:   l,
		status: "Loading…",
	}
}

func (m appModel) Init() tea.Cmd {
	ctrl := m.ctrl
	return func() tea.Msg {
		ctrl.Load(context.Background())
		return loadedMsg{}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case loadedMsg:
		m.refreshItems("")
		m.setStatus(m.warns.last(), m.warns.last() != "")
		if m.status == "" {
			m.setStatus("Ready", false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.ctrl.State() != controller.StateReady {
			break
		}
		// While the list filter input is focused, all keys belong to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			m.openSelected()
			return m, nil
		case "s":
			m.openFinderSelection()
			return m, nil
		case "c":
			m.clearRecents()
			return m, nil
		case "p":
			m.showPreview = !m.showPreview
			m.resize()
			return m, nil
		case "r":
			m.ctrl.Rescan()
			m.refreshItems(m.selectedPath())
			m.setStatus("Rescanned roots", false)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m appModel) View() string {
	header := styleHeader().Render("devdirs — open a project in your editor")

	body := m.list.View()
	if m.showPreview {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.previewView())
	}

	status := ""
	if m.status != "" {
		if m.statusErr {
			status = styleError().Render(m.status)
		} else {
			status = styleMuted().Render(m.status)
		}
	}

	footer := styleMuted().Render("enter: open  s: open Finder selection  c: clear recents  p: preview  r: rescan  /: filter  q: quit")
	return strings.Join([]string{header, body, status, footer}, "\n")
}

func (m *appModel) resize() {
	h := m.height - 4
	if h < 8 {
		h = 8
	}
	w := m.width
	if w < 40 {
		w = 40
	}
	if m.showPreview {
		w = w / 2
	}
	m.list.SetSize(w, h)
}

func (m *appModel) setStatus(msg string, isErr bool) {
	m.status = strings.TrimSpace(msg)
	m.statusErr = isErr
}

func (m *appModel) selectedPath() string {
	if it, ok := m.list.SelectedItem().(folderItem); ok {
		return it.folder.Path
	}
	return ""
}

func (m *appModel) selectedFolder() (model.Folder, bool) {
	it, ok := m.list.SelectedItem().(folderItem)
	if !ok {
		return model.Folder{}, false
	}
	return it.folder, true
}

// refreshItems rebuilds the sectioned rows from the controller and restores
// the selection to keepPath (or the first folder row).
func (m *appModel) refreshItems(keepPath string) {
	recent, other := m.ctrl.Sections()
	items := sectionedItems(recent, other)
	m.list.SetItems(items)

	idx := -1
	firstFolder := -1
	for i, it := range items {
		f, ok := it.(folderItem)
		if !ok {
			continue
		}
		if firstFolder < 0 {
			firstFolder = i
		}
		if keepPath != "" && f.folder.Path == keepPath {
			idx = i
			break
		}
	}
	if idx < 0 {
		idx = firstFolder
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
}

func (m *appModel) openSelected() {
	f, ok := m.selectedFolder()
	if !ok {
		return
	}
	if err := m.ctrl.Open(context.Background(), f); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Opened "+f.Name+" in editor", false)
	m.refreshItems(f.Path)
}

func (m *appModel) openFinderSelection() {
	sum, err := m.ctrl.OpenSelection(context.Background())
	if err != nil {
		if errors.Is(err, controller.ErrNoSelection) {
			m.setStatus("Nothing selected in Finder", false)
		} else {
			m.setStatus(err.Error(), true)
		}
		return
	}
	m.setStatus(sum.String(), sum.Failed > 0)
}

func (m *appModel) clearRecents() {
	keep := m.selectedPath()
	if err := m.ctrl.ClearRecents(context.Background()); err != nil {
		m.setStatus("Clearing recents failed: "+err.Error(), true)
		return
	}
	m.refreshItems(keep)
	m.setStatus("Cleared recent folders", false)
}
