package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

type folderDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
	path     lipgloss.Style
	section  lipgloss.Style
}

func newFolderDelegate() folderDelegate {
	return folderDelegate{
		normal: lipgloss.NewStyle().Foreground(colorSurfaceFg),
		selected: lipgloss.NewStyle().
			Foreground(colorSelectedFg).
			Background(colorSelectedBg).
			Bold(true),
		path:    styleMuted(),
		section: styleSection(),
	}
}

func (d folderDelegate) Height() int  { return 1 }
func (d folderDelegate) Spacing() int { return 0 }
func (d folderDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d folderDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	contentW := m.Width()
	if contentW < 4 {
		fmt.Fprint(w, "")
		return
	}

	switch it := item.(type) {
	case sectionItem:
		fmt.Fprint(w, d.section.Render(padOrCut(it.title, contentW)))
	case folderItem:
		// Folder name on the left, its path right-aligned when there's room.
		suffix := pathSuffix(it, contentW)
		body := padOrCut("  "+it.folder.Name, contentW-xansi.StringWidth(suffix))
		if index == m.Index() {
			fmt.Fprint(w, d.selected.Render(body+suffix))
			return
		}
		fmt.Fprint(w, d.normal.Render(body)+d.path.Render(suffix))
	default:
		fmt.Fprint(w, padOrCut(fmt.Sprint(item), contentW))
	}
}

func pathSuffix(it folderItem, contentW int) string {
	pathW := contentW - xansi.StringWidth("  "+it.folder.Name) - 2
	if pathW <= 12 {
		return ""
	}
	return xansi.Cut(it.folder.Path, 0, pathW)
}

func padOrCut(line string, w int) string {
	lineW := xansi.StringWidth(line)
	if lineW < w {
		return line + strings.Repeat(" ", w-lineW)
	}
	if lineW > w {
		return xansi.Cut(line, 0, w)
	}
	return line
}
