package tui

import (
	"strings"

	"devdirs-cli/internal/model"

	"github.com/charmbracelet/bubbles/list"
)

// folderItem is a selectable project folder row.
type folderItem struct {
	folder model.Folder
	recent bool
}

func (i folderItem) Title() string       { return i.folder.Name }
func (i folderItem) Description() string { return i.folder.Path }
func (i folderItem) FilterValue() string {
	return strings.ToLower(i.folder.Name + " " + i.folder.Path)
}

// sectionItem is a non-selectable section header row ("Recent", "All").
type sectionItem struct {
	title string
}

func (i sectionItem) Title() string       { return i.title }
func (i sectionItem) Description() string { return "" }
func (i sectionItem) FilterValue() string { return "" }

// sectionedItems flattens the controller's sections into list rows with
// headers. Empty sections are omitted entirely.
func sectionedItems(recent, other []model.Folder) []list.Item {
	items := make([]list.Item, 0, len(recent)+len(other)+2)
	if len(recent) > 0 {
		items = append(items, sectionItem{title: "Recent"})
		for _, f := range recent {
			items = append(items, folderItem{folder: f, recent: true})
		}
	}
	if len(other) > 0 {
		items = append(items, sectionItem{title: "All"})
		for _, f := range other {
			items = append(items, folderItem{folder: f})
		}
	}
	return items
}
