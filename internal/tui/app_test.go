package tui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"devdirs-cli/internal/controller"
	"devdirs-cli/internal/model"
	"devdirs-cli/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type fakeOpener struct {
	launched []string
	err      error
}

func (f *fakeOpener) Launch(path string) error {
	f.launched = append(f.launched, path)
	return f.err
}

type fakeSelection struct {
	paths []string
}

func (f fakeSelection) SelectedPaths(context.Context) []string { return f.paths }

func newTestModel(t *testing.T, root string, op *fakeOpener, sel []string) appModel {
	t.Helper()
	lipgloss.SetColorProfile(termenv.Ascii)

	warns := &warnLog{}
	cfg := store.Config{Roots: []string{root}}
	st := store.Store{Dir: t.TempDir()}
	ctrl := controller.New(cfg, st, op, fakeSelection{paths: sel}, warns.add)
	ctrl.Load(context.Background())

	m := newAppModel(ctrl, warns)
	sized, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = sized.(appModel)
	loaded, _ := m.Update(loadedMsg{})
	return loaded.(appModel)
}

func mkProject(t *testing.T, root, name string) model.Folder {
	t.Helper()
	p := filepath.Join(root, name)
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", p, err)
	}
	return model.Folder{Name: name, Path: p}
}

func TestSectionedItems_OmitsEmptySections(t *testing.T) {
	t.Parallel()

	api := model.Folder{Name: "api", Path: "/w/api"}
	site := model.Folder{Name: "site", Path: "/w/site"}

	items := sectionedItems(nil, []model.Folder{api, site})
	if len(items) != 3 {
		t.Fatalf("expected 1 header + 2 folders, got %d", len(items))
	}
	if h, ok := items[0].(sectionItem); !ok || h.title != "All" {
		t.Fatalf("expected All header first, got %#v", items[0])
	}

	items = sectionedItems([]model.Folder{api}, []model.Folder{site})
	if len(items) != 4 {
		t.Fatalf("expected 2 headers + 2 folders, got %d", len(items))
	}
	if h, ok := items[0].(sectionItem); !ok || h.title != "Recent" {
		t.Fatalf("expected Recent header first, got %#v", items[0])
	}
}

func TestModel_InitialSelectionSkipsHeader(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	api := mkProject(t, root, "api")

	m := newTestModel(t, root, &fakeOpener{}, nil)
	f, ok := m.selectedFolder()
	if !ok {
		t.Fatalf("expected a folder selected, selection is %#v", m.list.SelectedItem())
	}
	if f.Path != api.Path {
		t.Fatalf("expected first folder selected, got %#v", f)
	}
}

func TestModel_EnterOpensAndPromotes(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	api := mkProject(t, root, "api")
	mkProject(t, root, "site")

	op := &fakeOpener{}
	m := newTestModel(t, root, op, nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(appModel)

	if len(op.launched) != 1 || op.launched[0] != api.Path {
		t.Fatalf("unexpected launches: %#v", op.launched)
	}
	if !strings.Contains(m.status, "Opened api") {
		t.Fatalf("unexpected status: %q", m.status)
	}

	// api is now in the Recent section at the top.
	items := m.list.Items()
	if h, ok := items[0].(sectionItem); !ok || h.title != "Recent" {
		t.Fatalf("expected Recent section after open, got %#v", items[0])
	}
	if f, ok := items[1].(folderItem); !ok || f.folder.Path != api.Path || !f.recent {
		t.Fatalf("expected api as recent row, got %#v", items[1])
	}
}

func TestModel_ClearRecentsKey(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	mkProject(t, root, "api")

	op := &fakeOpener{}
	m := newTestModel(t, root, op, nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(appModel)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})
	m = updated.(appModel)

	for _, it := range m.list.Items() {
		if h, ok := it.(sectionItem); ok && h.title == "Recent" {
			t.Fatalf("Recent section survived clear")
		}
	}
	if !strings.Contains(m.status, "Cleared") {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestModel_SelectionKeyReportsEmptySelection(t *testing.T) {
	t.Parallel()

	op := &fakeOpener{}
	m := newTestModel(t, t.TempDir(), op, nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(appModel)

	if len(op.launched) != 0 {
		t.Fatalf("empty selection must not launch anything: %#v", op.launched)
	}
	if !strings.Contains(m.status, "Nothing selected") {
		t.Fatalf("unexpected status: %q", m.status)
	}
}

func TestModel_SelectionKeyOpensAllSelected(t *testing.T) {
	t.Parallel()

	op := &fakeOpener{}
	m := newTestModel(t, t.TempDir(), op, []string{"/sel/a", "/sel/b"})

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = updated.(appModel)

	if len(op.launched) != 2 {
		t.Fatalf("expected both items launched, got %#v", op.launched)
	}
	if !strings.Contains(m.status, "opened 2") {
		t.Fatalf("unexpected status: %q", m.status)
	}
}
