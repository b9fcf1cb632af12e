package tui

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

// readmeNames are tried in order when looking for something to preview.
var readmeNames = []string{"README.md", "readme.md", "Readme.md"}

const previewByteLimit = 64 * 1024

func (m *appModel) previewView() string {
	w := m.width - m.width/2 - 2
	if w < 20 {
		w = 20
	}
	h := m.height - 4
	if h < 8 {
		h = 8
	}

	f, ok := m.selectedFolder()
	if !ok {
		return lipgloss.NewStyle().Width(w).Height(h).Render(styleMuted().Render("No folder selected."))
	}

	md := readReadme(f.Path)
	if md == "" {
		return lipgloss.NewStyle().Width(w).Height(h).Render(styleMuted().Render("No README in " + f.Name + "."))
	}

	out := renderMarkdown(md, w)
	return lipgloss.NewStyle().Width(w).Height(h).MaxHeight(h).Render(out)
}

func readReadme(dir string) string {
	for _, name := range readmeNames {
		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if len(b) > previewByteLimit {
			b = b[:previewByteLimit]
		}
		return string(b)
	}
	return ""
}
