// Package finder asks the file manager for its current selection.
//
// On macOS this goes through osascript: Finder reports the selection and the
// script converts each item to a POSIX path. Any failure — osascript missing,
// Finder not running, script error — yields an empty selection plus a
// diagnostic; callers never see an error.
package finder

import (
	"context"
	"os/exec"
	"runtime"
	"strings"
)

type SelectionProvider interface {
	SelectedPaths(ctx context.Context) []string
}

const selectionScript = `tell application "Finder" to set sel to selection
set out to ""
repeat with f in sel
	set out to out & POSIX path of (f as alias) & linefeed
end repeat
out`

// Finder queries the macOS Finder. Warn (may be nil) receives diagnostics for
// swallowed failures.
type Finder struct {
	Warn func(msg string)
}

func (f Finder) SelectedPaths(ctx context.Context) []string {
	if runtime.GOOS != "darwin" {
		f.warn("file-manager selection is only available on macOS")
		return nil
	}
	out, err := exec.CommandContext(ctx, "osascript", "-e", selectionScript).Output()
	if err != nil {
		f.warn("querying Finder selection failed: " + err.Error())
		return nil
	}
	return splitPaths(string(out))
}

func (f Finder) warn(msg string) {
	if f.Warn != nil {
		f.Warn(msg)
	}
}

func splitPaths(out string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		// Finder reports folders with a trailing slash.
		if len(line) > 1 {
			line = strings.TrimRight(line, "/")
		}
		paths = append(paths, line)
	}
	return paths
}
