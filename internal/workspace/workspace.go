// Package workspace resolves the actual open target for a folder.
//
// Editors like VS Code prefer a workspace file over the bare folder when one
// exists, so a folder containing a single `*.code-workspace` file should open
// that file instead.
package workspace

import (
	"os"
	"path/filepath"
	"strings"

	"devdirs-cli/internal/model"
)

const descriptorSuffix = ".code-workspace"

// ResolveOpenTarget returns the path that should be handed to the opener for
// a folder: the folder's workspace descriptor file if it has one, otherwise
// the folder path itself.
//
// A missing or unreadable folder returns the folder path unchanged; the
// opener surfaces that failure. If several descriptors exist the first one in
// directory enumeration order wins.
func ResolveOpenTarget(f model.Folder) string {
	ents, err := os.ReadDir(f.Path)
	if err != nil {
		return f.Path
	}
	for _, e := range ents {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), descriptorSuffix) {
			return filepath.Join(f.Path, e.Name())
		}
	}
	return f.Path
}
