package scan

import (
	"errors"
	"os"
	"path/filepath"

	"devdirs-cli/internal/model"
)

// WarnFunc receives human-readable diagnostics for degraded-but-non-fatal
// conditions (e.g. a configured root that does not exist on this machine).
type WarnFunc func(msg string)

// Roots lists the immediate subdirectories of each root, in root order and
// then directory enumeration order. Missing or unreadable roots contribute
// nothing; they are reported through warn (which may be nil).
//
// Only real directories are included: files and symlinks that do not point
// at directories are skipped.
func Roots(roots []string, warn WarnFunc) []model.Folder {
	out := []model.Folder{}
	for _, root := range roots {
		out = append(out, oneRoot(root, warn)...)
	}
	return out
}

func oneRoot(root string, warn WarnFunc) []model.Folder {
	ents, err := os.ReadDir(root)
	if err != nil {
		if warn != nil {
			if errors.Is(err, os.ErrNotExist) {
				warn("root does not exist: " + root)
			} else {
				warn("cannot read root " + root + ": " + err.Error())
			}
		}
		return nil
	}

	var out []model.Folder
	for _, e := range ents {
		if !e.IsDir() {
			// ReadDir does not follow symlinks; a symlink to a directory
			// still counts as a folder for picking purposes.
			if e.Type()&os.ModeSymlink == 0 {
				continue
			}
			st, err := os.Stat(filepath.Join(root, e.Name()))
			if err != nil || !st.IsDir() {
				continue
			}
		}
		out = append(out, model.Folder{
			Name: e.Name(),
			Path: filepath.Join(root, e.Name()),
		})
	}
	return out
}
