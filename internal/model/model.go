package model

import (
	"path/filepath"
	"strings"
)

// Folder is a candidate project directory. Identity is the absolute path;
// Name is only a display label.
type Folder struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// FolderFromPath builds a Folder for a directory path, using the base name
// as the display label.
func FolderFromPath(path string) Folder {
	path = filepath.Clean(strings.TrimSpace(path))
	return Folder{Name: filepath.Base(path), Path: path}
}

func (f Folder) Equal(other Folder) bool {
	return f.Path == other.Path
}
