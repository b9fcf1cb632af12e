package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// DefaultCapacity bounds the persisted recent-folder list.
const DefaultCapacity = 10

// Config holds the fixed launcher configuration. Roots are scanned for
// candidate folders; the editor settings decide how targets are launched.
type Config struct {
	// Roots is the ordered list of directories whose immediate
	// subdirectories are offered as projects.
	Roots []string `json:"roots,omitempty"`

	// EditorApp is the application name used with the OS "open with
	// application" facility (e.g. `open -a` on macOS).
	EditorApp string `json:"editorApp,omitempty"`

	// EditorCmd is the editor's own command-line launcher, used when a
	// specific file (such as a workspace descriptor) must be targeted
	// precisely, or when the OS open facility is unavailable.
	EditorCmd string `json:"editorCmd,omitempty"`

	// Capacity caps the recent list. Zero means DefaultCapacity.
	Capacity int `json:"capacity,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.devdirs).
	if v := strings.TrimSpace(os.Getenv("DEVDIRS_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".devdirs"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// DefaultConfig derives the standard roots from a home directory.
func DefaultConfig(home string) Config {
	return Config{
		Roots: []string{
			filepath.Join(home, "Work"),
			filepath.Join(home, "Documents", "Projects"),
		},
		EditorApp: "Visual Studio Code",
		EditorCmd: "code",
		Capacity:  DefaultCapacity,
	}
}

// LoadConfig reads the config file, filling in defaults for anything unset.
// A missing file yields the defaults.
func LoadConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	cfg := DefaultConfig(home)

	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	var fileCfg Config
	if err := json.Unmarshal(b, &fileCfg); err != nil {
		return cfg, err
	}
	if len(fileCfg.Roots) > 0 {
		cfg.Roots = fileCfg.Roots
	}
	if strings.TrimSpace(fileCfg.EditorApp) != "" {
		cfg.EditorApp = fileCfg.EditorApp
	}
	if strings.TrimSpace(fileCfg.EditorCmd) != "" {
		cfg.EditorCmd = fileCfg.EditorCmd
	}
	if fileCfg.Capacity > 0 {
		cfg.Capacity = fileCfg.Capacity
	}
	return cfg, nil
}

func SaveConfig(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	// Unique temp file + atomic rename to avoid cross-process clobbering.
	return atomicWriteFile(dir, "config.json.*.tmp", path, b, 0o644)
}

func atomicWriteFile(dir, tmpPattern, path string, b []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(dir, tmpPattern)
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()
	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	_ = os.Chmod(tmp, perm)
	return os.Rename(tmp, path)
}
