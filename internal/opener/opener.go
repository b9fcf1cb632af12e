// Package opener launches the external editor against a path. It is the only
// place that knows how launching works; everything else goes through the
// Opener interface so failures stay at this boundary.
package opener

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

type Opener interface {
	Launch(path string) error
}

// LaunchError reports a failed launch with the path that was being opened.
type LaunchError struct {
	Path string
	Err  error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("launch %s: %v", e.Path, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// Editor opens targets in a code editor. App is the application name for the
// OS "open with application" facility; Cmd is the editor's own CLI launcher,
// used when a specific file must be targeted precisely (e.g. a workspace
// descriptor) and on platforms without `open`.
type Editor struct {
	App string
	Cmd string
}

func (e Editor) Launch(path string) error {
	cmd, err := e.command(path)
	if err != nil {
		return &LaunchError{Path: path, Err: err}
	}
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return &LaunchError{Path: path, Err: err}
	}
	return nil
}

func (e Editor) command(path string) (*exec.Cmd, error) {
	// `open -a` hands the argument to Launch Services, which opens files with
	// their default handler rather than the editor. The editor CLI targets a
	// file precisely, so prefer it whenever the target is a regular file.
	if runtime.GOOS == "darwin" && strings.TrimSpace(e.App) != "" && !isRegularFile(path) {
		return exec.Command("open", "-a", e.App, path), nil
	}

	args := splitShellWords(e.Cmd)
	if len(args) == 0 {
		return nil, errors.New("no editor command configured")
	}
	return exec.Command(args[0], append(args[1:], path)...), nil
}

func isRegularFile(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.Mode().IsRegular()
}
