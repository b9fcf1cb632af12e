// Package controller owns the launcher's state and drives the workflow:
// scan roots + load recents, partition into sections, open targets, and keep
// the recency list current. The UI observes; it never mutates state directly.
package controller

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"devdirs-cli/internal/finder"
	"devdirs-cli/internal/model"
	"devdirs-cli/internal/opener"
	"devdirs-cli/internal/scan"
	"devdirs-cli/internal/store"
	"devdirs-cli/internal/workspace"
)

type State int

const (
	StateLoading State = iota
	StateReady
)

// ErrNoSelection reports that the file manager had nothing selected when an
// open-selection action ran. Expected condition, not a system error.
var ErrNoSelection = errors.New("nothing selected in the file manager")

// SelectionSummary aggregates a best-effort batch of selection launches.
type SelectionSummary struct {
	Opened int
	Failed int
	Errors []error
}

func (s SelectionSummary) String() string {
	if s.Failed == 0 {
		return fmt.Sprintf("opened %d item(s)", s.Opened)
	}
	return fmt.Sprintf("opened %d item(s), %d failed", s.Opened, s.Failed)
}

type Controller struct {
	cfg       store.Config
	store     store.Store
	opener    opener.Opener
	selection finder.SelectionProvider
	warn      func(msg string)

	state      State
	candidates []model.Folder
	recents    []model.Folder
}

func New(cfg store.Config, st store.Store, op opener.Opener, sel finder.SelectionProvider, warn func(string)) *Controller {
	if warn == nil {
		warn = func(string) {}
	}
	return &Controller{
		cfg:       cfg,
		store:     st,
		opener:    op,
		selection: sel,
		warn:      warn,
		state:     StateLoading,
	}
}

func (c *Controller) State() State { return c.state }

// Load scans the configured roots and reads the persisted recents. The two
// are independent and read-only, so they run concurrently and join here; a
// failure on either side degrades to an empty result with a warning rather
// than blocking readiness.
func (c *Controller) Load(ctx context.Context) {
	var (
		wg         sync.WaitGroup
		candidates []model.Folder
		recents    []model.Folder
		loadErr    error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		candidates = scan.Roots(c.cfg.Roots, c.warn)
	}()
	go func() {
		defer wg.Done()
		recents, loadErr = c.store.LoadRecents(ctx, c.warn)
	}()
	wg.Wait()

	if loadErr != nil {
		c.warn("loading recent folders failed: " + loadErr.Error())
		recents = nil
	}

	c.candidates = candidates
	c.recents = recents
	c.state = StateReady
}

// Rescan refreshes the candidate set only; recents are untouched.
func (c *Controller) Rescan() {
	c.candidates = scan.Roots(c.cfg.Roots, c.warn)
}

// Sections partitions the folders for presentation: the recency list first,
// then every scanned candidate whose path is not already recent.
func (c *Controller) Sections() (recent, other []model.Folder) {
	seen := make(map[string]bool, len(c.recents))
	for _, f := range c.recents {
		seen[f.Path] = true
	}
	other = make([]model.Folder, 0, len(c.candidates))
	for _, f := range c.candidates {
		if seen[f.Path] {
			continue
		}
		other = append(other, f)
	}
	return c.recents, other
}

// Open resolves the folder's open target, launches the editor, and on
// success records the folder as most recent (durably). A failed launch
// leaves the recency list untouched.
func (c *Controller) Open(ctx context.Context, f model.Folder) error {
	target := workspace.ResolveOpenTarget(f)
	if err := c.opener.Launch(target); err != nil {
		return err
	}
	next, err := c.store.PushRecent(ctx, c.recents, f)
	if err != nil {
		// The editor is already open; losing one recency update is the
		// lesser failure. Report it and keep going.
		c.warn("recording recent folder failed: " + err.Error())
		return nil
	}
	c.recents = next
	return nil
}

// OpenSelection launches every path currently selected in the file manager.
// Per-item failures are isolated: one bad item never stops the rest. The
// recency list is not touched; only deliberate folder opens rank.
func (c *Controller) OpenSelection(ctx context.Context) (SelectionSummary, error) {
	paths := c.selection.SelectedPaths(ctx)
	if len(paths) == 0 {
		return SelectionSummary{}, ErrNoSelection
	}

	var sum SelectionSummary
	for _, p := range paths {
		if err := c.opener.Launch(p); err != nil {
			sum.Failed++
			sum.Errors = append(sum.Errors, err)
			continue
		}
		sum.Opened++
	}
	return sum, nil
}

// ClearRecents drops the persisted list and the in-memory copy. Idempotent;
// the candidate set is unaffected.
func (c *Controller) ClearRecents(ctx context.Context) error {
	if err := c.store.ClearRecents(ctx); err != nil {
		return err
	}
	c.recents = nil
	return nil
}
