package controller

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"devdirs-cli/internal/model"
	"devdirs-cli/internal/opener"
	"devdirs-cli/internal/store"
)

type fakeOpener struct {
	launched []string
	fail     map[string]error
}

func (f *fakeOpener) Launch(path string) error {
	f.launched = append(f.launched, path)
	if err, ok := f.fail[path]; ok {
		return &opener.LaunchError{Path: path, Err: err}
	}
	return nil
}

type fakeSelection struct {
	paths []string
}

func (f fakeSelection) SelectedPaths(context.Context) []string { return f.paths }

func newTestController(t *testing.T, root string, sel []string, op *fakeOpener) *Controller {
	t.Helper()
	cfg := store.Config{Roots: []string{root}, Capacity: store.DefaultCapacity}
	st := store.Store{Dir: t.TempDir()}
	return New(cfg, st, op, fakeSelection{paths: sel}, nil)
}

func mkProject(t *testing.T, root, name string) model.Folder {
	t.Helper()
	p := filepath.Join(root, name)
	if err := os.MkdirAll(p, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", p, err)
	}
	return model.Folder{Name: name, Path: p}
}

func TestLoad_PartitionsRecentFromOther(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	api := mkProject(t, root, "api")
	site := mkProject(t, root, "site")

	op := &fakeOpener{}
	c := newTestController(t, root, nil, op)
	if err := c.store.SaveRecents(ctx, []model.Folder{api}); err != nil {
		t.Fatalf("seed recents: %v", err)
	}

	if c.State() != StateLoading {
		t.Fatalf("expected Loading before Load")
	}
	c.Load(ctx)
	if c.State() != StateReady {
		t.Fatalf("expected Ready after Load")
	}

	recent, other := c.Sections()
	if len(recent) != 1 || recent[0].Path != api.Path {
		t.Fatalf("unexpected recent section: %#v", recent)
	}
	if len(other) != 1 || other[0].Path != site.Path {
		t.Fatalf("unexpected other section: %#v", other)
	}

	// The invariant: no path appears in both sections.
	for _, r := range recent {
		for _, o := range other {
			if r.Path == o.Path {
				t.Fatalf("path %q in both sections", r.Path)
			}
		}
	}
}

func TestOpen_SuccessRecordsRecency(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	api := mkProject(t, root, "api")

	op := &fakeOpener{}
	c := newTestController(t, root, nil, op)
	c.Load(ctx)

	if err := c.Open(ctx, api); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(op.launched) != 1 || op.launched[0] != api.Path {
		t.Fatalf("unexpected launches: %#v", op.launched)
	}

	recent, other := c.Sections()
	if len(recent) != 1 || recent[0].Path != api.Path {
		t.Fatalf("expected api in recent, got %#v", recent)
	}
	if len(other) != 0 {
		t.Fatalf("expected api removed from other, got %#v", other)
	}

	// Durable: a fresh load from the same store dir sees the entry.
	persisted, err := c.store.LoadRecents(ctx, nil)
	if err != nil {
		t.Fatalf("LoadRecents: %v", err)
	}
	if len(persisted) != 1 || persisted[0].Path != api.Path {
		t.Fatalf("recency not persisted: %#v", persisted)
	}
}

func TestOpen_ResolvesWorkspaceDescriptor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	proj := mkProject(t, root, "proj")
	ws := filepath.Join(proj.Path, "proj.code-workspace")
	if err := os.WriteFile(ws, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	op := &fakeOpener{}
	c := newTestController(t, root, nil, op)
	c.Load(ctx)

	if err := c.Open(ctx, proj); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(op.launched) != 1 || op.launched[0] != ws {
		t.Fatalf("expected workspace file launched, got %#v", op.launched)
	}

	// The recency entry is the folder, not the descriptor file.
	recent, _ := c.Sections()
	if len(recent) != 1 || recent[0].Path != proj.Path {
		t.Fatalf("expected folder in recent, got %#v", recent)
	}
}

func TestOpen_FailureLeavesRecentsUntouched(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	api := mkProject(t, root, "api")
	bad := mkProject(t, root, "bad")

	op := &fakeOpener{fail: map[string]error{bad.Path: errors.New("editor not found")}}
	c := newTestController(t, root, nil, op)
	c.Load(ctx)

	if err := c.Open(ctx, api); err != nil {
		t.Fatalf("Open api: %v", err)
	}

	err := c.Open(ctx, bad)
	if err == nil {
		t.Fatalf("expected launch failure")
	}
	var le *opener.LaunchError
	if !errors.As(err, &le) || le.Path != bad.Path {
		t.Fatalf("expected LaunchError for %q, got %v", bad.Path, err)
	}

	recent, _ := c.Sections()
	if len(recent) != 1 || recent[0].Path != api.Path {
		t.Fatalf("failed open mutated recents: %#v", recent)
	}
	persisted, err := c.store.LoadRecents(ctx, nil)
	if err != nil {
		t.Fatalf("LoadRecents: %v", err)
	}
	if len(persisted) != 1 || persisted[0].Path != api.Path {
		t.Fatalf("failed open mutated persisted recents: %#v", persisted)
	}
}

func TestOpenSelection_EmptyReportsNoSelection(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	op := &fakeOpener{}
	c := newTestController(t, t.TempDir(), nil, op)
	c.Load(ctx)

	_, err := c.OpenSelection(ctx)
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("expected ErrNoSelection, got %v", err)
	}
	if len(op.launched) != 0 {
		t.Fatalf("expected zero launches, got %#v", op.launched)
	}
}

func TestOpenSelection_IsolatesPerItemFailures(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	op := &fakeOpener{fail: map[string]error{"/sel/b": errors.New("boom")}}
	c := newTestController(t, t.TempDir(), []string{"/sel/a", "/sel/b", "/sel/c"}, op)
	c.Load(ctx)

	sum, err := c.OpenSelection(ctx)
	if err != nil {
		t.Fatalf("OpenSelection: %v", err)
	}
	if len(op.launched) != 3 {
		t.Fatalf("one failure short-circuited the batch: %#v", op.launched)
	}
	if sum.Opened != 2 || sum.Failed != 1 || len(sum.Errors) != 1 {
		t.Fatalf("unexpected summary: %#v", sum)
	}

	// Selection opens never rank.
	recent, _ := c.Sections()
	if len(recent) != 0 {
		t.Fatalf("selection open mutated recents: %#v", recent)
	}
}

func TestClearRecents_IdempotentAndKeepsCandidates(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	root := t.TempDir()
	api := mkProject(t, root, "api")

	op := &fakeOpener{}
	c := newTestController(t, root, nil, op)
	c.Load(ctx)
	if err := c.Open(ctx, api); err != nil {
		t.Fatalf("Open: %v", err)
	}

	for i := 0; i < 2; i++ {
		if err := c.ClearRecents(ctx); err != nil {
			t.Fatalf("ClearRecents (call %d): %v", i+1, err)
		}
	}

	recent, other := c.Sections()
	if len(recent) != 0 {
		t.Fatalf("expected empty recents, got %#v", recent)
	}
	if len(other) != 1 || other[0].Path != api.Path {
		t.Fatalf("clear must not touch candidates: %#v", other)
	}
}
