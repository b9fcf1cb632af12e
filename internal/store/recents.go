// Package store persists the launcher's small durable state: the bounded
// most-recently-opened folder list, kept as a JSON blob under a fixed key in
// a per-user SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"devdirs-cli/internal/model"

	_ "modernc.org/sqlite"
)

const (
	stateFileName = "state.sqlite"

	// recentsKey is the fixed state_meta key holding the recent-folder list.
	recentsKey = "recent_folders"
)

// Store owns the persisted state directory. The zero value is unusable; set
// Dir (normally the config dir) before calling methods.
type Store struct {
	Dir string

	// Capacity caps the recent list; zero means DefaultCapacity.
	Capacity int
}

func (s Store) capacity() int {
	if s.Capacity > 0 {
		return s.Capacity
	}
	return DefaultCapacity
}

func (s Store) statePath() string {
	return filepath.Join(s.Dir, stateFileName)
}

func (s Store) ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store: empty dir")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := s.ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.statePath())
	if err != nil {
		return nil, err
	}
	// WAL enables one writer + many readers; busy_timeout avoids
	// "database is locked" flakiness with a CLI and TUI running side by side.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if _, err := db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state_meta (
		k TEXT PRIMARY KEY,
		v TEXT NOT NULL
	);`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// InsertOrPromote returns list with folder at the front, any previous entry
// for the same path removed, truncated to capacity. Pure; persistence is the
// caller's responsibility (see PushRecent).
func InsertOrPromote(list []model.Folder, folder model.Folder, capacity int) []model.Folder {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	out := make([]model.Folder, 0, len(list)+1)
	out = append(out, folder)
	for _, f := range list {
		if f.Path == folder.Path {
			continue
		}
		out = append(out, f)
	}
	if len(out) > capacity {
		out = out[:capacity]
	}
	return out
}

// LoadRecents reads the persisted recent list. Missing database, missing row
// or malformed JSON all load as an empty list; the warn callback (may be nil)
// reports the malformed case so operators can see the degradation.
func (s Store) LoadRecents(ctx context.Context, warn func(string)) ([]model.Folder, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var raw string
	err = db.QueryRowContext(ctx, `SELECT v FROM state_meta WHERE k = ?`, recentsKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return []model.Folder{}, nil
	}
	if err != nil {
		return nil, err
	}

	var list []model.Folder
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		// Corrupt value: treat as empty. The next successful write replaces it.
		if warn != nil {
			warn("recent-folder state is malformed; starting with an empty list")
		}
		return []model.Folder{}, nil
	}
	if len(list) > s.capacity() {
		list = list[:s.capacity()]
	}
	return list, nil
}

// SaveRecents durably replaces the persisted recent list.
func (s Store) SaveRecents(ctx context.Context, list []model.Folder) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if list == nil {
		list = []model.Folder{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `INSERT OR REPLACE INTO state_meta(k, v) VALUES(?, ?)`, recentsKey, string(b))
	return err
}

// PushRecent applies InsertOrPromote to list and persists the result before
// returning it. The returned list is only valid if err is nil.
func (s Store) PushRecent(ctx context.Context, list []model.Folder, folder model.Folder) ([]model.Folder, error) {
	next := InsertOrPromote(list, folder, s.capacity())
	if err := s.SaveRecents(ctx, next); err != nil {
		return nil, err
	}
	return next, nil
}

// ClearRecents discards the persisted list. Idempotent.
func (s Store) ClearRecents(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `DELETE FROM state_meta WHERE k = ?`, recentsKey)
	return err
}
