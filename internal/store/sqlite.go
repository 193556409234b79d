package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS settings (
	key        TEXT PRIMARY KEY,
	kind       TEXT NOT NULL,
	width      INTEGER NOT NULL,
	raw        INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
)`

const upsert = `INSERT INTO settings (key, kind, width, raw, updated_at)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(key) DO UPDATE SET kind = excluded.kind, width = excluded.width,
	raw = excluded.raw, updated_at = excluded.updated_at`

// SQLite keeps one row per key, emulating a small EEPROM.
type SQLite struct {
	mu      sync.Mutex
	db      *sql.DB
	timeout time.Duration
}

// OpenSQLite opens or creates the database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}
	db.SetMaxOpenConns(1)
	s := &SQLite{db: db, timeout: 2 * time.Second}
	ctx, cancel := s.context()
	defer cancel()
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create sqlite schema: %w", err)
	}
	events.Store.Open("sqlite", path)
	return s, nil
}

func (s *SQLite) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

func (s *SQLite) Persist(w engine.Write) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := s.context()
	defer cancel()
	rec := recordOf(w)
	if _, err := s.db.ExecContext(ctx, upsert, w.Key, rec.Kind, rec.Width, int64(rec.Raw), time.Now().Unix()); err != nil {
		persistFailed("persist", err)
		return
	}
	events.Store.Write(w.Key, rec.Width, rec.Raw)
}

func (s *SQLite) Restore(tree *menu.Tree) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	records, err := s.loadLocked()
	if err != nil {
		return 0, err
	}
	return restoreInto(tree, func(key string) (Record, bool) {
		r, ok := records[key]
		return r, ok
	}), nil
}

// Get returns the stored record for key.
func (s *SQLite) Get(key string) (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ctx, cancel := s.context()
	defer cancel()
	var (
		rec Record
		raw int64
	)
	err := s.db.QueryRowContext(ctx, `SELECT kind, width, raw FROM settings WHERE key = ?`, key).Scan(&rec.Kind, &rec.Width, &raw)
	if err == sql.ErrNoRows {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("read %q: %w", key, err)
	}
	rec.Raw = uint32(raw)
	return rec, true, nil
}

func (s *SQLite) loadLocked() (map[string]Record, error) {
	ctx, cancel := s.context()
	defer cancel()
	rows, err := s.db.QueryContext(ctx, `SELECT key, kind, width, raw FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()
	out := make(map[string]Record)
	for rows.Next() {
		var (
			key string
			rec Record
			raw int64
		)
		if err := rows.Scan(&key, &rec.Kind, &rec.Width, &raw); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		rec.Raw = uint32(raw)
		out[key] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return out, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
