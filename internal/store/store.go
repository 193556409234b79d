package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/logging"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
	"go.uber.org/zap"
)

// Record is one persisted value.
type Record struct {
	Kind  string `yaml:"kind"`
	Width int    `yaml:"width"`
	Raw   uint32 `yaml:"raw"`
}

// Store persists committed values and restores them into a tree at start.
type Store interface {
	engine.Persister
	// Restore writes every stored record into the matching cells of tree.
	Restore(tree *menu.Tree) (restored int, err error)
	Close() error
}

// Open selects a backend from the file extension: .yaml/.yml for the YAML
// file store, .db/.sqlite/.sqlite3 for SQLite. An empty path keeps values
// in memory only.
func Open(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		if path == "" {
			return NewMemory(), nil
		}
	case ".yaml", ".yml":
		return OpenYAML(path)
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	}
	return nil, fmt.Errorf("store: unsupported file type %q", path)
}

func recordOf(w engine.Write) Record {
	return Record{Kind: w.Kind.String(), Width: int(w.Width), Raw: w.Raw}
}

// restoreInto applies records to every keyed value of tree. Records whose
// kind or width no longer matches the descriptor are skipped.
func restoreInto(tree *menu.Tree, lookup func(key string) (Record, bool)) int {
	restored, skipped := 0, 0
	tree.Walk(func(id menu.NodeID, _ int) {
		d, ok := tree.Node(id).Descriptor()
		if !ok || d.Key == "" {
			return
		}
		rec, ok := lookup(d.Key)
		if !ok {
			return
		}
		if rec.Kind != d.Kind.String() || rec.Width != int(d.Width()) {
			skipped++
			logging.Warn("stored value does not match descriptor",
				zap.String("key", d.Key),
				zap.String("stored_kind", rec.Kind),
				zap.String("expected_kind", d.Kind.String()),
				zap.Int("stored_width", rec.Width),
				zap.Int("expected_width", int(d.Width())),
			)
			return
		}
		d.SetRaw(rec.Raw)
		restored++
	})
	events.Store.Restore(restored, skipped)
	return restored
}

func persistFailed(op string, err error) {
	events.Store.Error(op, err)
	logging.Error(fmt.Errorf("store %s: %w", op, err))
}
