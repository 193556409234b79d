package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/menu"
	"gopkg.in/yaml.v3"
)

type yamlDocument struct {
	Values map[string]Record `yaml:"values"`
}

// YAML keeps values in a single YAML document rewritten on every commit.
type YAML struct {
	mu   sync.Mutex
	path string
	doc  yamlDocument
}

// OpenYAML loads path, treating a missing file as empty.
func OpenYAML(path string) (*YAML, error) {
	s := &YAML{path: path, doc: yamlDocument{Values: map[string]Record{}}}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read value store: %w", err)
	default:
		if err := yaml.Unmarshal(data, &s.doc); err != nil {
			return nil, fmt.Errorf("parse value store %s: %w", path, err)
		}
		if s.doc.Values == nil {
			s.doc.Values = map[string]Record{}
		}
	}
	events.Store.Open("yaml", path)
	return s, nil
}

func (s *YAML) Persist(w engine.Write) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Values[w.Key] = recordOf(w)
	if err := s.saveLocked(); err != nil {
		persistFailed("persist", err)
		return
	}
	events.Store.Write(w.Key, int(w.Width), w.Raw)
}

func (s *YAML) Restore(tree *menu.Tree) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return restoreInto(tree, func(key string) (Record, bool) {
		r, ok := s.doc.Values[key]
		return r, ok
	}), nil
}

func (s *YAML) Close() error { return nil }

// saveLocked writes to a temporary file and renames it over the store so a
// crash never leaves a truncated document.
func (s *YAML) saveLocked() error {
	data, err := yaml.Marshal(&s.doc)
	if err != nil {
		return fmt.Errorf("encode value store: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write value store: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace value store: %w", err)
	}
	return nil
}
