package app

import (
	"github.com/atomicstack/lcdmenu/internal/asset"
	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/logging"
	"github.com/atomicstack/lcdmenu/internal/menu"
	"go.uber.org/zap"
)

// actions binds the hook names used by menu assets. Hooks read s lazily, so
// the registry can be built before the asset it resolves.
func (s *Session) actions() asset.Registry {
	return asset.Registry{
		"apply-motion":   menu.ActionFunc(func() { s.apply("motion", "speed", "accel", "steps_mm", "direction") }),
		"apply-display":  menu.ActionFunc(func() { s.apply("display", "contrast", "backlight") }),
		"home":           menu.ActionFunc(s.home),
		"reset-defaults": menu.ActionFunc(s.resetDefaults),
		"run":            menu.ActionFunc(s.run),
		"about":          menu.ActionFunc(s.about),
	}
}

// apply logs the current values of keys as if pushing them to hardware.
func (s *Session) apply(group string, keys ...string) {
	fields := make([]zap.Field, 0, len(keys)+1)
	fields = append(fields, zap.String("group", group))
	for _, key := range keys {
		if d, ok := s.Asset.Descriptor(key); ok {
			fields = append(fields, zap.String(key, asset.Format(d)))
		}
	}
	logging.Info("settings applied", fields...)
}

func (s *Session) home() {
	logging.Info("homing requested")
}

// resetDefaults restores every default and persists it like a commit.
func (s *Session) resetDefaults() {
	keys := s.Asset.ResetDefaults()
	for _, key := range keys {
		d, _ := s.Asset.Descriptor(key)
		s.store.Persist(engine.Write{
			Node:  menu.NoNode,
			Key:   key,
			Kind:  d.Kind,
			Width: d.Width(),
			Raw:   d.Raw(),
		})
	}
	logging.Info("defaults restored", zap.Int("values", len(keys)))
}

// run shows the motion program summary while it owns the display.
func (s *Session) run() {
	s.Host.Print(0, "Running")
	if d, ok := s.Asset.Descriptor("speed"); ok {
		s.Host.Printf(1, "Speed %s", asset.Format(d))
	}
}

func (s *Session) about() {
	snap := s.Stats.Snapshot()
	s.Host.Print(0, s.Asset.Title)
	s.Host.Printf(1, "%d saved", snap.Commits)
}
