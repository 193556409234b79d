package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/lcdmenu/internal/asset"
	"github.com/atomicstack/lcdmenu/internal/engine"
	"github.com/atomicstack/lcdmenu/internal/input"
	"github.com/atomicstack/lcdmenu/internal/logging"
	"github.com/atomicstack/lcdmenu/internal/logging/events"
	"github.com/atomicstack/lcdmenu/internal/store"
	"github.com/atomicstack/lcdmenu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Config describes user-provided application options.
type Config struct {
	Rows       int
	Cols       int
	Depth      int
	Cursor     string
	AssetPath  string
	StorePath  string
	Device     string
	RootMenu   string
	Refresh    time.Duration
	Display    string
	Width      int
	Height     int
	ShowFooter bool
}

// deviceRepeat spaces auto-repeat presses from hardware buttons.
const deviceRepeat = 150 * time.Millisecond

// Session is a fully wired menu: asset, store, engine and the terminal
// model driving it.
type Session struct {
	Asset  *asset.Asset
	Engine *engine.Engine
	Host   *ui.Host
	Model  *ui.Model
	Stats  *engine.Stats

	store  store.Store
	source *input.Source
}

// Open builds a session from cfg without starting the terminal program.
func Open(cfg Config) (*Session, error) {
	s := &Session{Stats: &engine.Stats{}}

	var err error
	if cfg.AssetPath != "" {
		s.Asset, err = asset.Load(cfg.AssetPath, s.actions())
	} else {
		s.Asset, err = asset.Default(s.actions())
	}
	if err != nil {
		return nil, fmt.Errorf("load menu: %w", err)
	}
	tree := s.Asset.Tree

	panel, err := ui.NewPanel(cfg.Display, cfg.Rows, cfg.Cols)
	if err != nil {
		return nil, err
	}
	s.Host = ui.NewHost(panel, s.Asset.Title)
	rows, cols := panel.Cells()

	s.store, err = store.Open(cfg.StorePath)
	if err != nil {
		return nil, err
	}
	restored, err := s.store.Restore(tree)
	if err != nil {
		s.store.Close()
		return nil, fmt.Errorf("restore values: %w", err)
	}
	logging.Info("values restored", zap.Int("count", restored), zap.String("store", cfg.StorePath))

	opts := []engine.Option{
		engine.WithRenderer(panel),
		engine.WithLifecycle(s.Host),
		engine.WithPersister(s.store),
		engine.WithObserver(events.NewEngineTracer(tree)),
		engine.WithObserver(s.Stats),
		engine.WithGeometry(rows, cols),
		engine.WithDepth(cfg.Depth),
	}
	if cfg.Cursor != "" {
		opts = append(opts, engine.WithCursor(cfg.Cursor))
	}
	if cfg.RootMenu != "" {
		id, err := tree.FindSubmenu(cfg.RootMenu)
		if err != nil {
			s.store.Close()
			return nil, fmt.Errorf("root menu: %w", err)
		}
		opts = append(opts, engine.WithRoot(id))
	}
	s.Engine, err = engine.New(tree, opts...)
	if err != nil {
		s.store.Close()
		return nil, err
	}

	if cfg.Device != "" {
		s.source, err = input.Open(cfg.Device, input.Options{Repeat: deviceRepeat, Grab: true})
		if err != nil {
			s.store.Close()
			return nil, fmt.Errorf("open input device: %w", err)
		}
	}

	s.Model = ui.NewModel(s.Engine, s.Host, ui.Options{
		Title:      s.Asset.Title,
		Tick:       cfg.Refresh,
		ShowFooter: cfg.ShowFooter,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Source:     s.source,
	})
	return s, nil
}

// Close stops the input device and flushes the value store.
func (s *Session) Close() error {
	if s.source != nil {
		s.source.Stop()
		s.source.Wait()
	}
	if s.store != nil {
		return s.store.Close()
	}
	return nil
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	s, err := Open(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Close(); err != nil {
			logging.Error(err)
		}
	}()
	program := tea.NewProgram(s.Model, tea.WithAltScreen())
	_, err = program.Run()
	events.App.Stop(s.Stats.Snapshot())
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
