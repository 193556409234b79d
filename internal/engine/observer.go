package engine

import (
	"go.uber.org/atomic"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

// Observer receives notifications about engine transitions. It never
// changes behaviour; implementations must return promptly and must not call
// back into the engine.
type Observer interface {
	Input(b Button)
	Cursor(parent menu.NodeID, index int)
	Descend(from, to menu.NodeID)
	Ascend(from, to menu.NodeID)
	Exit(full bool)
	Activate(node menu.NodeID, kind menu.Kind)
	EditBegin(node menu.NodeID)
	EditChange(node menu.NodeID)
	Commit(w Write)
	Abort(node menu.NodeID)
	// HistoryDropped reports a push discarded because the stack was full.
	HistoryDropped(parent menu.NodeID)
	// SelectFallback reports a stored select value missing from its option
	// list; editing starts at the first option.
	SelectFallback(node menu.NodeID, stored uint8)
}

// NopObserver implements Observer with empty methods. Embed it to override
// only the notifications of interest.
type NopObserver struct{}

func (NopObserver) Input(Button) {}
func (NopObserver) Cursor(menu.NodeID, int) {}
func (NopObserver) Descend(menu.NodeID, menu.NodeID) {}
func (NopObserver) Ascend(menu.NodeID, menu.NodeID) {}
func (NopObserver) Exit(bool) {}
func (NopObserver) Activate(menu.NodeID, menu.Kind) {}
func (NopObserver) EditBegin(menu.NodeID) {}
func (NopObserver) EditChange(menu.NodeID) {}
func (NopObserver) Commit(Write) {}
func (NopObserver) Abort(menu.NodeID) {}
func (NopObserver) HistoryDropped(menu.NodeID) {}
func (NopObserver) SelectFallback(menu.NodeID, uint8) {}

// Observers fans notifications out to every member in order.
type Observers []Observer

func (o Observers) Input(b Button) {
	for _, x := range o {
		x.Input(b)
	}
}

func (o Observers) Cursor(parent menu.NodeID, index int) {
	for _, x := range o {
		x.Cursor(parent, index)
	}
}

func (o Observers) Descend(from, to menu.NodeID) {
	for _, x := range o {
		x.Descend(from, to)
	}
}

func (o Observers) Ascend(from, to menu.NodeID) {
	for _, x := range o {
		x.Ascend(from, to)
	}
}

func (o Observers) Exit(full bool) {
	for _, x := range o {
		x.Exit(full)
	}
}

func (o Observers) Activate(node menu.NodeID, kind menu.Kind) {
	for _, x := range o {
		x.Activate(node, kind)
	}
}

func (o Observers) EditBegin(node menu.NodeID) {
	for _, x := range o {
		x.EditBegin(node)
	}
}

func (o Observers) EditChange(node menu.NodeID) {
	for _, x := range o {
		x.EditChange(node)
	}
}

func (o Observers) Commit(w Write) {
	for _, x := range o {
		x.Commit(w)
	}
}

func (o Observers) Abort(node menu.NodeID) {
	for _, x := range o {
		x.Abort(node)
	}
}

func (o Observers) HistoryDropped(parent menu.NodeID) {
	for _, x := range o {
		x.HistoryDropped(parent)
	}
}

func (o Observers) SelectFallback(node menu.NodeID, stored uint8) {
	for _, x := range o {
		x.SelectFallback(node, stored)
	}
}

// Stats counts engine events. Counters may be read from another goroutine
// while the engine runs.
type Stats struct {
	NopObserver

	Inputs          atomic.Int64
	Descents        atomic.Int64
	Ascents         atomic.Int64
	FullExits       atomic.Int64
	ScreenExits     atomic.Int64
	Activations     atomic.Int64
	Commits         atomic.Int64
	Aborts          atomic.Int64
	HistoryDrops    atomic.Int64
	SelectFallbacks atomic.Int64
}

func (s *Stats) Input(Button) { s.Inputs.Inc() }
func (s *Stats) Descend(menu.NodeID, menu.NodeID) { s.Descents.Inc() }
func (s *Stats) Ascend(menu.NodeID, menu.NodeID) { s.Ascents.Inc() }
func (s *Stats) Activate(menu.NodeID, menu.Kind) { s.Activations.Inc() }
func (s *Stats) Commit(Write) { s.Commits.Inc() }
func (s *Stats) Abort(menu.NodeID) { s.Aborts.Inc() }
func (s *Stats) HistoryDropped(menu.NodeID) { s.HistoryDrops.Inc() }
func (s *Stats) SelectFallback(menu.NodeID, uint8) {
	s.SelectFallbacks.Inc()
}

func (s *Stats) Exit(full bool) {
	if full {
		s.FullExits.Inc()
		return
	}
	s.ScreenExits.Inc()
}

// Snapshot is a plain copy of the counters.
type Snapshot struct {
	Inputs          int64 `json:"inputs"`
	Descents        int64 `json:"descents"`
	Ascents         int64 `json:"ascents"`
	FullExits       int64 `json:"full_exits"`
	ScreenExits     int64 `json:"screen_exits"`
	Activations     int64 `json:"activations"`
	Commits         int64 `json:"commits"`
	Aborts          int64 `json:"aborts"`
	HistoryDrops    int64 `json:"history_drops"`
	SelectFallbacks int64 `json:"select_fallbacks"`
}

// Snapshot loads every counter.
func (s *Stats) Snapshot() Snapshot {
	return Snapshot{
		Inputs:          s.Inputs.Load(),
		Descents:        s.Descents.Load(),
		Ascents:         s.Ascents.Load(),
		FullExits:       s.FullExits.Load(),
		ScreenExits:     s.ScreenExits.Load(),
		Activations:     s.Activations.Load(),
		Commits:         s.Commits.Load(),
		Aborts:          s.Aborts.Load(),
		HistoryDrops:    s.HistoryDrops.Load(),
		SelectFallbacks: s.SelectFallbacks.Load(),
	}
}
