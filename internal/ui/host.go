package ui

import (
	"bytes"
	"fmt"

	"github.com/atomicstack/lcdmenu/internal/logging/events"
)

// Mode says who owns the panel.
type Mode int

const (
	// ModeIdle is the resting screen shown before the menu is entered and
	// after a full exit.
	ModeIdle Mode = iota
	// ModeMenu means the engine is painting lists and editors.
	ModeMenu
	// ModeScreen means an exclusive screen action holds the panel.
	ModeScreen
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeMenu:
		return "menu"
	case ModeScreen:
		return "screen"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Host implements engine.Lifecycle for the simulator and gives screen
// actions a way to draw while they own the panel.
type Host struct {
	panel   Panel
	title   string
	mode    Mode
	pending bool
	line    []byte
}

// NewHost paints the idle screen for title on panel.
func NewHost(panel Panel, title string) *Host {
	_, cols := panel.Cells()
	h := &Host{panel: panel, title: title, line: make([]byte, 0, cols)}
	h.idle()
	return h
}

// OnExit is called by the engine when the menu gives up the panel.
func (h *Host) OnExit(full bool) {
	h.pending = true
	if full {
		h.setMode(ModeIdle)
		h.idle()
		return
	}
	h.setMode(ModeScreen)
	h.panel.Clear()
}

// OnExitCallbackComplete is called after the screen action has returned.
func (h *Host) OnExitCallbackComplete() {
	h.pending = false
	_ = h.panel.Flush()
}

// Print writes text on row, padded or clipped to the panel width.
func (h *Host) Print(row int, text string) {
	_, cols := h.panel.Cells()
	h.line = append(h.line[:0], text...)
	if len(h.line) > cols {
		h.line = h.line[:cols]
	}
	for len(h.line) < cols {
		h.line = append(h.line, ' ')
	}
	h.panel.Draw(row, 0, h.line)
}

// Printf formats onto row.
func (h *Host) Printf(row int, format string, args ...interface{}) {
	h.Print(row, fmt.Sprintf(format, args...))
}

// Mode reports the current owner of the panel.
func (h *Host) Mode() Mode { return h.mode }

// Pending reports whether an exit callback is still running.
func (h *Host) Pending() bool { return h.pending }

// Panel exposes the panel the host manages.
func (h *Host) Panel() Panel { return h.panel }

// resume hands the panel back to the menu.
func (h *Host) resume() {
	h.setMode(ModeMenu)
}

func (h *Host) setMode(next Mode) {
	if next == h.mode {
		return
	}
	events.UI.Mode(h.mode.String(), next.String())
	h.mode = next
}

func (h *Host) idle() {
	rows, cols := h.panel.Cells()
	h.panel.Clear()
	h.Print(0, h.title)
	if rows > 1 {
		hint := []byte("[select]")
		if pad := cols - len(hint); pad > 0 {
			hint = append(bytes.Repeat([]byte{' '}, pad), hint...)
		}
		h.Print(rows-1, string(hint))
	}
	_ = h.panel.Flush()
}
