package engine

import (
	"encoding/binary"
	"math"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

// Button is one discrete input event.
type Button uint8

const (
	// ButtonNone carries no key; it requests a repaint.
	ButtonNone Button = iota
	ButtonSelect
	ButtonForward
	ButtonIncrease
	ButtonDecrease
	ButtonBack
)

var buttonNames = [...]string{
	ButtonNone:     "none",
	ButtonSelect:   "select",
	ButtonForward:  "forward",
	ButtonIncrease: "increase",
	ButtonDecrease: "decrease",
	ButtonBack:     "back",
}

func (b Button) String() string {
	if int(b) < len(buttonNames) {
		return buttonNames[b]
	}
	return "unknown"
}

// ParseButton resolves a name produced by String.
func ParseButton(name string) (Button, bool) {
	for i, n := range buttonNames {
		if n == name {
			return Button(i), true
		}
	}
	return ButtonNone, false
}

// Renderer paints fixed-width text at a display cell. Draw writes exactly
// len(text) characters starting at (row, col). The slice is reused by the
// engine after Draw returns and must not be retained.
type Renderer interface {
	Draw(row, col int, text []byte)
}

// Lifecycle is told when the menu yields the display.
type Lifecycle interface {
	// OnExit reports a full exit from the tree (full=true) or a hand-off to
	// an exclusive screen (full=false).
	OnExit(full bool)
	// OnExitCallbackComplete follows the exclusive screen's action.
	OnExitCallbackComplete()
}

// Persister durably stores committed values. Persist is called exactly once
// per commit after the live cell has been updated; failures stay with the
// persister.
type Persister interface {
	Persist(w Write)
}

// Write describes one committed value.
type Write struct {
	Node  menu.NodeID
	Key   string
	Kind  menu.ValueKind
	Width menu.Width
	// Raw is the new bit pattern, zero extended to 32 bits.
	Raw uint32
}

// Int returns Raw sign extended according to Kind.
func (w Write) Int() int64 {
	switch w.Kind {
	case menu.Int:
		return int64(int16(uint16(w.Raw)))
	case menu.Long:
		return int64(int32(w.Raw))
	case menu.UInt:
		return int64(uint16(w.Raw))
	case menu.Byte, menu.Select, menu.BitFlag:
		return int64(uint8(w.Raw))
	}
	return int64(w.Raw)
}

// Float returns Raw interpreted as a float32 bit pattern.
func (w Write) Float() float32 {
	return math.Float32frombits(w.Raw)
}

// Bytes returns the little-endian encoding of Raw truncated to Width.
func (w Write) Bytes() []byte {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], w.Raw)
	n := int(w.Width)
	if n <= 0 || n > len(buf) {
		n = len(buf)
	}
	return buf[:n]
}

type nopRenderer struct{}

func (nopRenderer) Draw(int, int, []byte) {}

type nopLifecycle struct{}

func (nopLifecycle) OnExit(bool) {}
func (nopLifecycle) OnExitCallbackComplete() {}

type nopPersister struct{}

func (nopPersister) Persist(Write) {}

// PersisterFunc adapts a function to the Persister interface.
type PersisterFunc func(Write)

// Persist calls f.
func (f PersisterFunc) Persist(w Write) {
	if f != nil {
		f(w)
	}
}
