package engine

import "github.com/atomicstack/lcdmenu/internal/menu"

// DefaultDepth is the history capacity used when none is configured.
const DefaultDepth = 4

// History is a fixed-capacity stack of parent references. Pushes beyond
// capacity are dropped.
type History struct {
	slots []menu.NodeID
}

// NewHistory allocates a stack holding at most depth entries.
func NewHistory(depth int) *History {
	if depth <= 0 {
		depth = DefaultDepth
	}
	h := &History{slots: make([]menu.NodeID, depth)}
	h.Reset()
	return h
}

// Push stores id in the first empty slot. It reports false when the stack
// is full and the entry was dropped.
func (h *History) Push(id menu.NodeID) bool {
	for i := range h.slots {
		if h.slots[i] == menu.NoNode {
			h.slots[i] = id
			return true
		}
	}
	return false
}

// Pop clears and returns the topmost occupied slot.
func (h *History) Pop() (menu.NodeID, bool) {
	for i := len(h.slots) - 1; i >= 0; i-- {
		if id := h.slots[i]; id != menu.NoNode {
			h.slots[i] = menu.NoNode
			return id, true
		}
	}
	return menu.NoNode, false
}

// Len counts occupied slots.
func (h *History) Len() int {
	n := 0
	for _, id := range h.slots {
		if id != menu.NoNode {
			n++
		}
	}
	return n
}

// Cap is the fixed capacity.
func (h *History) Cap() int {
	return len(h.slots)
}

// Reset empties the stack without reallocating.
func (h *History) Reset() {
	for i := range h.slots {
		h.slots[i] = menu.NoNode
	}
}
