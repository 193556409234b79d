package display

import (
	"strings"
	"sync"
)

// LCD is an in-memory character display. It implements engine.Renderer
// and may be read from another goroutine while the engine draws.
type LCD struct {
	mu     sync.RWMutex
	rows   int
	cols   int
	cells  []byte
	frames uint64
}

// NewLCD allocates a rows×cols display filled with spaces.
func NewLCD(rows, cols int) *LCD {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	l := &LCD{rows: rows, cols: cols, cells: make([]byte, rows*cols)}
	l.Clear()
	return l
}

// Draw copies text into the cells starting at (row, col). Characters past
// the right edge are clipped; rows outside the display are ignored.
func (l *LCD) Draw(row, col int, text []byte) {
	if row < 0 || row >= l.rows || col >= l.cols {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, c := range text {
		x := col + i
		if x < 0 {
			continue
		}
		if x >= l.cols {
			break
		}
		if c < 0x20 || c > 0x7e {
			c = '?'
		}
		l.cells[row*l.cols+x] = c
	}
	l.frames++
}

// Clear blanks every cell.
func (l *LCD) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.cells {
		l.cells[i] = ' '
	}
}

// Size returns the geometry in characters.
func (l *LCD) Size() (rows, cols int) {
	return l.rows, l.cols
}

// Line returns one row of the display.
func (l *LCD) Line(row int) string {
	if row < 0 || row >= l.rows {
		return ""
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return string(l.cells[row*l.cols : (row+1)*l.cols])
}

// Lines returns a copy of every row.
func (l *LCD) Lines() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]string, l.rows)
	for r := range out {
		out[r] = string(l.cells[r*l.cols : (r+1)*l.cols])
	}
	return out
}

// Draws counts Draw calls since construction.
func (l *LCD) Draws() uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.frames
}

func (l *LCD) String() string {
	return strings.Join(l.Lines(), "\n")
}
