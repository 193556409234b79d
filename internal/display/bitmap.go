package display

import (
	"image/color"
	"strings"
	"sync"

	"tinygo.org/x/drivers"
)

// Bitmap is an in-memory monochrome panel implementing drivers.Displayer.
// A pixel is lit when any colour channel is set.
type Bitmap struct {
	mu       sync.RWMutex
	w, h     int16
	front    []bool
	back     []bool
	displays int
}

var _ drivers.Displayer = (*Bitmap)(nil)

// NewBitmap allocates a w×h panel.
func NewBitmap(w, h int16) *Bitmap {
	n := int(w) * int(h)
	return &Bitmap{w: w, h: h, front: make([]bool, n), back: make([]bool, n)}
}

func (b *Bitmap) Size() (x, y int16) {
	return b.w, b.h
}

func (b *Bitmap) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return
	}
	b.mu.Lock()
	b.back[int(y)*int(b.w)+int(x)] = c.R|c.G|c.B != 0
	b.mu.Unlock()
}

// Display publishes the drawn pixels.
func (b *Bitmap) Display() error {
	b.mu.Lock()
	copy(b.front, b.back)
	b.displays++
	b.mu.Unlock()
	return nil
}

// Lit reports whether the published pixel at (x, y) is on.
func (b *Bitmap) Lit(x, y int16) bool {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return false
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.front[int(y)*int(b.w)+int(x)]
}

// Frames counts calls to Display.
func (b *Bitmap) Frames() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.displays
}

// Render draws the published frame with half-block characters, two pixel
// rows per text line.
func (b *Bitmap) Render() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	var sb strings.Builder
	for y := 0; y < int(b.h); y += 2 {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < int(b.w); x++ {
			top := b.front[y*int(b.w)+x]
			bottom := y+1 < int(b.h) && b.front[(y+1)*int(b.w)+x]
			switch {
			case top && bottom:
				sb.WriteRune('█')
			case top:
				sb.WriteRune('▀')
			case bottom:
				sb.WriteRune('▄')
			default:
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
