package display

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	ColorOn  = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	ColorOff = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Pixel renders character cells onto a pixel display using a fixed-pitch
// tinyfont font. It implements engine.Renderer.
type Pixel struct {
	d      drivers.Displayer
	font   tinyfont.Fonter
	fg, bg color.RGBA

	cellW, cellH int16
	offset       int16
	rows, cols   int
}

// NewPixel wraps d. A nil font selects tinyfont.TomThumb.
func NewPixel(d drivers.Displayer, font tinyfont.Fonter) *Pixel {
	if font == nil {
		font = &tinyfont.TomThumb
	}
	p := &Pixel{d: d, font: font, fg: ColorOn, bg: ColorOff}
	_, outbox := tinyfont.LineWidth(font, "0")
	p.cellW = int16(outbox)
	p.cellH = int16(font.GetYAdvance())
	if p.cellW < 1 {
		p.cellW = 1
	}
	if p.cellH < 1 {
		p.cellH = 1
	}
	// tinyfont draws from the baseline; shift down so row 0 stays on screen.
	p.offset = p.cellH - 1
	w, h := d.Size()
	p.cols = int(w / p.cellW)
	p.rows = int(h / p.cellH)
	return p
}

// SetColors changes the foreground and background used by later draws.
func (p *Pixel) SetColors(fg, bg color.RGBA) {
	p.fg, p.bg = fg, bg
}

// Cells reports how many character rows and columns fit on the display.
func (p *Pixel) Cells() (rows, cols int) {
	return p.rows, p.cols
}

// Draw clears each addressed cell and draws its glyph.
func (p *Pixel) Draw(row, col int, text []byte) {
	if row < 0 || row >= p.rows {
		return
	}
	y := int16(row) * p.cellH
	for i, c := range text {
		x := col + i
		if x < 0 {
			continue
		}
		if x >= p.cols {
			break
		}
		px := int16(x) * p.cellW
		p.fill(px, y)
		if c != ' ' {
			tinyfont.DrawChar(p.d, p.font, px, y+p.offset, rune(c), p.fg)
		}
	}
}

// Flush pushes the drawn frame to the device.
func (p *Pixel) Flush() error {
	return p.d.Display()
}

func (p *Pixel) fill(x, y int16) {
	for dy := int16(0); dy < p.cellH; dy++ {
		for dx := int16(0); dx < p.cellW; dx++ {
			p.d.SetPixel(x+dx, y+dy, p.bg)
		}
	}
}
