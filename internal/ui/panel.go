package ui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/atomicstack/lcdmenu/internal/display"
	"github.com/atomicstack/lcdmenu/internal/engine"
)

// Panel is the simulated front panel: the renderer the engine draws on plus
// the text the terminal shows for it.
type Panel interface {
	engine.Renderer
	// Cells reports the character geometry the engine should use.
	Cells() (rows, cols int)
	// Clear blanks the panel.
	Clear()
	// Flush publishes pending draws.
	Flush() error
	// Rows returns the terminal rendering of the published frame.
	Rows() []string
	// Kind names the panel for status and tracing.
	Kind() string
}

// Display kinds accepted by NewPanel.
const (
	PanelLCD  = "lcd"
	PanelOLED = "oled"
)

// OLED resolution used by the pixel panel.
const (
	oledWidth  = 128
	oledHeight = 32
)

// NewPanel builds the panel named by kind. rows and cols apply to the
// character LCD; the OLED derives its cell grid from the font.
func NewPanel(kind string, rows, cols int) (Panel, error) {
	switch kind {
	case "", PanelLCD:
		return &lcdPanel{LCD: display.NewLCD(rows, cols)}, nil
	case PanelOLED:
		bitmap := display.NewBitmap(oledWidth, oledHeight)
		return &pixelPanel{Pixel: display.NewPixel(bitmap, nil), bitmap: bitmap}, nil
	default:
		return nil, fmt.Errorf("unknown display %q (want %s or %s)", kind, PanelLCD, PanelOLED)
	}
}

type lcdPanel struct {
	*display.LCD
}

func (p *lcdPanel) Cells() (int, int) { return p.Size() }
func (p *lcdPanel) Flush() error      { return nil }
func (p *lcdPanel) Rows() []string    { return p.Lines() }
func (p *lcdPanel) Kind() string      { return PanelLCD }

type pixelPanel struct {
	*display.Pixel
	bitmap *display.Bitmap
}

func (p *pixelPanel) Clear() {
	rows, cols := p.Cells()
	blank := bytes.Repeat([]byte{' '}, cols)
	for r := 0; r < rows; r++ {
		p.Draw(r, 0, blank)
	}
}

func (p *pixelPanel) Rows() []string {
	return strings.Split(p.bitmap.Render(), "\n")
}

func (p *pixelPanel) Kind() string { return PanelOLED }
