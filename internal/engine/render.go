package engine

import (
	"strconv"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

// paintList draws the page of children containing the highlighted index.
// Every row gets the cursor column and a label field padded with spaces;
// rows past the last child are blank.
func (e *Engine) paintList() {
	children := e.tree.Node(e.parent).Children()
	page := e.index / e.rows
	cursorRow := e.index % e.rows
	labelCol := len(e.cursor)
	for r := 0; r < e.rows; r++ {
		if r == cursorRow {
			e.render.Draw(r, 0, e.cursor)
		} else {
			e.render.Draw(r, 0, e.blankCursor)
		}
		buf := e.blank(e.cols - labelCol)
		if i := page*e.rows + r; i < len(children) {
			copy(buf, e.tree.Node(children[i]).Label)
		}
		e.render.Draw(r, labelCol, buf)
	}
}

// paintEdit draws the label of the node being edited on the first row and
// its pending value on the second; remaining rows are cleared.
func (e *Engine) paintEdit() {
	n := e.tree.Node(e.highlighted)
	buf := e.blank(e.cols)
	copy(buf, n.Label)
	e.render.Draw(0, 0, buf)
	if e.rows < 2 {
		return
	}
	e.paintValue()
	for r := 2; r < e.rows; r++ {
		e.render.Draw(r, 0, e.blank(e.cols))
	}
}

// paintValue redraws only the value row.
func (e *Engine) paintValue() {
	if e.rows < 2 {
		return
	}
	e.render.Draw(1, 0, e.formatValue())
}

// formatValue renders the pending value into the row workspace, left
// aligned and padded to the display width.
func (e *Engine) formatValue() []byte {
	d := e.ed.desc
	out := e.row[:0]
	switch d.Kind {
	case menu.Byte:
		out = strconv.AppendUint(out, uint64(e.ed.narrow), 10)
	case menu.Int, menu.Long:
		out = strconv.AppendInt(out, e.ed.wide, 10)
	case menu.UInt, menu.ULong:
		out = strconv.AppendUint(out, uint64(e.ed.wide), 10)
	case menu.Float, menu.Float10, menu.Float100, menu.Float1000:
		out = appendFloat(out, e.ed.real, d.Kind.Precision())
	case menu.Select:
		cell, _ := d.Storage.(menu.SelectCell)
		if int(e.ed.narrow) < len(cell.Options) {
			out = append(out, cell.Options[e.ed.narrow].Label...)
		}
	case menu.BitFlag:
		if e.ed.narrow != 0 {
			out = append(out, e.flagOn...)
		} else {
			out = append(out, e.flagOff...)
		}
	}
	if len(out) > e.cols {
		out = out[:e.cols]
	}
	for len(out) < e.cols {
		out = append(out, ' ')
	}
	return out
}

// appendFloat formats v with prec fractional digits, right aligned in a
// field of at least prec+2 characters.
func appendFloat(dst []byte, v float32, prec int) []byte {
	start := len(dst)
	dst = strconv.AppendFloat(dst, float64(v), 'f', prec, 32)
	width := prec + 2
	if n := len(dst) - start; n < width {
		pad := width - n
		for i := 0; i < pad; i++ {
			dst = append(dst, ' ')
		}
		copy(dst[start+pad:], dst[start:start+n])
		for i := start; i < start+pad; i++ {
			dst[i] = ' '
		}
	}
	return dst
}

// blank returns the first n bytes of the row workspace filled with spaces.
func (e *Engine) blank(n int) []byte {
	if n < 0 {
		n = 0
	}
	buf := e.row[:n]
	for i := range buf {
		buf[i] = ' '
	}
	return buf
}
