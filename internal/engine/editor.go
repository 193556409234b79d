package engine

import (
	"math"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

// editor holds the single pending edit. Exactly one of the temporaries is
// meaningful, selected by the kind of the descriptor being edited: narrow
// carries bytes, select indices and flag bits, wide carries the 16 and 32
// bit integers, real carries floats.
type editor struct {
	desc *menu.Descriptor

	narrow uint8
	wide   int64
	real   float32
}

// load copies the stored value of d into the matching temporary. It
// reports false when a select value was not found in its option list and
// the first option was chosen instead.
func (e *editor) load(d *menu.Descriptor) bool {
	e.desc = d
	e.narrow, e.wide, e.real = 0, 0, 0
	raw := d.Raw()
	switch d.Kind {
	case menu.Byte:
		e.narrow = uint8(raw)
	case menu.Int:
		e.wide = int64(int16(uint16(raw)))
	case menu.UInt:
		e.wide = int64(uint16(raw))
	case menu.Long:
		e.wide = int64(int32(raw))
	case menu.ULong:
		e.wide = int64(raw)
	case menu.Float, menu.Float10, menu.Float100, menu.Float1000:
		e.real = math.Float32frombits(raw)
	case menu.Select:
		cell, _ := d.Storage.(menu.SelectCell)
		for i, opt := range cell.Options {
			if opt.Value == uint8(raw) {
				e.narrow = uint8(i)
				return true
			}
		}
		return false
	case menu.BitFlag:
		cell, _ := d.Storage.(menu.FlagCell)
		e.narrow = uint8(raw>>cell.Bit) & 1
	}
	return true
}

// step moves the temporary one unit up (dir > 0) or down.
func (e *editor) step(dir int) {
	d := e.desc
	if d == nil {
		return
	}
	switch d.Kind {
	case menu.Byte:
		e.narrow = uint8(e.bound(int64(e.narrow)+int64(dir), 8, false))
	case menu.Int:
		e.wide = e.bound(e.wide+int64(dir), 16, true)
	case menu.UInt:
		e.wide = e.bound(e.wide+int64(dir), 16, false)
	case menu.Long:
		e.wide = e.bound(e.wide+int64(dir), 32, true)
	case menu.ULong:
		e.wide = e.bound(e.wide+int64(dir), 32, false)
	case menu.Float, menu.Float10, menu.Float100, menu.Float1000:
		e.real = e.stepFloat(dir)
	case menu.Select:
		cell, _ := d.Storage.(menu.SelectCell)
		n := len(cell.Options)
		if n == 0 {
			return
		}
		e.narrow = uint8(wrapIndex(int(e.narrow)+dir, n))
	case menu.BitFlag:
		e.narrow ^= 1
	}
}

// bound applies the wrap policy: with bounds active, leaving [Min, Max]
// lands on the opposite bound; without bounds the value wraps at the
// storage width.
func (e *editor) bound(v int64, bits uint, signed bool) int64 {
	d := e.desc
	if d.Bounded() {
		if v > d.Max {
			return d.Min
		}
		if v < d.Min {
			return d.Max
		}
		return v
	}
	switch {
	case signed && bits == 16:
		return int64(int16(v))
	case signed && bits == 32:
		return int64(int32(v))
	case bits == 8:
		return int64(uint8(v))
	case bits == 16:
		return int64(uint16(v))
	}
	return int64(uint32(v))
}

func (e *editor) stepFloat(dir int) float32 {
	d := e.desc
	scale := math.Pow10(d.Kind.Precision())
	v := float64(e.real) + float64(dir)*d.Kind.Step()
	v = math.Round(v*scale) / scale
	if d.Bounded() {
		if v > float64(d.Max) {
			v = float64(d.Min)
		} else if v < float64(d.Min) {
			v = float64(d.Max)
		}
	}
	return float32(v)
}

// raw encodes the temporary as the bit pattern the cell will hold.
func (e *editor) raw() uint32 {
	d := e.desc
	switch d.Kind {
	case menu.Byte:
		return uint32(e.narrow)
	case menu.Int, menu.UInt:
		return uint32(uint16(e.wide))
	case menu.Long, menu.ULong:
		return uint32(e.wide)
	case menu.Float, menu.Float10, menu.Float100, menu.Float1000:
		return math.Float32bits(e.real)
	case menu.Select:
		cell, _ := d.Storage.(menu.SelectCell)
		if int(e.narrow) < len(cell.Options) {
			return uint32(cell.Options[e.narrow].Value)
		}
		return d.Raw()
	case menu.BitFlag:
		cell, _ := d.Storage.(menu.FlagCell)
		current := uint8(d.Raw())
		mask := uint8(1) << cell.Bit
		if e.narrow != 0 {
			return uint32(current | mask)
		}
		return uint32(current &^ mask)
	}
	return 0
}

// commit writes the temporary into storage and returns the write record.
// Select targets receive the chosen option's value; flags touch one bit.
func (e *editor) commit(node menu.NodeID) Write {
	d := e.desc
	raw := e.raw()
	d.SetRaw(raw)
	e.desc = nil
	return Write{Node: node, Key: d.Key, Kind: d.Kind, Width: d.Width(), Raw: raw}
}

func (e *editor) abort() {
	e.desc = nil
}

func wrapIndex(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
