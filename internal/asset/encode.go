package asset

import (
	"math"
	"strconv"

	"github.com/atomicstack/lcdmenu/internal/menu"
)

func encodeDefault(kind menu.ValueKind, v float64) uint32 {
	switch kind {
	case menu.Float, menu.Float10, menu.Float100, menu.Float1000:
		return math.Float32bits(float32(v))
	case menu.Int:
		return uint32(uint16(int16(v)))
	case menu.Long:
		return uint32(int32(v))
	}
	return uint32(int64(v))
}

// Format renders the current value of d the way a settings dump shows it.
func Format(d menu.Descriptor) string {
	raw := d.Raw()
	switch d.Kind {
	case menu.Int:
		return strconv.Itoa(int(int16(uint16(raw))))
	case menu.Long:
		return strconv.Itoa(int(int32(raw)))
	case menu.Float, menu.Float10, menu.Float100, menu.Float1000:
		return strconv.FormatFloat(float64(math.Float32frombits(raw)), 'f', d.Kind.Precision(), 32)
	case menu.Select:
		if cell, ok := d.Storage.(menu.SelectCell); ok {
			for _, o := range cell.Options {
				if uint32(o.Value) == raw {
					return o.Label
				}
			}
		}
		return "?" + strconv.FormatUint(uint64(raw), 10)
	case menu.BitFlag:
		if cell, ok := d.Storage.(menu.FlagCell); ok && raw&(1<<cell.Bit) != 0 {
			return "on"
		}
		return "off"
	}
	return strconv.FormatUint(uint64(raw), 10)
}
