package menu

import "math"

// ValueKind selects how a leaf value is edited and stored.
type ValueKind uint8

const (
	Byte ValueKind = iota
	Int
	UInt
	Long
	ULong
	Float
	Float10
	Float100
	Float1000
	Select
	BitFlag
)

var valueKindNames = [...]string{
	Byte:      "byte",
	Int:       "int",
	UInt:      "uint",
	Long:      "long",
	ULong:     "ulong",
	Float:     "float",
	Float10:   "float10",
	Float100:  "float100",
	Float1000: "float1000",
	Select:    "select",
	BitFlag:   "flag",
}

func (k ValueKind) String() string {
	if int(k) < len(valueKindNames) {
		return valueKindNames[k]
	}
	return "unknown"
}

// ParseValueKind resolves the lowercase name produced by String.
func ParseValueKind(name string) (ValueKind, bool) {
	for i, n := range valueKindNames {
		if n == name {
			return ValueKind(i), true
		}
	}
	return 0, false
}

// IsFloat reports whether k is one of the float kinds.
func (k ValueKind) IsFloat() bool {
	return k >= Float && k <= Float1000
}

// Step is one increment unit for scalar kinds.
func (k ValueKind) Step() float64 {
	switch k {
	case Float10:
		return 0.1
	case Float100:
		return 0.01
	case Float1000:
		return 0.001
	}
	return 1
}

// Precision is the number of fractional digits shown for float kinds.
func (k ValueKind) Precision() int {
	switch k {
	case Float100:
		return 2
	case Float1000:
		return 3
	case Float, Float10:
		return 1
	}
	return 0
}

// Range reports the values an integer kind's storage can hold. Other kinds
// report ok false.
func (k ValueKind) Range() (lo, hi int64, ok bool) {
	switch k {
	case Byte:
		return 0, math.MaxUint8, true
	case Int:
		return math.MinInt16, math.MaxInt16, true
	case UInt:
		return 0, math.MaxUint16, true
	case Long:
		return math.MinInt32, math.MaxInt32, true
	case ULong:
		return 0, math.MaxUint32, true
	}
	return 0, 0, false
}

// Width is the storage size of a value in bytes.
type Width uint8

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
)

// Option is one labeled entry of a select list.
type Option struct {
	Label string
	Value uint8
}

// Storage is the mutable cell behind a descriptor. The set of
// implementations is closed.
type Storage interface {
	width() Width
	raw() uint32
	setRaw(uint32)
}

type ByteCell struct{ Ptr *uint8 }
type IntCell struct{ Ptr *int16 }
type UIntCell struct{ Ptr *uint16 }
type LongCell struct{ Ptr *int32 }
type ULongCell struct{ Ptr *uint32 }
type FloatCell struct{ Ptr *float32 }

// SelectCell holds a fixed option list and the byte receiving the chosen value.
type SelectCell struct {
	Options []Option
	Target  *uint8
}

// FlagCell addresses a single bit of a byte.
type FlagCell struct {
	Target *uint8
	Bit    uint8
}

func (ByteCell) width() Width   { return Width8 }
func (IntCell) width() Width    { return Width16 }
func (UIntCell) width() Width   { return Width16 }
func (LongCell) width() Width   { return Width32 }
func (ULongCell) width() Width  { return Width32 }
func (FloatCell) width() Width  { return Width32 }
func (SelectCell) width() Width { return Width8 }
func (FlagCell) width() Width   { return Width8 }

func (c ByteCell) raw() uint32 {
	if c.Ptr == nil {
		return 0
	}
	return uint32(*c.Ptr)
}

func (c IntCell) raw() uint32 {
	if c.Ptr == nil {
		return 0
	}
	return uint32(uint16(*c.Ptr))
}

func (c UIntCell) raw() uint32 {
	if c.Ptr == nil {
		return 0
	}
	return uint32(*c.Ptr)
}

func (c LongCell) raw() uint32 {
	if c.Ptr == nil {
		return 0
	}
	return uint32(*c.Ptr)
}

func (c ULongCell) raw() uint32 {
	if c.Ptr == nil {
		return 0
	}
	return *c.Ptr
}

func (c FloatCell) raw() uint32 {
	if c.Ptr == nil {
		return 0
	}
	return math.Float32bits(*c.Ptr)
}

func (c SelectCell) raw() uint32 {
	if c.Target == nil {
		return 0
	}
	return uint32(*c.Target)
}

func (c FlagCell) raw() uint32 {
	if c.Target == nil {
		return 0
	}
	return uint32(*c.Target)
}

func (c ByteCell) setRaw(v uint32) {
	if c.Ptr != nil {
		*c.Ptr = uint8(v)
	}
}

func (c IntCell) setRaw(v uint32) {
	if c.Ptr != nil {
		*c.Ptr = int16(uint16(v))
	}
}

func (c UIntCell) setRaw(v uint32) {
	if c.Ptr != nil {
		*c.Ptr = uint16(v)
	}
}

func (c LongCell) setRaw(v uint32) {
	if c.Ptr != nil {
		*c.Ptr = int32(v)
	}
}

func (c ULongCell) setRaw(v uint32) {
	if c.Ptr != nil {
		*c.Ptr = v
	}
}

func (c FloatCell) setRaw(v uint32) {
	if c.Ptr != nil {
		*c.Ptr = math.Float32frombits(v)
	}
}

func (c SelectCell) setRaw(v uint32) {
	if c.Target != nil {
		*c.Target = uint8(v)
	}
}

func (c FlagCell) setRaw(v uint32) {
	if c.Target != nil {
		*c.Target = uint8(v)
	}
}

// Descriptor describes an editable value: its kind, optional bounds, the
// persistence key and the storage cell.
type Descriptor struct {
	Kind ValueKind
	// Min and Max bound scalar edits. Both zero disables bound checks.
	Min, Max int64
	Key      string
	Storage  Storage
}

// Bounded reports whether edits are checked against Min and Max.
func (d Descriptor) Bounded() bool {
	return d.Min != 0 || d.Max != 0
}

// Width reports the byte width of the underlying storage.
func (d Descriptor) Width() Width {
	if d.Storage == nil {
		return 0
	}
	return d.Storage.width()
}

// Raw returns the little-endian bit pattern currently held by the cell.
func (d Descriptor) Raw() uint32 {
	if d.Storage == nil {
		return 0
	}
	return d.Storage.raw()
}

// SetRaw stores a bit pattern produced by Raw back into the cell. Stores
// use it to restore persisted values.
func (d Descriptor) SetRaw(v uint32) {
	if d.Storage == nil {
		return
	}
	d.Storage.setRaw(v)
}

// ByteValue builds an unsigned 8-bit descriptor.
func ByteValue(key string, ptr *uint8, min, max int64) Descriptor {
	return Descriptor{Kind: Byte, Key: key, Min: min, Max: max, Storage: ByteCell{Ptr: ptr}}
}

// IntValue builds a signed 16-bit descriptor.
func IntValue(key string, ptr *int16, min, max int64) Descriptor {
	return Descriptor{Kind: Int, Key: key, Min: min, Max: max, Storage: IntCell{Ptr: ptr}}
}

// UIntValue builds an unsigned 16-bit descriptor.
func UIntValue(key string, ptr *uint16, min, max int64) Descriptor {
	return Descriptor{Kind: UInt, Key: key, Min: min, Max: max, Storage: UIntCell{Ptr: ptr}}
}

// LongValue builds a signed 32-bit descriptor.
func LongValue(key string, ptr *int32, min, max int64) Descriptor {
	return Descriptor{Kind: Long, Key: key, Min: min, Max: max, Storage: LongCell{Ptr: ptr}}
}

// ULongValue builds an unsigned 32-bit descriptor.
func ULongValue(key string, ptr *uint32, min, max int64) Descriptor {
	return Descriptor{Kind: ULong, Key: key, Min: min, Max: max, Storage: ULongCell{Ptr: ptr}}
}

// FloatValue builds a float descriptor; kind must be one of the float kinds.
func FloatValue(key string, kind ValueKind, ptr *float32, min, max int64) Descriptor {
	return Descriptor{Kind: kind, Key: key, Min: min, Max: max, Storage: FloatCell{Ptr: ptr}}
}

// SelectValue builds a select descriptor over a fixed option list.
func SelectValue(key string, target *uint8, options ...Option) Descriptor {
	return Descriptor{Kind: Select, Key: key, Storage: SelectCell{Options: options, Target: target}}
}

// FlagValue builds a descriptor toggling one bit of target.
func FlagValue(key string, target *uint8, bit uint8) Descriptor {
	return Descriptor{Kind: BitFlag, Key: key, Storage: FlagCell{Target: target, Bit: bit}}
}

func storageMatches(kind ValueKind, s Storage) bool {
	switch s.(type) {
	case ByteCell:
		return kind == Byte
	case IntCell:
		return kind == Int
	case UIntCell:
		return kind == UInt
	case LongCell:
		return kind == Long
	case ULongCell:
		return kind == ULong
	case FloatCell:
		return kind.IsFloat()
	case SelectCell:
		return kind == Select
	case FlagCell:
		return kind == BitFlag
	}
	return false
}
