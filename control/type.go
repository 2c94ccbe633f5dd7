package control

// Type is a control block type. A byte b is of type t when the bits outside
// of t.Mask equal t.Prefix; the masked bits carry data or size.
type Type struct {
	Prefix byte
	Mask   byte
	Abbr   string
}

// Match reports whether b starts a block of type t.
func (t Type) Match(b byte) bool {
	return b&^t.Mask == t.Prefix
}

// String returns the abbreviated name of the type, "?" for Unknown.
func (t Type) String() string {
	if t.Abbr == "" {
		return "?"
	}

	return t.Abbr
}

type types []Type

// Match returns the first type in ts matching b.
func (ts types) Match(b byte) (Type, bool) {
	for _, t := range ts {
		if t.Match(b) {
			return t, true
		}
	}

	return Unknown, false
}

// Block types, most data-dense first.
var (
	Unknown = Type{}

	Data         = Type{Prefix: 0b_1000_0000, Mask: 0b_0111_1111, Abbr: "d"}
	DataSize     = Type{Prefix: 0b_0100_0000, Mask: 0b_0011_1111, Abbr: "dz"}
	Data1        = Type{Prefix: 0b_0010_0000, Mask: 0b_0001_1111, Abbr: "d1"}
	Data2        = Type{Prefix: 0b_0001_0000, Mask: 0b_0000_1111, Abbr: "d2"}
	DataSizeSize = Type{Prefix: 0b_0000_1000, Mask: 0b_0000_0111, Abbr: "dzz"}
	Null         = Type{Prefix: 0b_0000_0000, Mask: 0b_0000_0000, Abbr: "n"}

	// Types lists every block type in matching order.
	Types = types{Data, DataSize, Data1, Data2, DataSizeSize, Null}
)
