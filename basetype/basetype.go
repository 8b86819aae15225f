// Package basetype holds the FIT base-type table and the FIT CRC-16
// checksum. Both are pure, read-only, shared data: no mutable state, no
// per-decode allocation.
package basetype

import "github.com/arvidsund/fitproto/errs"

// BaseType describes one FIT primitive wire type: its wire width, whether
// it carries endianness, and the sentinel value used to mark a field as
// absent ("undef").
type BaseType struct {
	Number   int
	Name     string
	Width    int // bytes per scalar element; for String, bytes per char (1)
	Endian   bool
	IsString bool
	IsZType  bool // "z" types: undef sentinel is zero, not all-ones
	IsSigned bool // sintN: undef sentinel is the max positive value, not all-ones
}

// Numbered constants for the base types this codec resolves by number.
const (
	Enum    = 0
	Sint8   = 1
	Uint8   = 2
	Sint16  = 3
	Uint16  = 4
	Sint32  = 5
	Uint32  = 6
	String  = 7
	Float32 = 8
	Float64 = 9
	Uint8z  = 10
	Uint16z = 11
	Uint32z = 12
	Byte    = 13
	Sint64  = 14
	Uint64  = 15
	Uint64z = 16
)

var table = map[int]BaseType{
	Enum:    {Number: Enum, Name: "enum", Width: 1},
	Sint8:   {Number: Sint8, Name: "sint8", Width: 1, IsSigned: true},
	Uint8:   {Number: Uint8, Name: "uint8", Width: 1},
	Sint16:  {Number: Sint16, Name: "sint16", Width: 2, Endian: true, IsSigned: true},
	Uint16:  {Number: Uint16, Name: "uint16", Width: 2, Endian: true},
	Sint32:  {Number: Sint32, Name: "sint32", Width: 4, Endian: true, IsSigned: true},
	Uint32:  {Number: Uint32, Name: "uint32", Width: 4, Endian: true},
	String:  {Number: String, Name: "string", Width: 1, IsString: true},
	Float32: {Number: Float32, Name: "float32", Width: 4, Endian: true},
	Float64: {Number: Float64, Name: "float64", Width: 8, Endian: true},
	Uint8z:  {Number: Uint8z, Name: "uint8z", Width: 1, IsZType: true},
	Uint16z: {Number: Uint16z, Name: "uint16z", Width: 2, Endian: true, IsZType: true},
	Uint32z: {Number: Uint32z, Name: "uint32z", Width: 4, Endian: true, IsZType: true},
	Byte:    {Number: Byte, Name: "byte", Width: 1},
	Sint64:  {Number: Sint64, Name: "sint64", Width: 8, Endian: true, IsSigned: true},
	Uint64:  {Number: Uint64, Name: "uint64", Width: 8, Endian: true},
	Uint64z: {Number: Uint64z, Name: "uint64z", Width: 8, Endian: true, IsZType: true},
}

// Lookup resolves a wire base_type_number to its BaseType. The bool is
// false when the number is unknown to the table (caller should surface
// errs.UnknownBaseType as a warning and fall back to raw-byte decoding).
func Lookup(number int) (BaseType, bool) {
	bt, ok := table[number]
	return bt, ok
}

// LookupByName resolves a profile type_name (e.g. "uint16", "uint32z")
// to its BaseType, for the encoder's from-scratch builder which starts
// from profile field metadata rather than a wire base_type_number.
func LookupByName(name string) (BaseType, bool) {
	for _, bt := range table {
		if bt.Name == name {
			return bt, true
		}
	}

	return BaseType{}, false
}

// MustLookup resolves a base_type_number the caller already knows is
// valid (e.g. a synthesized type for an undocumented field built from the
// same number a definition record just supplied).
func MustLookup(number int) BaseType {
	bt, ok := Lookup(number)
	if !ok {
		panic(&errs.UnknownBaseType{Number: number})
	}

	return bt
}

// UndefUint returns the unsigned undef sentinel for integer base types
// (enum, uintN, uintNz, byte, sintN reinterpreted as its bit pattern).
// String types have no numeric sentinel; callers must check IsString
// first.
func (b BaseType) UndefUint() uint64 {
	if b.IsZType {
		return 0
	}

	allOnes := func(width int) uint64 {
		switch width {
		case 1:
			return 0xFF
		case 2:
			return 0xFFFF
		case 4:
			return 0xFFFFFFFF
		case 8:
			return 0xFFFFFFFFFFFFFFFF
		default:
			return 0
		}
	}

	if b.IsSigned {
		// Max positive value: all-ones with the sign bit cleared.
		return allOnes(b.Width) >> 1
	}

	return allOnes(b.Width)
}
