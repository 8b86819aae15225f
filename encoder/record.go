// Package encoder implements the registry builders (from scratch, from a
// template) and the stream driver that serialize a Registry back to FIT
// wire form (spec §4.9-4.12).
package encoder

// FieldInput is one field value a caller supplies for a Record. Only one
// of Scalar, Array, or String is meaningful, matching the FieldShape the
// resolved definition eventually assigns the field.
type FieldInput struct {
	Scalar uint64
	Array  []uint64
	String string

	// BaseTypeNumber overrides the base type used to build the
	// definition for this field when the field isn't in the profile
	// catalog (an undocumented_field_<n>). Ignored for fields the
	// catalog already knows. Defaults to basetype.Enum when unset.
	BaseTypeNumber *uint8
}

// Record is one user-supplied record to encode: a message by name, the
// local message slot it should occupy, and its field values by name. A
// field absent from Fields is written as its base type's undef sentinel
// (spec §4.6, §4.12).
type Record struct {
	MessageName      string
	LocalMessageType uint8
	Fields           map[string]FieldInput
}
