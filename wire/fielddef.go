package wire

import (
	"fmt"

	"github.com/arvidsund/fitproto/basetype"
	"github.com/arvidsund/fitproto/errs"
	"github.com/arvidsund/fitproto/fitlog"
	"github.com/arvidsund/fitproto/profile"
)

// ShapeKind tags a resolved field's wire shape (spec §4.4 / design notes
// §9: model field kinds as a tagged variant, branch once per field).
type ShapeKind uint8

const (
	ShapeScalar ShapeKind = iota
	ShapeArray
	ShapeString
)

// FieldShape is the per-record struct shape computed from one
// FieldDefEntry: what to read/write, and how many times.
type FieldShape struct {
	Kind   ShapeKind
	Base   basetype.BaseType
	Length int // array element count (ShapeArray); byte length (ShapeString); 1 otherwise
}

// ResolvedField pairs a FieldShape with the schema-level field name the
// profile catalog (or undocumented-field synthesis) assigned it.
type ResolvedField struct {
	Definition int // field_definition_number
	Name       string
	Shape      FieldShape
}

// FieldDefEntry is the three-byte, on-the-wire declaration of one field
// inside a definition record (spec §3 FieldDefEntry).
type FieldDefEntry struct {
	FieldDefinitionNumber uint8
	ByteCount             uint8
	EndianAbility         bool
	BaseTypeNumber        uint8
}

// DecodeFieldDefEntry decodes the 3-byte entry at the front of data.
func DecodeFieldDefEntry(data []byte) (FieldDefEntry, error) {
	if len(data) < 3 {
		return FieldDefEntry{}, errs.Io(errShortRead, "reading field definition entry")
	}

	packed := data[2]

	return FieldDefEntry{
		FieldDefinitionNumber: data[0],
		ByteCount:             data[1],
		EndianAbility:         packed&0x80 != 0,
		BaseTypeNumber:        packed & 0x1F,
	}, nil
}

// Encode writes the 3-byte wire form.
func (e FieldDefEntry) Encode() []byte {
	packed := e.BaseTypeNumber & 0x1F
	if e.EndianAbility {
		packed |= 0x80
	}

	return []byte{e.FieldDefinitionNumber, e.ByteCount, packed}
}

// Resolve computes the ResolvedField for this entry within msg's
// definition, per spec §4.4: look up the profile field by number; if
// missing, synthesize an undocumented_field_<n> name. An unknown
// base_type_number is logged as a warning and decoded as a raw byte
// array, per errs.UnknownBaseType being non-fatal.
func (e FieldDefEntry) Resolve(msg profile.Message, log fitlog.Logger) (ResolvedField, error) {
	base, ok := basetype.Lookup(int(e.BaseTypeNumber))
	if !ok {
		log.Warnf("unknown base type number %d for field %d of message %q", e.BaseTypeNumber, e.FieldDefinitionNumber, msg.Name)
		base = basetype.BaseType{Number: int(e.BaseTypeNumber), Name: "raw", Width: 1}
	}

	name := fmt.Sprintf("undocumented_field_%d", e.FieldDefinitionNumber)
	if field, ok := msg.FieldByNumber(int(e.FieldDefinitionNumber)); ok {
		name = field.Name
	} else {
		log.Warnf("unresolved field number %d in message %q", e.FieldDefinitionNumber, msg.Name)
	}

	shape, err := e.shape(base)
	if err != nil {
		return ResolvedField{}, err
	}

	return ResolvedField{Definition: int(e.FieldDefinitionNumber), Name: name, Shape: shape}, nil
}

// shape computes the per-record struct shape per spec §4.4.
func (e FieldDefEntry) shape(base basetype.BaseType) (FieldShape, error) {
	byteCount := int(e.ByteCount)

	if base.IsString {
		return FieldShape{Kind: ShapeString, Base: base, Length: byteCount}, nil
	}

	if base.Width <= 0 {
		return FieldShape{Kind: ShapeScalar, Base: base, Length: 1}, nil
	}

	if byteCount == base.Width {
		return FieldShape{Kind: ShapeScalar, Base: base, Length: 1}, nil
	}

	if byteCount > base.Width && byteCount%base.Width == 0 {
		return FieldShape{Kind: ShapeArray, Base: base, Length: byteCount / base.Width}, nil
	}

	return FieldShape{}, &errs.InvalidFieldWidth{Field: base.Name, ByteCount: byteCount, BaseWidth: base.Width}
}
