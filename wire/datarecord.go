package wire

import (
	"github.com/arvidsund/fitproto/errs"
)

// FieldValue is one decoded field's value: either a single uint64-encoded
// scalar (Scalar), a slice of such scalars (Array), or a string.
//
// Integers are carried as uint64 regardless of the underlying base type's
// signedness or width; callers reinterpret per Shape.Base when they need
// the narrower Go type. This mirrors the spec's "raw decoded values only"
// scope (§1): the core never scales, signs, or otherwise interprets a
// value beyond its wire representation.
type FieldValue struct {
	Shape  FieldShape
	Scalar uint64
	Array  []uint64
	String string
}

// DecodeDataRecord reads one data record's payload from data according to
// schema, in field-declaration order, using the schema's endianness
// (spec §4.6).
//
// Returns the decoded field values keyed by ResolvedField.Name and the
// number of bytes consumed.
func DecodeDataRecord(data []byte, schema Schema) (map[string]FieldValue, int, error) {
	values := make(map[string]FieldValue, len(schema.Fields))
	pos := 0

	for _, f := range schema.Fields {
		shape := f.Shape

		switch shape.Kind {
		case ShapeString:
			if len(data) < pos+shape.Length {
				return nil, 0, errs.Io(errShortRead, "reading string field")
			}

			raw := data[pos : pos+shape.Length]
			values[f.Name] = FieldValue{Shape: shape, String: string(raw)}
			pos += shape.Length

		case ShapeArray:
			elems := make([]uint64, shape.Length)
			for i := 0; i < shape.Length; i++ {
				if len(data) < pos+shape.Base.Width {
					return nil, 0, errs.Io(errShortRead, "reading array field element")
				}

				elems[i] = readUint(schema.Engine, data[pos:pos+shape.Base.Width], shape.Base.Width)
				pos += shape.Base.Width
			}
			values[f.Name] = FieldValue{Shape: shape, Array: elems}

		default: // ShapeScalar
			if len(data) < pos+shape.Base.Width {
				return nil, 0, errs.Io(errShortRead, "reading scalar field")
			}

			values[f.Name] = FieldValue{Shape: shape, Scalar: readUint(schema.Engine, data[pos:pos+shape.Base.Width], shape.Base.Width)}
			pos += shape.Base.Width
		}
	}

	return values, pos, nil
}

// EncodeDataRecord writes values in schema's field order. Any field the
// schema declares but values omits, or that a non-nil provided map does
// not mark true, is written as its base type's undef sentinel, per spec
// §4.6; a nil provided treats every entry of values as supplied. An
// array value whose length differs from the shape's is also written as
// undef sentinels; array length always comes from the schema's shape.
func EncodeDataRecord(schema Schema, values map[string]FieldValue, provided map[string]bool) []byte {
	var out []byte

	for _, f := range schema.Fields {
		shape := f.Shape
		v, has := values[f.Name]
		isProvided := provided == nil || provided[f.Name]

		switch shape.Kind {
		case ShapeString:
			if has && isProvided {
				out = append(out, padString(v.String, shape.Length)...)
			} else {
				out = append(out, make([]byte, shape.Length)...) // all-NUL
			}

		case ShapeArray:
			if has && isProvided && len(v.Array) == shape.Length {
				for _, e := range v.Array {
					out = append(out, writeUint(schema.Engine, e, shape.Base.Width)...)
				}
			} else {
				undef := shape.Base.UndefUint()
				for i := 0; i < shape.Length; i++ {
					out = append(out, writeUint(schema.Engine, undef, shape.Base.Width)...)
				}
			}

		default: // ShapeScalar
			if has && isProvided {
				out = append(out, writeUint(schema.Engine, v.Scalar, shape.Base.Width)...)
			} else {
				out = append(out, writeUint(schema.Engine, shape.Base.UndefUint(), shape.Base.Width)...)
			}
		}
	}

	return out
}

func readUint(engine interface {
	Uint16([]byte) uint16
	Uint32([]byte) uint32
	Uint64([]byte) uint64
}, data []byte, width int) uint64 {
	switch width {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(engine.Uint16(data))
	case 4:
		return uint64(engine.Uint32(data))
	case 8:
		return engine.Uint64(data)
	default:
		return 0
	}
}

func writeUint(engine interface {
	PutUint16([]byte, uint16)
	PutUint32([]byte, uint32)
	PutUint64([]byte, uint64)
}, v uint64, width int) []byte {
	buf := make([]byte, width)
	switch width {
	case 1:
		buf[0] = byte(v)
	case 2:
		engine.PutUint16(buf, uint16(v))
	case 4:
		engine.PutUint32(buf, uint32(v))
	case 8:
		engine.PutUint64(buf, v)
	}

	return buf
}

func padString(s string, width int) []byte {
	buf := make([]byte, width)
	copy(buf, s)

	return buf
}
