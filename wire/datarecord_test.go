package wire

import (
	"testing"

	"github.com/arvidsund/fitproto/endian"
	"github.com/arvidsund/fitproto/fitlog"
	"github.com/arvidsund/fitproto/profile"
	"github.com/stretchr/testify/require"
)

func TestDecodeDataRecord_Scenario5(t *testing.T) {
	def, _, err := DecodeDefinitionRecord(scenario5DefinitionBytes(), false)
	require.NoError(t, err)

	schema, err := def.BuildSchema(profile.Static(), fitlog.Discard)
	require.NoError(t, err)

	data := []byte{0x7F, 0xFF, 0xFF, 0xFF, 0x29, 0xE6, 0x07, 0x12, 0x00, 0x0F, 0x00, 0x01, 0x04}

	values, n, err := DecodeDataRecord(data, schema)
	require.NoError(t, err)
	require.Equal(t, len(data), n)

	require.Equal(t, uint64(2147483647), values["serial_number"].Scalar)
	require.Equal(t, uint64(702940946), values["time_created"].Scalar)
	require.Equal(t, uint64(15), values["manufacturer"].Scalar)
	require.Equal(t, uint64(1), values["product"].Scalar)
	require.Equal(t, uint64(4), values["type"].Scalar)
}

func TestDataRecord_StringPadding_Scenario7(t *testing.T) {
	engine := endian.LittleEndian()
	schema := Schema{
		MessageName: "file_creator",
		Engine:      engine,
		Fields: []ResolvedField{
			{Definition: 2, Name: "undocumented_field_2", Shape: FieldShape{Kind: ShapeString, Length: 8}},
		},
	}

	cases := []struct {
		value string
		want  string
	}{
		{"Foo", "Foo\x00\x00\x00\x00\x00"},
		{"Bar Baz", "Bar Baz\x00"},
		{"", "\x00\x00\x00\x00\x00\x00\x00\x00"},
	}

	for _, c := range cases {
		encoded := EncodeDataRecord(schema, map[string]FieldValue{
			"undocumented_field_2": {Shape: schema.Fields[0].Shape, String: c.value},
		}, nil)
		require.Len(t, encoded, 8)

		decoded, n, err := DecodeDataRecord(encoded, schema)
		require.NoError(t, err)
		require.Equal(t, 8, n)
		require.Equal(t, c.want, decoded["undocumented_field_2"].String)
	}
}
