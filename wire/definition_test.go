package wire

import (
	"testing"

	"github.com/arvidsund/fitproto/fitlog"
	"github.com/arvidsund/fitproto/profile"
	"github.com/stretchr/testify/require"
)

// bytes from spec §8 scenario 5.
func scenario5DefinitionBytes() []byte {
	return []byte{
		0x00,       // reserved
		0x01,       // architecture: big-endian
		0x00, 0x00, // global_message_number: 0 (file_id), big-endian
		0x05,                   // field_count
		0x03, 0x04, 0x8C, // field 3: byte_count 4, base uint32z
		0x04, 0x04, 0x86, // field 4: byte_count 4, base uint32
		0x01, 0x02, 0x84, // field 1: byte_count 2, base uint16
		0x02, 0x02, 0x84, // field 2: byte_count 2, base uint16
		0x00, 0x01, 0x00, // field 0: byte_count 1, base enum
	}
}

func TestDecodeDefinitionRecord_Scenario5(t *testing.T) {
	def, n, err := DecodeDefinitionRecord(scenario5DefinitionBytes(), false)
	require.NoError(t, err)
	require.Equal(t, 20, n)
	require.Equal(t, uint8(1), def.Architecture)
	require.Equal(t, uint16(0), def.GlobalMessageNumber)
	require.Len(t, def.Fields, 5)

	wantEntries := []FieldDefEntry{
		{FieldDefinitionNumber: 3, ByteCount: 4, EndianAbility: true, BaseTypeNumber: 12},
		{FieldDefinitionNumber: 4, ByteCount: 4, EndianAbility: true, BaseTypeNumber: 6},
		{FieldDefinitionNumber: 1, ByteCount: 2, EndianAbility: true, BaseTypeNumber: 4},
		{FieldDefinitionNumber: 2, ByteCount: 2, EndianAbility: true, BaseTypeNumber: 4},
		{FieldDefinitionNumber: 0, ByteCount: 1, EndianAbility: false, BaseTypeNumber: 0},
	}
	require.Equal(t, wantEntries, def.Fields)
}

func TestDefinitionRecord_BuildSchema_Scenario5(t *testing.T) {
	def, _, err := DecodeDefinitionRecord(scenario5DefinitionBytes(), false)
	require.NoError(t, err)

	schema, err := def.BuildSchema(profile.Static(), fitlog.Discard)
	require.NoError(t, err)
	require.Equal(t, "file_id", schema.MessageName)
	require.Len(t, schema.Fields, 5)

	require.Equal(t, "serial_number", schema.Fields[0].Name)
	require.Equal(t, ShapeScalar, schema.Fields[0].Shape.Kind)
	require.Equal(t, "time_created", schema.Fields[1].Name)
	require.Equal(t, "manufacturer", schema.Fields[2].Name)
	require.Equal(t, "product", schema.Fields[3].Name)
	require.Equal(t, "type", schema.Fields[4].Name)
}

func TestDefinitionRecord_InvalidArchitecture(t *testing.T) {
	data := scenario5DefinitionBytes()
	data[1] = 0x02

	_, _, err := DecodeDefinitionRecord(data, false)
	require.Error(t, err)
}

func TestDefinitionRecord_DeveloperFieldsRejectedWhenNonzero(t *testing.T) {
	data := append(scenario5DefinitionBytes(), 0x01) // developer field count = 1

	_, _, err := DecodeDefinitionRecord(data, true)
	require.Error(t, err)
}

func TestDefinitionRecord_DeveloperFieldsToleratedWhenZero(t *testing.T) {
	data := append(scenario5DefinitionBytes(), 0x00)

	def, n, err := DecodeDefinitionRecord(data, true)
	require.NoError(t, err)
	require.True(t, def.HasDeveloperSection)
	require.Equal(t, len(data), n)
}

func TestDefinitionRecord_EncodeRoundTrip(t *testing.T) {
	def, _, err := DecodeDefinitionRecord(scenario5DefinitionBytes(), false)
	require.NoError(t, err)

	require.Equal(t, scenario5DefinitionBytes(), def.Encode())
}

func TestDefinitionRecord_UnknownGlobalMessage(t *testing.T) {
	data := scenario5DefinitionBytes()
	data[2], data[3] = 0xFF, 0xFE // global message number 65534, unknown

	def, _, err := DecodeDefinitionRecord(data, false)
	require.NoError(t, err)

	_, err = def.BuildSchema(profile.Static(), fitlog.Discard)
	require.Error(t, err)
}
