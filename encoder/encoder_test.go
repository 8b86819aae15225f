package encoder

import (
	"bytes"
	"testing"

	"github.com/arvidsund/fitproto/basetype"
	"github.com/arvidsund/fitproto/decoder"
	"github.com/arvidsund/fitproto/fitlog"
	"github.com/arvidsund/fitproto/profile"
	"github.com/stretchr/testify/require"
)

func TestWrite_HeaderOnlyRoundTrip(t *testing.T) {
	reg, err := BuildFromScratch(profile.Static(), fitlog.Discard, nil)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, reg))

	dec, err := decoder.New(out.Bytes())
	require.NoError(t, err)

	segments, err := dec.Decode()
	require.NoError(t, err)
	require.Len(t, segments, 1)
	require.Equal(t, uint32(0), segments[0].Header.DataSize)
	require.Equal(t, uint16(0xD594), segments[0].Header.CRC)
	require.Empty(t, segments[0].Records)
}

func TestBuildFromScratch_UndefAndInferredArrayLength_Scenario6(t *testing.T) {
	records := []Record{
		{
			MessageName:      "device_info",
			LocalMessageType: 0,
			Fields: map[string]FieldInput{
				"undocumented_field_29": {Array: []uint64{0, 1, 2, 3, 4, 5}},
				"serial_number":         {Scalar: 123456},
				"manufacturer":          {Scalar: 15},
			},
		},
		{
			MessageName:      "device_info",
			LocalMessageType: 0,
			Fields: map[string]FieldInput{
				"undocumented_field_29": {Array: []uint64{5, 4, 3, 2, 1, 0}},
			},
		},
		{
			MessageName:      "device_info",
			LocalMessageType: 0,
			Fields:           map[string]FieldInput{},
		},
	}

	reg, err := BuildFromScratch(profile.Static(), fitlog.Discard, records)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, reg))

	dec, err := decoder.New(out.Bytes())
	require.NoError(t, err)

	segments, err := dec.Decode()
	require.NoError(t, err)
	require.Len(t, segments, 1)
	require.Len(t, segments[0].Records, 3)

	third := segments[0].Records[2]
	require.Equal(t, []uint64{255, 255, 255, 255, 255, 255}, third.Fields["undocumented_field_29"].Array)
	require.Equal(t, uint64(0), third.Fields["serial_number"].Scalar)
	require.Equal(t, uint64(65535), third.Fields["manufacturer"].Scalar)
}

func TestBuildFromScratch_StringPadding_Scenario7(t *testing.T) {
	stringType := uint8(basetype.String)
	records := []Record{
		{MessageName: "file_creator", LocalMessageType: 1, Fields: map[string]FieldInput{"undocumented_field_2": {String: "Foo", BaseTypeNumber: &stringType}}},
		{MessageName: "file_creator", LocalMessageType: 1, Fields: map[string]FieldInput{"undocumented_field_2": {String: "Bar Baz", BaseTypeNumber: &stringType}}},
		{MessageName: "file_creator", LocalMessageType: 1, Fields: map[string]FieldInput{"undocumented_field_2": {String: "", BaseTypeNumber: &stringType}}},
	}

	reg, err := BuildFromScratch(profile.Static(), fitlog.Discard, records)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, reg))

	dec, err := decoder.New(out.Bytes())
	require.NoError(t, err)

	segments, err := dec.Decode()
	require.NoError(t, err)
	require.Len(t, segments[0].Records, 3)

	require.Equal(t, "Foo\x00\x00\x00\x00\x00", segments[0].Records[0].Fields["undocumented_field_2"].String)
	require.Equal(t, "Bar Baz\x00", segments[0].Records[1].Fields["undocumented_field_2"].String)
	require.Equal(t, "\x00\x00\x00\x00\x00\x00\x00\x00", segments[0].Records[2].Fields["undocumented_field_2"].String)
}

func TestBuildFromScratch_LocalSlotRebindAcrossMessageNames(t *testing.T) {
	records := []Record{
		{MessageName: "file_id", LocalMessageType: 0, Fields: map[string]FieldInput{
			"serial_number": {Scalar: 111},
		}},
		{MessageName: "record", LocalMessageType: 0, Fields: map[string]FieldInput{
			"heart_rate": {Scalar: 150},
		}},
		{MessageName: "file_id", LocalMessageType: 0, Fields: map[string]FieldInput{
			"serial_number": {Scalar: 222},
		}},
	}

	reg, err := BuildFromScratch(profile.Static(), fitlog.Discard, records)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Write(&out, reg))

	dec, err := decoder.New(out.Bytes())
	require.NoError(t, err)

	segments, err := dec.Decode()
	require.NoError(t, err)
	require.Len(t, segments[0].Records, 3)

	require.Equal(t, "file_id", segments[0].Records[0].MessageName)
	require.Equal(t, uint64(111), segments[0].Records[0].Fields["serial_number"].Scalar)

	require.Equal(t, "record", segments[0].Records[1].MessageName)
	require.Equal(t, uint64(150), segments[0].Records[1].Fields["heart_rate"].Scalar)

	require.Equal(t, "file_id", segments[0].Records[2].MessageName)
	require.Equal(t, uint64(222), segments[0].Records[2].Fields["serial_number"].Scalar)
}

func TestBuildFromTemplate_StructurePreserving(t *testing.T) {
	original := []Record{
		{MessageName: "file_id", LocalMessageType: 0, Fields: map[string]FieldInput{
			"type":          {Scalar: 4},
			"manufacturer":  {Scalar: 15},
			"product":       {Scalar: 1},
			"serial_number": {Scalar: 2147483647},
			"time_created":  {Scalar: 702940946},
		}},
	}

	reg, err := BuildFromScratch(profile.Static(), fitlog.Discard, original)
	require.NoError(t, err)

	var templateFile bytes.Buffer
	require.NoError(t, Write(&templateFile, reg))

	templateRecords := []Record{
		{MessageName: "file_id", LocalMessageType: 0, Fields: map[string]FieldInput{
			"type":          {Scalar: 4},
			"manufacturer":  {Scalar: 99},
			"product":       {Scalar: 2},
			"serial_number": {Scalar: 1},
			"time_created":  {Scalar: 2},
		}},
	}

	fromTemplate, err := BuildFromTemplate(profile.Static(), fitlog.Discard, templateFile.Bytes(), templateRecords)
	require.NoError(t, err)

	var rebuilt bytes.Buffer
	require.NoError(t, Write(&rebuilt, fromTemplate))

	dec, err := decoder.New(templateFile.Bytes())
	require.NoError(t, err)
	originalSegments, err := dec.Decode()
	require.NoError(t, err)

	dec2, err := decoder.New(rebuilt.Bytes())
	require.NoError(t, err)
	rebuiltSegments, err := dec2.Decode()
	require.NoError(t, err)

	require.Equal(t, originalSegments[0].Definitions()[0].Definition.Encode(), rebuiltSegments[0].Definitions()[0].Definition.Encode())
	require.Equal(t, uint64(99), rebuiltSegments[0].Records[0].Fields["manufacturer"].Scalar)
}
