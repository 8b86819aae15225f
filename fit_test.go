package fit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildEncodeDecodeRoundTrip(t *testing.T) {
	records := []Record{
		{MessageName: "file_id", LocalMessageType: 0, Fields: map[string]FieldInput{
			"type":          {Scalar: 4},
			"manufacturer":  {Scalar: 15},
			"product":       {Scalar: 1},
			"serial_number": {Scalar: 2147483647},
			"time_created":  {Scalar: 702940946},
		}},
	}

	reg, err := BuildFromScratch(records)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, reg))

	segments, err := Decode(buf.Bytes())
	require.NoError(t, err)
	require.Len(t, segments, 1)
	require.Len(t, segments[0].Records, 1)
	require.Equal(t, "file_id", segments[0].Records[0].MessageName)
	require.Equal(t, uint64(2147483647), segments[0].Records[0].Fields["serial_number"].Scalar)
}
