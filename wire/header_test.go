package wire

import (
	"testing"

	"github.com/arvidsund/fitproto/errs"
	"github.com/stretchr/testify/require"
)

func TestDecodeHeader_UnsupportedHeader(t *testing.T) {
	input := []byte("\xDA\x10-\b\xEB\x16\x00\x00.FIT\xAC\xEF")

	_, _, err := DecodeHeader(input)

	var unsupported *errs.UnsupportedHeader
	require.ErrorAs(t, err, &unsupported)
	require.Equal(t, 218, unsupported.Size)
}

func TestDecodeHeader_BadMagic(t *testing.T) {
	input := []byte("\x0E\x10-\b\xEB\x16\x00\x00.AIT\xAC\xEF")

	_, _, err := DecodeHeader(input)

	var bad *errs.BadMagic
	require.ErrorAs(t, err, &bad)
	require.Equal(t, ".AIT", bad.Got)
}

func TestDecodeHeader_HeaderCrcMismatch(t *testing.T) {
	input := []byte("\x0E\x10-\b\xEB\x16\x00\x00.FIT\xAC\xEA")

	_, _, err := DecodeHeader(input)

	var mismatch *errs.HeaderCrcMismatch
	require.ErrorAs(t, err, &mismatch)
	require.Equal(t, uint16(61356), mismatch.Computed)
	require.Equal(t, uint16(60076), mismatch.Found)
}

func TestHeader_RoundTrip(t *testing.T) {
	h := NewHeader()
	h.Finalize(0)

	encoded := h.Encode()
	require.Len(t, encoded, LongHeaderSize)

	decoded, n, err := DecodeHeader(encoded)
	require.NoError(t, err)
	require.Equal(t, int(LongHeaderSize), n)
	require.Equal(t, h, decoded)
}

func TestHeader_ZeroCrcSkipsValidation(t *testing.T) {
	// A header with crc=0 is the documented placeholder state; it must
	// decode without attempting the CRC check.
	h := NewHeader()
	encoded := h.Encode()

	decoded, _, err := DecodeHeader(encoded)
	require.NoError(t, err)
	require.Equal(t, uint16(0), decoded.CRC)
}
