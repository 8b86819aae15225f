package basetype

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("known numbers resolve", func(t *testing.T) {
		bt, ok := Lookup(Uint16)
		require.True(t, ok)
		require.Equal(t, "uint16", bt.Name)
		require.Equal(t, 2, bt.Width)
		require.True(t, bt.Endian)
	})

	t.Run("unknown number reports false", func(t *testing.T) {
		_, ok := Lookup(99)
		require.False(t, ok)
	})
}

func TestUndefUint(t *testing.T) {
	cases := []struct {
		name string
		bt   BaseType
		want uint64
	}{
		{"enum", MustLookup(Enum), 0xFF},
		{"uint8", MustLookup(Uint8), 0xFF},
		{"uint16", MustLookup(Uint16), 0xFFFF},
		{"uint32", MustLookup(Uint32), 0xFFFFFFFF},
		{"sint8", MustLookup(Sint8), 0x7F},
		{"sint16", MustLookup(Sint16), 0x7FFF},
		{"sint32", MustLookup(Sint32), 0x7FFFFFFF},
		{"uint8z", MustLookup(Uint8z), 0},
		{"uint16z", MustLookup(Uint16z), 0},
		{"uint32z", MustLookup(Uint32z), 0},
		{"byte", MustLookup(Byte), 0xFF},
		{"uint64", MustLookup(Uint64), 0xFFFFFFFFFFFFFFFF},
		{"sint64", MustLookup(Sint64), 0x7FFFFFFFFFFFFFFF},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.want, c.bt.UndefUint())
		})
	}
}

func TestCRC16_EmptyBody(t *testing.T) {
	require.Equal(t, uint16(0), CRC16(nil))
}

func TestCRC16_DefaultHeaderFirst12Bytes(t *testing.T) {
	// header_size=14, protocol_version=16, profile_version=2093 (LE),
	// data_size=0, data_type=".FIT" -- spec §8 scenario 1.
	header := []byte{14, 16, 0x2D, 0x08, 0, 0, 0, 0, '.', 'F', 'I', 'T'}
	require.Equal(t, uint16(0xD594), CRC16(header))
}
