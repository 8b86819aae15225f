package profile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatic_ByNumber(t *testing.T) {
	cat := Static()

	fileID, ok := cat.ByNumber(0)
	require.True(t, ok)
	require.Equal(t, "file_id", fileID.Name)

	field, ok := fileID.FieldByNumber(3)
	require.True(t, ok)
	require.Equal(t, "serial_number", field.Name)

	_, ok = fileID.FieldByNumber(29)
	require.False(t, ok)
}

func TestStatic_ByName(t *testing.T) {
	cat := Static()

	_, ok := cat.ByName("does_not_exist")
	require.False(t, ok)

	m, ok := cat.ByName("device_info")
	require.True(t, ok)
	require.Equal(t, uint16(23), m.Number)
}

func TestStatic_UnknownGlobalMessage(t *testing.T) {
	cat := Static()

	_, ok := cat.ByNumber(9999)
	require.False(t, ok)
}
