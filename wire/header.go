// Package wire implements the byte-level codecs for the four FIT record
// shapes the spec names: the file header, the one-byte record header, a
// single field-definition entry, and a full definition record. Each type
// mirrors the Parse/Bytes pair arloliu-mebo's section package uses for
// its own fixed-size wire structs.
package wire

import (
	"encoding/binary"

	"github.com/arvidsund/fitproto/basetype"
	"github.com/arvidsund/fitproto/errs"
)

// Magic is the four-byte data_type every FIT header must carry.
const Magic = ".FIT"

const (
	// ShortHeaderSize is a header with no trailing CRC field.
	ShortHeaderSize = 12
	// LongHeaderSize is a header with a two-byte CRC field appended.
	LongHeaderSize = 14

	// DefaultProtocolVersion and DefaultProfileVersion seed a
	// from-scratch encode, matching spec §3's stated defaults.
	DefaultProtocolVersion = 16
	DefaultProfileVersion  = 2093
)

// Header is the fixed-width preamble of one FIT segment.
type Header struct {
	HeaderSize      uint8
	ProtocolVersion uint8
	ProfileVersion  uint16
	DataSize        uint32
	DataType        string
	CRC             uint16 // only meaningful when HeaderSize == LongHeaderSize
}

// NewHeader returns a header with spec-default values and a placeholder
// DataSize/CRC of zero, ready for the encoder to backfill via Finalize.
func NewHeader() Header {
	return Header{
		HeaderSize:      LongHeaderSize,
		ProtocolVersion: DefaultProtocolVersion,
		ProfileVersion:  DefaultProfileVersion,
		DataType:        Magic,
	}
}

// DecodeHeader reads a header from the front of data and validates it per
// spec §4.2: header_size in {12,14}, data_type == ".FIT", and (when a CRC
// field is present and nonzero) the header CRC matches.
//
// Returns the parsed Header and the number of bytes consumed.
func DecodeHeader(data []byte) (Header, int, error) {
	if len(data) < ShortHeaderSize {
		return Header{}, 0, errs.Io(errShortRead, "reading fit header")
	}

	size := data[0]
	if size != ShortHeaderSize && size != LongHeaderSize {
		return Header{}, 0, &errs.UnsupportedHeader{Size: int(size)}
	}

	if len(data) < int(size) {
		return Header{}, 0, errs.Io(errShortRead, "reading fit header")
	}

	h := Header{
		HeaderSize:      size,
		ProtocolVersion: data[1],
		ProfileVersion:  binary.LittleEndian.Uint16(data[2:4]),
		DataSize:        binary.LittleEndian.Uint32(data[4:8]),
		DataType:        string(data[8:12]),
	}

	if h.DataType != Magic {
		return Header{}, 0, &errs.BadMagic{Got: h.DataType}
	}

	if size == LongHeaderSize {
		h.CRC = binary.LittleEndian.Uint16(data[12:14])
		if h.CRC != 0 {
			computed := basetype.CRC16(data[:12])
			if computed != h.CRC {
				return Header{}, 0, &errs.HeaderCrcMismatch{Computed: computed, Found: h.CRC}
			}
		}
	}

	return h, int(size), nil
}

// Encode writes the header as-is (no CRC recomputation). The encoder
// driver calls Finalize once the body length is known and then Encode
// once, so the written header already carries the final DataSize and
// CRC.
func (h Header) Encode() []byte {
	buf := make([]byte, h.HeaderSize)
	buf[0] = h.HeaderSize
	buf[1] = h.ProtocolVersion
	binary.LittleEndian.PutUint16(buf[2:4], h.ProfileVersion)
	binary.LittleEndian.PutUint32(buf[4:8], h.DataSize)
	copy(buf[8:12], []byte(Magic))

	if h.HeaderSize == LongHeaderSize {
		binary.LittleEndian.PutUint16(buf[12:14], h.CRC)
	}

	return buf
}

// Finalize sets DataSize and, for a 14-byte header, recomputes the header
// CRC over the first HeaderSize-2 bytes.
func (h *Header) Finalize(dataSize uint32) {
	h.DataSize = dataSize

	if h.HeaderSize == LongHeaderSize {
		h.CRC = 0
		body := h.Encode()
		h.CRC = basetype.CRC16(body[:h.HeaderSize-2])
	}
}

var errShortRead = shortReadError{}

type shortReadError struct{}

func (shortReadError) Error() string { return "unexpected end of input" }
