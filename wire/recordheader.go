package wire

import "github.com/arvidsund/fitproto/errs"

// RecordHeader is the one-byte header preceding every definition or data
// record.
type RecordHeader struct {
	Normal            bool // false: normal header; true: compressed timestamp (unsupported)
	MessageType       bool // true: definition record; false: data record
	DeveloperDataFlag bool
	Reserved          bool
	LocalMessageType  uint8 // 0-15
}

// ForNewDefinition reports whether this header introduces a new
// definition record, per spec §4.3.
func (h RecordHeader) ForNewDefinition() bool {
	return !h.Normal && h.MessageType
}

// DecodeRecordHeader decodes the single header byte.
func DecodeRecordHeader(b byte) (RecordHeader, error) {
	h := RecordHeader{
		Normal:            b&0x80 != 0,
		MessageType:       b&0x40 != 0,
		DeveloperDataFlag: b&0x20 != 0,
		Reserved:          b&0x10 != 0,
		LocalMessageType:  b & 0x0F,
	}

	if h.Normal {
		return h, &errs.CompressedTimestampUnsupported{}
	}

	return h, nil
}

// Encode packs the header back into one byte.
func (h RecordHeader) Encode() byte {
	var b byte
	if h.Normal {
		b |= 0x80
	}
	if h.MessageType {
		b |= 0x40
	}
	if h.DeveloperDataFlag {
		b |= 0x20
	}
	if h.Reserved {
		b |= 0x10
	}
	b |= h.LocalMessageType & 0x0F

	return b
}

// NewDefinitionRecordHeader builds the header byte preceding a definition
// record for the given local slot.
func NewDefinitionRecordHeader(local uint8) RecordHeader {
	return RecordHeader{MessageType: true, LocalMessageType: local & 0x0F}
}

// NewDataRecordHeader builds the header byte preceding a data record for
// the given local slot.
func NewDataRecordHeader(local uint8) RecordHeader {
	return RecordHeader{LocalMessageType: local & 0x0F}
}
