package wire

import (
	"github.com/arvidsund/fitproto/endian"
	"github.com/arvidsund/fitproto/errs"
	"github.com/arvidsund/fitproto/fitlog"
	"github.com/arvidsund/fitproto/profile"
)

// DefinitionRecord is the on-the-wire schema for subsequent data records
// at its local slot (spec §3 DefinitionRecord).
type DefinitionRecord struct {
	Architecture        uint8
	GlobalMessageNumber uint16
	Fields              []FieldDefEntry
	DeveloperFieldCount uint8 // must decode/encode as 0; present only if header.DeveloperDataFlag
	HasDeveloperSection bool
}

// Schema is the resolved, per-record read/write template a definition
// record produces: the message it names, and its fields in declared
// order with engine-bound endianness.
type Schema struct {
	MessageName string
	MessageNum  uint16
	Source      profile.Source
	Engine      endian.EndianEngine
	Fields      []ResolvedField
}

// DecodeDefinitionRecord reads a definition record from data (the bytes
// immediately following its RecordHeader byte). developerFields must be
// true when the preceding RecordHeader set DeveloperDataFlag.
//
// Returns the DefinitionRecord and the number of bytes consumed.
func DecodeDefinitionRecord(data []byte, developerFields bool) (DefinitionRecord, int, error) {
	if len(data) < 5 {
		return DefinitionRecord{}, 0, errs.Io(errShortRead, "reading definition record")
	}

	architecture := data[1]
	if architecture != 0 && architecture != 1 {
		return DefinitionRecord{}, 0, &errs.InvalidArchitecture{Value: architecture}
	}

	engine := endian.ForArchitecture(architecture)
	globalMsg := engine.Uint16(data[2:4])
	fieldCount := int(data[4])

	pos := 5
	fields := make([]FieldDefEntry, 0, fieldCount)
	for i := 0; i < fieldCount; i++ {
		if len(data) < pos+3 {
			return DefinitionRecord{}, 0, errs.Io(errShortRead, "reading field definition entries")
		}

		entry, err := DecodeFieldDefEntry(data[pos : pos+3])
		if err != nil {
			return DefinitionRecord{}, 0, err
		}

		fields = append(fields, entry)
		pos += 3
	}

	def := DefinitionRecord{
		Architecture:        architecture,
		GlobalMessageNumber: globalMsg,
		Fields:              fields,
	}

	if developerFields {
		if len(data) < pos+1 {
			return DefinitionRecord{}, 0, errs.Io(errShortRead, "reading developer field count")
		}

		def.HasDeveloperSection = true
		def.DeveloperFieldCount = data[pos]
		pos++

		if def.DeveloperFieldCount != 0 {
			return DefinitionRecord{}, 0, &errs.DeveloperFieldsUnsupported{Count: int(def.DeveloperFieldCount)}
		}
	}

	return def, pos, nil
}

// Encode writes the definition record back to wire form, mirroring
// Decode (spec §4.5 Encode: mirror of decode; reserved=0).
func (d DefinitionRecord) Encode() []byte {
	engine := endian.ForArchitecture(d.Architecture)

	buf := make([]byte, 5, 5+3*len(d.Fields)+1)
	buf[0] = 0 // reserved
	buf[1] = d.Architecture
	engine.PutUint16(buf[2:4], d.GlobalMessageNumber)
	buf[4] = uint8(len(d.Fields))

	for _, f := range d.Fields {
		buf = append(buf, f.Encode()...)
	}

	if d.HasDeveloperSection {
		buf = append(buf, d.DeveloperFieldCount)
	}

	return buf
}

// BuildSchema resolves this definition against cat, producing the
// per-record read/write template (spec §4.5 "Build struct schema").
func (d DefinitionRecord) BuildSchema(cat profile.Catalog, log fitlog.Logger) (Schema, error) {
	msg, ok := cat.ByNumber(d.GlobalMessageNumber)
	if !ok {
		return Schema{}, &errs.UnknownGlobalMessage{Number: d.GlobalMessageNumber}
	}

	fields := make([]ResolvedField, 0, len(d.Fields))
	for _, entry := range d.Fields {
		resolved, err := entry.Resolve(msg, log)
		if err != nil {
			return Schema{}, err
		}

		fields = append(fields, resolved)
	}

	return Schema{
		MessageName: msg.Name,
		MessageNum:  msg.Number,
		Source:      msg.Source,
		Engine:      endian.ForArchitecture(d.Architecture),
		Fields:      fields,
	}, nil
}
