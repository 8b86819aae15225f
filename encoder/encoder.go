package encoder

import (
	"io"

	"github.com/arvidsund/fitproto/basetype"
	"github.com/arvidsund/fitproto/errs"
	"github.com/arvidsund/fitproto/internal/pool"
	"github.com/arvidsund/fitproto/registry"
	"github.com/arvidsund/fitproto/wire"
)

// Write serializes reg to w as one FIT segment (spec §4.9). The body is
// staged in memory first: each record's definition is emitted whenever
// its local slot is not already bound to the record's message name,
// followed by its data payload. Once the body is complete, the header
// is finalized with the body's data_size and header CRC, and header,
// body and trailing segment CRC are written to w in that order.
//
// Write only appends to w; it never seeks or overwrites, so any
// io.Writer works.
func Write(w io.Writer, reg *registry.Registry) error {
	buf := pool.GetFileBuffer()
	defer pool.PutFileBuffer(buf)
	buf.Reset()

	// active tracks which message name currently occupies each local
	// slot in the emitted stream, so a slot rebound to a different
	// message (and later reused for the original one) re-emits its
	// definition instead of silently reusing a stale one (spec §4.7:
	// a local slot resolves newest-wins, so the emitted stream must
	// carry a fresh definition every time the binding actually changes).
	active := make(map[uint8]string, len(reg.Definitions()))

	for _, rec := range reg.Records {
		binding, ok := reg.FindDefinitionFor(rec.LocalMessageType, rec.MessageName)
		if !ok {
			return &errs.UnresolvedLocalSlot{LocalMessageType: rec.LocalMessageType, MessageName: rec.MessageName}
		}

		if active[rec.LocalMessageType] != rec.MessageName {
			buf.MustWrite([]byte{wire.NewDefinitionRecordHeader(rec.LocalMessageType).Encode()})
			buf.MustWrite(binding.Definition.Encode())
			active[rec.LocalMessageType] = rec.MessageName
		}

		buf.MustWrite([]byte{wire.NewDataRecordHeader(rec.LocalMessageType).Encode()})
		buf.MustWrite(wire.EncodeDataRecord(binding.Schema, rec.Fields, nil))
	}

	body := buf.Bytes()
	crc := basetype.CRC16(body)

	header := reg.Header
	header.Finalize(uint32(len(body)))

	if _, err := w.Write(header.Encode()); err != nil {
		return errs.Io(err, "writing header")
	}
	if _, err := w.Write(body); err != nil {
		return errs.Io(err, "writing body")
	}
	if _, err := w.Write([]byte{byte(crc), byte(crc >> 8)}); err != nil {
		return errs.Io(err, "writing segment crc")
	}

	return nil
}
