// Package decoder implements the stream loop that turns a byte slice
// containing one or more chained FIT segments into a slice of
// registries, one per segment (spec §4.8).
package decoder

import (
	"encoding/binary"

	"github.com/arvidsund/fitproto/basetype"
	"github.com/arvidsund/fitproto/errs"
	"github.com/arvidsund/fitproto/fitlog"
	"github.com/arvidsund/fitproto/internal/options"
	"github.com/arvidsund/fitproto/profile"
	"github.com/arvidsund/fitproto/registry"
	"github.com/arvidsund/fitproto/wire"
)

// Decoder reads chained FIT segments out of an in-memory buffer.
//
// Note: a Decoder is not reusable across calls to Decode with different
// data; create a new one per input.
type Decoder struct {
	data    []byte
	catalog profile.Catalog
	log     fitlog.Logger
}

// Option configures a Decoder.
type Option = options.Option[*Decoder]

// WithCatalog overrides the profile catalog consulted to resolve
// global message numbers. Defaults to profile.Static().
func WithCatalog(cat profile.Catalog) Option {
	return options.NoError[*Decoder](func(d *Decoder) { d.catalog = cat })
}

// WithLogger overrides the logging sink used for non-fatal warnings.
// Defaults to fitlog.Discard.
func WithLogger(log fitlog.Logger) Option {
	return options.NoError[*Decoder](func(d *Decoder) { d.log = log })
}

// New creates a Decoder over data, ready to decode.
func New(data []byte, opts ...Option) (*Decoder, error) {
	d := &Decoder{
		data:    data,
		catalog: profile.Static(),
		log:     fitlog.Discard,
	}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode reads every chained segment in the Decoder's buffer and
// returns one *registry.Registry per segment, in stream order.
func (d *Decoder) Decode() ([]*registry.Registry, error) {
	var segments []*registry.Registry

	offset := 0
	for offset < len(d.data) {
		reg, consumed, err := d.decodeSegment(d.data[offset:])
		if err != nil {
			return nil, err
		}

		segments = append(segments, reg)
		offset += consumed
	}

	return segments, nil
}

// decodeSegment decodes one header+body+CRC segment starting at the
// front of data. Returns the populated Registry and the total number of
// bytes consumed (header + body + trailing CRC).
func (d *Decoder) decodeSegment(data []byte) (*registry.Registry, int, error) {
	header, headerLen, err := wire.DecodeHeader(data)
	if err != nil {
		return nil, 0, err
	}

	bodyStart := headerLen
	bodyEnd := bodyStart + int(header.DataSize)
	if len(data) < bodyEnd+2 {
		return nil, 0, errs.Io(errShortSegment, "reading segment body and trailing CRC")
	}

	body := data[bodyStart:bodyEnd]
	trailing := data[bodyEnd : bodyEnd+2]

	computed := basetype.CRC16(body)
	found := binary.LittleEndian.Uint16(trailing)
	if computed != found {
		return nil, 0, &errs.FileCrcMismatch{Computed: computed, Found: found}
	}

	reg := registry.New(header)
	if err := d.decodeRecords(reg, body); err != nil {
		return nil, 0, err
	}

	return reg, bodyEnd + 2, nil
}

// decodeRecords walks body, dispatching each record to the definition
// or data path and appending to reg (spec §4.8 step 2).
func (d *Decoder) decodeRecords(reg *registry.Registry, body []byte) error {
	pos := 0
	for pos < len(body) {
		if pos >= len(body) {
			return errs.Io(errShortSegment, "reading record header")
		}

		recHeader, err := wire.DecodeRecordHeader(body[pos])
		if err != nil {
			return err
		}
		pos++

		if recHeader.ForNewDefinition() {
			def, n, err := wire.DecodeDefinitionRecord(body[pos:], recHeader.DeveloperDataFlag)
			if err != nil {
				return err
			}
			pos += n

			schema, err := def.BuildSchema(d.catalog, d.log)
			if err != nil {
				return err
			}

			reg.InstallDefinition(recHeader.LocalMessageType, schema.MessageName, recHeader, def, schema)
			continue
		}

		binding, ok := reg.FindDefinition(recHeader.LocalMessageType)
		if !ok {
			return &errs.UnresolvedLocalSlot{LocalMessageType: recHeader.LocalMessageType}
		}

		fields, n, err := wire.DecodeDataRecord(body[pos:], binding.Schema)
		if err != nil {
			return err
		}
		pos += n

		reg.AppendRecord(registry.DecodedRecord{
			MessageName:      binding.Schema.MessageName,
			MessageNumber:    binding.Schema.MessageNum,
			MessageSource:    string(binding.Schema.Source),
			LocalMessageType: recHeader.LocalMessageType,
			Fields:           fields,
		})
	}

	return nil
}

var errShortSegment = shortSegmentError{}

type shortSegmentError struct{}

func (shortSegmentError) Error() string { return "segment body shorter than declared data_size" }
