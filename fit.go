// Package fit provides convenient top-level wrappers around the decoder
// and encoder packages for the common case of decoding or encoding a
// whole FIT file in one call.
//
// # Basic usage
//
// Decoding a file already read into memory:
//
//	segments, err := fit.Decode(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, seg := range segments {
//	    for _, rec := range seg.Records {
//	        fmt.Println(rec.MessageName, rec.Fields)
//	    }
//	}
//
// Encoding a fresh set of records, deriving minimal definitions:
//
//	reg, err := fit.BuildFromScratch(records)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	var buf bytes.Buffer
//	if err := fit.Encode(&buf, reg); err != nil {
//	    log.Fatal(err)
//	}
//
// Structure-preserving encode from a template file goes through
// BuildFromTemplate. For a custom profile catalog or a custom logging
// sink, use the decoder and encoder packages directly.
package fit

import (
	"io"

	"github.com/arvidsund/fitproto/decoder"
	"github.com/arvidsund/fitproto/encoder"
	"github.com/arvidsund/fitproto/fitlog"
	"github.com/arvidsund/fitproto/profile"
	"github.com/arvidsund/fitproto/registry"
)

// Record is one record to encode: a message by name, the local message
// slot it should occupy, and its field values by name.
type Record = encoder.Record

// FieldInput is one field value a caller supplies for a Record.
type FieldInput = encoder.FieldInput

// Decode reads every chained segment out of data and returns one
// *registry.Registry per segment, in stream order, using the built-in
// reference profile catalog and a discarding logger.
//
// Use decoder.New with decoder.WithCatalog/WithLogger directly when a
// custom catalog or logging sink is needed.
func Decode(data []byte) ([]*registry.Registry, error) {
	dec, err := decoder.New(data)
	if err != nil {
		return nil, err
	}

	return dec.Decode()
}

// Encode serializes reg to w as one FIT segment.
func Encode(w io.Writer, reg *registry.Registry) error {
	return encoder.Write(w, reg)
}

// BuildFromScratch derives minimal definitions from records and returns
// a Registry ready to hand to Encode, using the built-in reference
// profile catalog and a discarding logger.
func BuildFromScratch(records []Record) (*registry.Registry, error) {
	return encoder.BuildFromScratch(profile.Static(), fitlog.Discard, records)
}

// BuildFromTemplate decodes templateData's first segment, retains its
// definitions, and overlays records onto them without recomputing
// byte_count, using the built-in reference profile catalog and a
// discarding logger.
func BuildFromTemplate(templateData []byte, records []Record) (*registry.Registry, error) {
	return encoder.BuildFromTemplate(profile.Static(), fitlog.Discard, templateData, records)
}
