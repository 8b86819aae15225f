package main

import (
	"encoding/json"
	"os"

	fit "github.com/arvidsund/fitproto"
	"github.com/arvidsund/fitproto/registry"
	"github.com/arvidsund/fitproto/wire"
)

// dumpRecord is the JSON shape printed per DecodedRecord: a flattened
// Fields map instead of wire.FieldValue's tagged Scalar/Array/String,
// since a tagged union reads awkwardly as JSON.
type dumpRecord struct {
	MessageName      string         `json:"message_name"`
	MessageNumber    uint16         `json:"message_number"`
	MessageSource    string         `json:"message_source"`
	LocalMessageType uint8          `json:"local_message_number"`
	Fields           map[string]any `json:"fields"`
}

func runDump(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	segments, err := fit.Decode(data)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	for _, seg := range segments {
		for _, rec := range seg.Records {
			if err := enc.Encode(flattenRecord(rec)); err != nil {
				return err
			}
		}
	}

	return nil
}

func flattenRecord(rec registry.DecodedRecord) dumpRecord {
	fields := make(map[string]any, len(rec.Fields))
	for name, v := range rec.Fields {
		fields[name] = flattenValue(v)
	}

	return dumpRecord{
		MessageName:      rec.MessageName,
		MessageNumber:    rec.MessageNumber,
		MessageSource:    rec.MessageSource,
		LocalMessageType: rec.LocalMessageType,
		Fields:           fields,
	}
}

func flattenValue(v wire.FieldValue) any {
	switch v.Shape.Kind {
	case wire.ShapeString:
		return v.String
	case wire.ShapeArray:
		return v.Array
	default:
		return v.Scalar
	}
}
