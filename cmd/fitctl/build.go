package main

import (
	"encoding/json"
	"fmt"
	"os"

	fit "github.com/arvidsund/fitproto"
	"github.com/arvidsund/fitproto/registry"
)

// jsonRecord is the on-disk shape fitctl build reads: one record per
// entry, field values given as a JSON number, an array of numbers, or a
// string depending on the field's eventual wire shape.
type jsonRecord struct {
	MessageName      string                     `json:"message_name"`
	LocalMessageType uint8                      `json:"local_message_number"`
	Fields           map[string]json.RawMessage `json:"fields"`
}

func runBuild(recordsPath, outPath, templatePath string) error {
	raw, err := os.ReadFile(recordsPath)
	if err != nil {
		return err
	}

	var jsonRecords []jsonRecord
	if err := json.Unmarshal(raw, &jsonRecords); err != nil {
		return fmt.Errorf("parsing %s: %w", recordsPath, err)
	}

	records, err := toEncoderRecords(jsonRecords)
	if err != nil {
		return err
	}

	var reg *registry.Registry
	if templatePath != "" {
		templateData, err := os.ReadFile(templatePath)
		if err != nil {
			return err
		}

		reg, err = fit.BuildFromTemplate(templateData, records)
		if err != nil {
			return err
		}
	} else {
		reg, err = fit.BuildFromScratch(records)
		if err != nil {
			return err
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	return fit.Encode(out, reg)
}

// toEncoderRecords converts the raw JSON records into fit.Record values,
// inferring each field's FieldInput shape from its raw JSON token: a
// quoted string becomes FieldInput.String, a JSON array becomes
// FieldInput.Array, and a bare number becomes FieldInput.Scalar.
func toEncoderRecords(jsonRecords []jsonRecord) ([]fit.Record, error) {
	records := make([]fit.Record, 0, len(jsonRecords))

	for _, jr := range jsonRecords {
		fields := make(map[string]fit.FieldInput, len(jr.Fields))

		for name, raw := range jr.Fields {
			input, err := toFieldInput(raw)
			if err != nil {
				return nil, fmt.Errorf("record %s field %s: %w", jr.MessageName, name, err)
			}

			fields[name] = input
		}

		records = append(records, fit.Record{
			MessageName:      jr.MessageName,
			LocalMessageType: jr.LocalMessageType,
			Fields:           fields,
		})
	}

	return records, nil
}

func toFieldInput(raw json.RawMessage) (fit.FieldInput, error) {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return fit.FieldInput{String: s}, nil
	}

	var arr []uint64
	if err := json.Unmarshal(raw, &arr); err == nil {
		return fit.FieldInput{Array: arr}, nil
	}

	var scalar uint64
	if err := json.Unmarshal(raw, &scalar); err != nil {
		return fit.FieldInput{}, fmt.Errorf("unsupported field value %s: %w", string(raw), err)
	}

	return fit.FieldInput{Scalar: scalar}, nil
}
