package encoder

import (
	"sort"
	"strconv"
	"strings"

	"github.com/arvidsund/fitproto/basetype"
	"github.com/arvidsund/fitproto/decoder"
	"github.com/arvidsund/fitproto/errs"
	"github.com/arvidsund/fitproto/fitlog"
	"github.com/arvidsund/fitproto/profile"
	"github.com/arvidsund/fitproto/registry"
	"github.com/arvidsund/fitproto/wire"
)

// slot identifies one (local_message_type, message_name) binding a
// builder derives exactly one definition for.
type slot struct {
	local uint8
	name  string
}

// BuildFromScratch derives minimal definitions from userRecords and
// returns a Registry ready to hand to Write (spec §4.10, §4.12).
//
// For each distinct (local_message_type, message_name) pair, the record
// with the most supplied fields is the archetype: its field set, in
// ascending field_definition_number order, becomes the definition's
// fields. Array widths
// come from the archetype; string widths come from the longest value
// any record in the slot supplies for that field.
func BuildFromScratch(cat profile.Catalog, log fitlog.Logger, userRecords []Record) (*registry.Registry, error) {
	groups, order := groupBySlot(userRecords)

	reg := registry.New(wire.NewHeader())
	schemas := make(map[slot]wire.Schema, len(order))

	for _, s := range order {
		group := groups[s]

		msg, ok := cat.ByName(s.name)
		if !ok {
			return nil, &errs.MissingProfileMessage{Name: s.name}
		}

		def, err := deriveDefinition(msg, group, log)
		if err != nil {
			return nil, err
		}

		schema, err := def.BuildSchema(cat, log)
		if err != nil {
			return nil, err
		}

		reg.InstallDefinition(s.local, msg.Name, wire.NewDefinitionRecordHeader(s.local), def, schema)
		schemas[s] = schema
	}

	for _, rec := range userRecords {
		s := slot{local: rec.LocalMessageType, name: rec.MessageName}
		schema := schemas[s]

		reg.AppendRecord(registry.DecodedRecord{
			MessageName:      schema.MessageName,
			MessageNumber:    schema.MessageNum,
			MessageSource:    string(schema.Source),
			LocalMessageType: rec.LocalMessageType,
			Fields:           resolveFields(schema, rec.Fields),
		})
	}

	return reg, nil
}

// BuildFromTemplate decodes templateData's first segment, retains only
// its header and definition table (not its data records), and overlays
// userRecords onto those template-sourced definitions without
// recomputing byte_count (spec §4.11).
func BuildFromTemplate(cat profile.Catalog, log fitlog.Logger, templateData []byte, userRecords []Record) (*registry.Registry, error) {
	dec, err := decoder.New(templateData, decoder.WithCatalog(cat), decoder.WithLogger(log))
	if err != nil {
		return nil, err
	}

	segments, err := dec.Decode()
	if err != nil {
		return nil, err
	}

	if len(segments) == 0 {
		return nil, errs.Io(errEmptyTemplate, "reading template")
	}

	template := segments[0]

	reg := registry.New(template.Header)
	for _, binding := range template.Definitions() {
		reg.InstallDefinition(binding.LocalMessageType, binding.MessageName, binding.RecordHeader, binding.Definition, binding.Schema)
	}

	for _, rec := range userRecords {
		binding, ok := reg.FindDefinitionFor(rec.LocalMessageType, rec.MessageName)
		if !ok {
			return nil, &errs.UnresolvedLocalSlot{LocalMessageType: rec.LocalMessageType, MessageName: rec.MessageName}
		}

		reg.AppendRecord(registry.DecodedRecord{
			MessageName:      binding.Schema.MessageName,
			MessageNumber:    binding.Schema.MessageNum,
			MessageSource:    string(binding.Schema.Source),
			LocalMessageType: rec.LocalMessageType,
			Fields:           resolveFields(binding.Schema, rec.Fields),
		})
	}

	return reg, nil
}

// groupBySlot partitions records by (local_message_type, message_name),
// preserving first-seen slot order so definitions install in a
// deterministic sequence.
func groupBySlot(records []Record) (map[slot][]Record, []slot) {
	groups := make(map[slot][]Record)
	var order []slot

	for _, rec := range records {
		s := slot{local: rec.LocalMessageType, name: rec.MessageName}
		if _, seen := groups[s]; !seen {
			order = append(order, s)
		}
		groups[s] = append(groups[s], rec)
	}

	return groups, order
}

// derivedField is one archetype field resolved to its
// field_definition_number and base type, pending byte_count.
type derivedField struct {
	number int
	name   string
	base   basetype.BaseType
}

// deriveDefinition builds the DefinitionRecord for one slot's archetype
// record, resolving each archetype field's base type from the profile
// (or, for an undocumented_field_<n> name, from the caller's explicit
// override or the enum/u8 default) and computing byte_count per field
// kind (spec §4.10, §4.12).
func deriveDefinition(msg profile.Message, group []Record, log fitlog.Logger) (wire.DefinitionRecord, error) {
	archetype := group[0]
	for _, rec := range group[1:] {
		if len(rec.Fields) > len(archetype.Fields) {
			archetype = rec
		}
	}

	fields := make([]derivedField, 0, len(archetype.Fields))
	for name, input := range archetype.Fields {
		if field, ok := msg.FieldByName(name); ok {
			base, ok := basetype.LookupByName(field.TypeName)
			if !ok {
				log.Warnf("unresolvable profile type %q for field %q of message %q; encoding as enum", field.TypeName, name, msg.Name)
				base = basetype.MustLookup(basetype.Enum)
			}

			fields = append(fields, derivedField{number: field.Number, name: name, base: base})
			continue
		}

		number, ok := undocumentedFieldNumber(name)
		if !ok {
			log.Warnf("field %q of message %q has no profile entry and no recoverable field number; omitting from definition", name, msg.Name)
			continue
		}

		base := basetype.MustLookup(basetype.Enum)
		if input.BaseTypeNumber != nil {
			if resolved, ok := basetype.Lookup(int(*input.BaseTypeNumber)); ok {
				base = resolved
			}
		}

		fields = append(fields, derivedField{number: number, name: name, base: base})
	}

	sort.Slice(fields, func(i, j int) bool { return fields[i].number < fields[j].number })

	entries := make([]wire.FieldDefEntry, 0, len(fields))
	for _, f := range fields {
		byteCount := fieldByteCount(f.base, f.name, archetype.Fields[f.name], group)

		entries = append(entries, wire.FieldDefEntry{
			FieldDefinitionNumber: uint8(f.number),
			ByteCount:             uint8(byteCount),
			EndianAbility:         f.base.Endian,
			BaseTypeNumber:        uint8(f.base.Number),
		})
	}

	return wire.DefinitionRecord{
		Architecture:        0,
		GlobalMessageNumber: msg.Number,
		Fields:              entries,
	}, nil
}

// undocumentedFieldNumber recovers the field_definition_number encoded
// in a synthesized "undocumented_field_<n>" name.
func undocumentedFieldNumber(name string) (int, bool) {
	const prefix = "undocumented_field_"
	if !strings.HasPrefix(name, prefix) {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimPrefix(name, prefix))
	if err != nil {
		return 0, false
	}

	return n, true
}

// fieldByteCount computes one field's definition-time byte_count: array
// width from the archetype's value, string width from the longest value
// any record in the slot supplies, otherwise the base type's own width.
func fieldByteCount(base basetype.BaseType, fieldName string, archetypeInput FieldInput, group []Record) int {
	if len(archetypeInput.Array) > 0 {
		return base.Width * len(archetypeInput.Array)
	}

	if base.IsString {
		longest := 0
		for _, rec := range group {
			if v, ok := rec.Fields[fieldName]; ok && len(v.String) > longest {
				longest = len(v.String)
			}
		}

		return (longest/8)*8 + 8
	}

	return base.Width
}

// resolveFields builds the fully-resolved field map for one record
// against schema: user-supplied values pass through, omitted fields
// become the base type's undef sentinel (scalar or array, per §4.6).
func resolveFields(schema wire.Schema, input map[string]FieldInput) map[string]wire.FieldValue {
	values := make(map[string]wire.FieldValue, len(schema.Fields))

	for _, f := range schema.Fields {
		shape := f.Shape
		v, has := input[f.Name]

		switch {
		case shape.Kind == wire.ShapeString:
			if has {
				values[f.Name] = wire.FieldValue{Shape: shape, String: v.String}
			} else {
				values[f.Name] = wire.FieldValue{Shape: shape}
			}

		case shape.Kind == wire.ShapeArray:
			if has && len(v.Array) == shape.Length {
				values[f.Name] = wire.FieldValue{Shape: shape, Array: v.Array}
			} else {
				undef := shape.Base.UndefUint()
				sentinels := make([]uint64, shape.Length)
				for i := range sentinels {
					sentinels[i] = undef
				}
				values[f.Name] = wire.FieldValue{Shape: shape, Array: sentinels}
			}

		default: // ShapeScalar
			if has {
				values[f.Name] = wire.FieldValue{Shape: shape, Scalar: v.Scalar}
			} else {
				values[f.Name] = wire.FieldValue{Shape: shape, Scalar: shape.Base.UndefUint()}
			}
		}
	}

	return values
}

var errEmptyTemplate = emptyTemplateError{}

type emptyTemplateError struct{}

func (emptyTemplateError) Error() string { return "template file contains no segments" }
