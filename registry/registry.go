// Package registry holds the decoded (or about-to-be-encoded) contents
// of one FIT segment: its header, its records in stream order, and its
// active definition table.
package registry

import (
	"github.com/arvidsund/fitproto/wire"
)

// DecodedRecord is what the core exposes per data record (spec §3
// DecodedRecord).
type DecodedRecord struct {
	Index            int
	MessageName      string
	MessageNumber    uint16
	MessageSource    string // "documented" or "undocumented"
	LocalMessageType uint8
	Fields           map[string]wire.FieldValue
}

// DefinitionBinding is one entry of the active definition table: a local
// slot bound to a definition record and the schema it resolved to.
type DefinitionBinding struct {
	LocalMessageType uint8
	MessageName      string
	RecordHeader     wire.RecordHeader
	Definition       wire.DefinitionRecord
	Schema           wire.Schema
}

// Registry holds one segment's header, its decoded records in stream
// order, and its definition table.
type Registry struct {
	Header      wire.Header
	Records     []DecodedRecord
	definitions []DefinitionBinding
}

// New returns an empty Registry seeded with header.
func New(header wire.Header) *Registry {
	return &Registry{Header: header}
}

// AppendRecord appends a decoded record, preserving stream order.
func (r *Registry) AppendRecord(rec DecodedRecord) {
	rec.Index = len(r.Records)
	r.Records = append(r.Records, rec)
}

// InstallDefinition appends a new binding at the given local slot. The
// definition table is append-only; a later binding at the same slot
// shadows earlier ones (spec §3: "lookup resolves... newest to oldest").
func (r *Registry) InstallDefinition(local uint8, messageName string, header wire.RecordHeader, def wire.DefinitionRecord, schema wire.Schema) {
	r.definitions = append(r.definitions, DefinitionBinding{
		LocalMessageType: local,
		MessageName:      messageName,
		RecordHeader:     header,
		Definition:       def,
		Schema:           schema,
	})
}

// FindDefinition resolves the currently active binding for local,
// scanning from newest to oldest (spec §4.7). Used by the decoder, which
// only ever has a local number to resolve against: a data record names
// no message, so "currently active for this slot" is the only
// resolution that makes sense while decoding.
func (r *Registry) FindDefinition(local uint8) (DefinitionBinding, bool) {
	for i := len(r.definitions) - 1; i >= 0; i-- {
		if r.definitions[i].LocalMessageType == local {
			return r.definitions[i], true
		}
	}

	return DefinitionBinding{}, false
}

// FindDefinitionFor resolves the binding installed for the given
// (local, messageName) pair, scanning from newest to oldest. Used by the
// encoder: a Registry built by BuildFromScratch can interleave more than
// one message name on the same local slot (a slot rebound and later
// reused for its original message), so encoding a record must match the
// definition by its own message name, not merely whichever definition is
// currently active for that local number (spec §5: a definition record
// precedes every "(local_number, message_name) pair").
func (r *Registry) FindDefinitionFor(local uint8, messageName string) (DefinitionBinding, bool) {
	for i := len(r.definitions) - 1; i >= 0; i-- {
		if r.definitions[i].LocalMessageType == local && r.definitions[i].MessageName == messageName {
			return r.definitions[i], true
		}
	}

	return DefinitionBinding{}, false
}

// Definitions returns the full definition table in installation order,
// for diagnostic dumps (spec §9: "the vector preserves history").
func (r *Registry) Definitions() []DefinitionBinding {
	return r.definitions
}
