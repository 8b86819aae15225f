// Package errs defines the flat error taxonomy the codec returns.
//
// Every kind is a distinct type implementing error, so callers can
// discriminate with errors.As instead of string matching. IoError is the
// only kind that wraps a cause; it does so with github.com/pkg/errors so
// the underlying I/O failure remains inspectable.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// UnsupportedHeader is returned when header_size is not 12 or 14.
type UnsupportedHeader struct {
	Size int
}

func (e *UnsupportedHeader) Error() string {
	return fmt.Sprintf("fit: unsupported header size %d", e.Size)
}

// BadMagic is returned when data_type does not equal ".FIT".
type BadMagic struct {
	Got string
}

func (e *BadMagic) Error() string {
	return fmt.Sprintf("fit: bad magic %q", e.Got)
}

// HeaderCrcMismatch is returned when the header's own CRC field does not
// match the CRC16 computed over the preceding header bytes.
type HeaderCrcMismatch struct {
	Computed uint16
	Found    uint16
}

func (e *HeaderCrcMismatch) Error() string {
	return fmt.Sprintf("fit: header crc mismatch: computed %d, found %d", e.Computed, e.Found)
}

// FileCrcMismatch is returned when the trailing segment CRC does not match
// the CRC16 computed over the segment body.
type FileCrcMismatch struct {
	Computed uint16
	Found    uint16
}

func (e *FileCrcMismatch) Error() string {
	return fmt.Sprintf("fit: file crc mismatch: computed %d, found %d", e.Computed, e.Found)
}

// CompressedTimestampUnsupported is returned when a record header's
// "normal" bit signals a compressed-timestamp header.
type CompressedTimestampUnsupported struct{}

func (e *CompressedTimestampUnsupported) Error() string {
	return "fit: compressed-timestamp record headers are not supported"
}

// DeveloperFieldsUnsupported is returned when a definition record's
// developer-field count is nonzero.
type DeveloperFieldsUnsupported struct {
	Count int
}

func (e *DeveloperFieldsUnsupported) Error() string {
	return fmt.Sprintf("fit: developer fields are not supported (count=%d)", e.Count)
}

// InvalidArchitecture is returned when a definition record's architecture
// byte is neither 0 nor 1.
type InvalidArchitecture struct {
	Value byte
}

func (e *InvalidArchitecture) Error() string {
	return fmt.Sprintf("fit: invalid architecture byte %d", e.Value)
}

// UnknownGlobalMessage is returned when a definition record names a
// global message number absent from the profile catalog.
type UnknownGlobalMessage struct {
	Number uint16
}

func (e *UnknownGlobalMessage) Error() string {
	return fmt.Sprintf("fit: unknown global message number %d", e.Number)
}

// InvalidFieldWidth is returned when a field definition's byte_count is
// inconsistent with its base type's width.
type InvalidFieldWidth struct {
	Field     string
	ByteCount int
	BaseWidth int
}

func (e *InvalidFieldWidth) Error() string {
	return fmt.Sprintf("fit: invalid field width for %q: byte_count=%d, base_width=%d", e.Field, e.ByteCount, e.BaseWidth)
}

// UnknownBaseType marks a base_type_number absent from the base-type
// table. It is non-fatal: the caller logs it as a warning and keeps
// decoding the field as raw bytes.
type UnknownBaseType struct {
	Number int
}

func (e *UnknownBaseType) Error() string {
	return fmt.Sprintf("fit: unknown base type number %d", e.Number)
}

// MissingProfileMessage is returned on encode when the caller names a
// message the profile catalog doesn't know.
type MissingProfileMessage struct {
	Name string
}

func (e *MissingProfileMessage) Error() string {
	return fmt.Sprintf("fit: unknown message %q", e.Name)
}

// UnresolvedLocalSlot is returned when a data record names a
// local_message_type with no active definition installed (spec §3
// invariant: "its local_message_type resolves (newest-wins) to an active
// definition"). On encode, MessageName is set: the slot has definitions
// installed, just none for this message name (spec §5: a definition must
// precede every (local_number, message_name) pair it's used under).
type UnresolvedLocalSlot struct {
	LocalMessageType uint8
	MessageName      string
}

func (e *UnresolvedLocalSlot) Error() string {
	if e.MessageName != "" {
		return fmt.Sprintf("fit: no definition installed for local message type %d, message %q", e.LocalMessageType, e.MessageName)
	}

	return fmt.Sprintf("fit: no active definition for local message type %d", e.LocalMessageType)
}

// IoError wraps an underlying stream failure.
type IoError struct {
	Cause error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("fit: io error: %v", e.Cause)
}

func (e *IoError) Unwrap() error {
	return e.Cause
}

// Io wraps cause as an IoError, annotating it with context the way
// github.com/pkg/errors.Wrap annotates a call-site failure.
func Io(cause error, context string) error {
	return &IoError{Cause: errors.Wrap(cause, context)}
}
