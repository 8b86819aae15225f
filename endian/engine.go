// Package endian provides the byte-order abstraction the FIT wire format
// needs: every definition record declares its own architecture, and every
// field belonging to that definition is read and written using whichever
// order was declared, independent of the host machine's native order.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder interfaces into a single EndianEngine
// interface, so a definition can carry one value instead of a byte flag
// plus a branch at every field access.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library, making it fully compatible with existing Go code while
// providing access to both read/write and append operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian returns the engine used for architecture byte 0.
func LittleEndian() EndianEngine {
	return binary.LittleEndian
}

// BigEndian returns the engine used for architecture byte 1.
func BigEndian() EndianEngine {
	return binary.BigEndian
}

// ForArchitecture resolves a DefinitionRecord's architecture byte (0 or 1)
// to the engine it declares. The caller is responsible for having already
// rejected any other value as InvalidArchitecture.
func ForArchitecture(architecture byte) EndianEngine {
	if architecture == 1 {
		return BigEndian()
	}

	return LittleEndian()
}
