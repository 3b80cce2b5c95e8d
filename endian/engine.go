// Package endian provides the byte order used by the lwes wire format.
//
// Every multi-byte integer on the wire is stored most-significant byte first.
// The Engine interface combines binary.ByteOrder and binary.AppendByteOrder so
// encoders can either write into a caller-owned buffer at an offset or append
// to a growing slice with the same value.
//
// # Basic Usage
//
//	engine := endian.Wire()
//	engine.PutUint32(buf[offset:], 0x01020304) // 01 02 03 04
//
// # Thread Safety
//
// Wire is safe for concurrent use. The returned engine is immutable and stateless.
package endian

import "encoding/binary"

// Engine combines ByteOrder and AppendByteOrder from encoding/binary.
//
// binary.BigEndian and binary.LittleEndian both satisfy it.
type Engine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Wire returns the engine every lwes encoder writes with (big-endian).
func Wire() Engine {
	return binary.BigEndian
}
