// Package errs defines the sentinel errors returned by lwes encoders.
//
// Errors are wrapped with context by the returning function; compare with errors.Is.
package errs

import "errors"

var (
	// ErrUByteOutOfRange is returned when an unsigned byte value falls outside 0..255.
	ErrUByteOutOfRange = errors.New("unsigned byte out of range 0..255")

	// ErrStringTooLong is returned when the encoded bytes of a string do not fit its length prefix.
	ErrStringTooLong = errors.New("encoded string too long")

	// ErrUnknownEncoding is returned for a character encoding ID outside the supported table.
	ErrUnknownEncoding = errors.New("unknown character encoding")

	// ErrShortBuffer is returned when a buffer region cannot hold the bytes about to be written.
	ErrShortBuffer = errors.New("buffer too short")

	// ErrNotIPv4 is returned when an address has no IPv4 representation.
	ErrNotIPv4 = errors.New("address is not IPv4")

	// ErrUnknownType is returned for a field type token the encoder does not support.
	ErrUnknownType = errors.New("unknown field type")
)
