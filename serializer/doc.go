// Package serializer writes lwes primitive values into caller-owned buffers.
//
// Every encoder takes the value, the destination buffer and the offset to
// write at, and returns the number of bytes it wrote. Callers advance their
// own offset by that amount before writing the next field:
//
//	n := 0
//	n += serializer.PutUint16(3, buf, n)
//	n += serializer.PutString("host", buf, n, charset.UTF8)
//	n += serializer.PutIPv4([4]byte{10, 0, 0, 1}, buf, n)
//
// # Wire Format
//
// Multi-byte integers are big-endian. Strings carry a UINT16 byte-length
// prefix (at most 65534 bytes); event and attribute names carry a UBYTE
// prefix (at most 255 bytes). Arrays carry a UINT16 element count followed by
// the elements. IPv4 addresses are written with their octets reversed.
//
// # Buffer Ownership
//
// Encoders never allocate or grow buffers. Sizing the buffer is the caller's
// job; the Size helpers report exactly how many bytes an encoder will write.
// Writing past the end of buf panics. The 64-bit encoders assert capacity
// explicitly before using an unchecked writer; Reserve provides the same
// assertion once for a whole batch of 64-bit writes.
//
// # Failure Signals
//
// PutUByte returns an error for values outside 0..255. The Put string
// encoders return 0 when the encoded string does not fit its length prefix;
// a successful string write always returns at least the prefix width, so 0 is
// never a valid length. The matching Encode functions return the cause as an
// error instead.
//
// # Thread Safety
//
// All functions are pure and may be called concurrently. Concurrent writes to
// overlapping regions of one buffer must be serialized by the caller.
package serializer
