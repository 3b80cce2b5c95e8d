package serializer

import (
	"fmt"
	"math"
	"math/big"
	"unsafe"

	"github.com/lwes/lwes-go/endian"
	"github.com/lwes/lwes-go/errs"
	"github.com/lwes/lwes-go/format"
)

var engine = endian.Wire()

// PutBoolean writes 0x01 for true and 0x00 for false.
func PutBoolean(v bool, buf []byte, offset int) int {
	if v {
		buf[offset] = 0x01
	} else {
		buf[offset] = 0x00
	}

	return 1
}

// PutByte writes v unchanged.
func PutByte(v byte, buf []byte, offset int) int {
	buf[offset] = v
	return 1
}

// PutUByte writes an unsigned byte held in a wider integer.
//
// Values outside 0..255 are rejected with errs.ErrUByteOutOfRange and nothing is written.
func PutUByte(v int, buf []byte, offset int) (int, error) {
	if v < format.MinUByte || v > format.MaxUByte {
		return 0, fmt.Errorf("%w: %d", errs.ErrUByteOutOfRange, v)
	}
	buf[offset] = byte(v)

	return 1, nil
}

// PutInt16 writes v as 2 big-endian bytes in two's complement.
func PutInt16(v int16, buf []byte, offset int) int {
	engine.PutUint16(buf[offset:], uint16(v)) //nolint:gosec
	return 2
}

// PutUint16 writes v as 2 big-endian bytes.
func PutUint16(v uint16, buf []byte, offset int) int {
	engine.PutUint16(buf[offset:], v)
	return 2
}

// PutInt32 writes v as 4 big-endian bytes in two's complement.
func PutInt32(v int32, buf []byte, offset int) int {
	engine.PutUint32(buf[offset:], uint32(v)) //nolint:gosec
	return 4
}

// PutUint32 writes v as 4 big-endian bytes.
func PutUint32(v uint32, buf []byte, offset int) int {
	engine.PutUint32(buf[offset:], v)
	return 4
}

// PutInt64 writes v as 8 big-endian bytes.
//
// Capacity is asserted once up front; the write itself goes through the
// unchecked wide writer. A buffer that cannot hold 8 bytes at offset panics
// with an error wrapping errs.ErrShortBuffer.
func PutInt64(v int64, buf []byte, offset int) int {
	mustFit(buf, offset, 8)
	putUint64Unchecked(buf, offset, uint64(v)) //nolint:gosec

	return 8
}

// PutUint64 writes v as 8 big-endian bytes. See PutInt64.
func PutUint64(v uint64, buf []byte, offset int) int {
	mustFit(buf, offset, 8)
	putUint64Unchecked(buf, offset, v)

	return 8
}

// PutUint64Narrowed writes the low 64 bits of an arbitrary precision integer.
//
// Magnitude above 64 bits is discarded without notice, and negative values
// are taken in two's complement. A nil v is written as zero.
func PutUint64Narrowed(v *big.Int, buf []byte, offset int) int {
	return PutUint64(Narrow64(v), buf, offset)
}

var low64Mask = new(big.Int).SetUint64(math.MaxUint64)

// Narrow64 returns the low 64 bits of v in two's complement.
func Narrow64(v *big.Int) uint64 {
	if v == nil {
		return 0
	}
	if v.Sign() >= 0 && v.IsUint64() {
		return v.Uint64()
	}

	return new(big.Int).And(v, low64Mask).Uint64()
}

// putUint64Unchecked writes v at buf[offset:offset+8] without a bounds check.
// The caller must have established that the range lies inside buf.
func putUint64Unchecked(buf []byte, offset int, v uint64) {
	p := (*[8]byte)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(buf)), offset))
	engine.PutUint64(p[:], v)
}

// mustFit panics unless buf[offset:offset+size] is addressable.
func mustFit(buf []byte, offset, size int) {
	if err := checkFit(buf, offset, size); err != nil {
		panic(err)
	}
}

func checkFit(buf []byte, offset, size int) error {
	if offset < 0 || size < 0 || offset > len(buf) || len(buf)-offset < size {
		return fmt.Errorf("%w: %d bytes at offset %d, buffer length %d",
			errs.ErrShortBuffer, size, offset, len(buf))
	}

	return nil
}
