package serializer

import (
	"github.com/lwes/lwes-go/charset"
)

// Array encoders write a UINT16 element count followed by each element in
// order. The count is len(values) truncated to 16 bits; callers keep arrays
// at or below format.MaxArrayLength elements.

// PutBooleanArray writes each element with PutBoolean.
func PutBooleanArray(values []bool, buf []byte, offset int) int {
	return putArray(values, buf, offset, PutBoolean)
}

// PutByteArray copies values after the count prefix.
func PutByteArray(values []byte, buf []byte, offset int) int {
	n := putCount(len(values), buf, offset)
	n += copy(buf[offset+n:offset+n+len(values)], values)

	return n
}

// PutInt16Array writes each element with PutInt16.
func PutInt16Array(values []int16, buf []byte, offset int) int {
	return putArray(values, buf, offset, PutInt16)
}

// PutUint16Array writes each element with PutUint16.
func PutUint16Array(values []uint16, buf []byte, offset int) int {
	return putArray(values, buf, offset, PutUint16)
}

// PutInt32Array writes each element with PutInt32.
func PutInt32Array(values []int32, buf []byte, offset int) int {
	return putArray(values, buf, offset, PutInt32)
}

// PutUint32Array writes each element with PutUint32.
func PutUint32Array(values []uint32, buf []byte, offset int) int {
	return putArray(values, buf, offset, PutUint32)
}

// PutInt64Array writes each element with PutInt64.
func PutInt64Array(values []int64, buf []byte, offset int) int {
	return putArray(values, buf, offset, PutInt64)
}

// PutUint64Array writes each element with PutUint64.
func PutUint64Array(values []uint64, buf []byte, offset int) int {
	return putArray(values, buf, offset, PutUint64)
}

// PutIPv4Array writes each address with PutIPv4.
func PutIPv4Array(values [][4]byte, buf []byte, offset int) int {
	return putArray(values, buf, offset, PutIPv4)
}

// PutStringArray writes each element with the general string encoding.
//
// All elements are measured before anything is written. If any element is
// too long, or enc is unsupported, nothing is written and 0 is returned.
// Older lwes serializers instead wrote the count and every element that fit,
// skipping the rest, which left a count that no longer matched the elements.
// Arrays of valid strings produce identical bytes either way.
func PutStringArray(values []string, buf []byte, offset int, enc charset.ID) int {
	n, err := EncodeStringArray(values, buf, offset, enc)
	if err != nil {
		return 0
	}

	return n
}

// EncodeStringArray is PutStringArray with the failure reported as an error.
//
// The error names the index of the first element that does not fit; nothing
// is written in that case.
func EncodeStringArray(values []string, buf []byte, offset int, enc charset.ID) (int, error) {
	total, err := StringArraySize(values, enc)
	if err != nil {
		return 0, err
	}
	_ = buf[offset : offset+total]

	n := putCount(len(values), buf, offset)
	for _, s := range values {
		written, err := EncodeString(s, buf, offset+n, enc)
		if err != nil {
			return 0, err
		}
		n += written
	}

	return n, nil
}

func putArray[T any](values []T, buf []byte, offset int, put func(T, []byte, int) int) int {
	n := putCount(len(values), buf, offset)
	for _, v := range values {
		n += put(v, buf, offset+n)
	}

	return n
}

func putCount(count int, buf []byte, offset int) int {
	return PutUint16(uint16(count), buf, offset) //nolint:gosec
}
