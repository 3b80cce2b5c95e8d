package serializer

import (
	"fmt"

	"github.com/lwes/lwes-go/charset"
	"github.com/lwes/lwes-go/errs"
	"github.com/lwes/lwes-go/format"
)

// PutString writes s encoded with enc behind a UINT16 byte-length prefix.
//
// Returns len+2 on success. When the encoded length is 65535 bytes or more,
// or enc is not a supported encoding, nothing is written and 0 is returned.
// Use EncodeString to learn which.
func PutString(s string, buf []byte, offset int, enc charset.ID) int {
	n, err := EncodeString(s, buf, offset, enc)
	if err != nil {
		return 0
	}

	return n
}

// EncodeString is PutString with the failure reported as an error.
//
// Errors wrap errs.ErrStringTooLong or errs.ErrUnknownEncoding.
func EncodeString(s string, buf []byte, offset int, enc charset.ID) (int, error) {
	n, err := stringLen(s, enc, format.MaxStringLength)
	if err != nil {
		return 0, err
	}
	payload := buf[offset+2 : offset+2+n]

	PutUint16(uint16(n), buf, offset) //nolint:gosec
	if _, err := charset.Encode(payload, s, enc); err != nil {
		return 0, err
	}

	return n + 2, nil
}

// PutEventWord writes s encoded with enc behind a UBYTE byte-length prefix.
//
// Event and attribute names use this form. Returns len+1, or 0 when the
// encoded length exceeds 255 bytes or enc is not supported.
func PutEventWord(s string, buf []byte, offset int, enc charset.ID) int {
	n, err := EncodeEventWord(s, buf, offset, enc)
	if err != nil {
		return 0
	}

	return n
}

// PutAttributeWord writes an attribute name. The wire form is identical to PutEventWord.
func PutAttributeWord(s string, buf []byte, offset int, enc charset.ID) int {
	return PutEventWord(s, buf, offset, enc)
}

// EncodeEventWord is PutEventWord with the failure reported as an error.
func EncodeEventWord(s string, buf []byte, offset int, enc charset.ID) (int, error) {
	n, err := stringLen(s, enc, format.MaxWordLength)
	if err != nil {
		return 0, err
	}
	payload := buf[offset+1 : offset+1+n]

	if _, err := PutUByte(n, buf, offset); err != nil {
		return 0, err
	}
	if _, err := charset.Encode(payload, s, enc); err != nil {
		return 0, err
	}

	return n + 1, nil
}

// stringLen returns the encoded length of s, rejecting lengths above limit.
func stringLen(s string, enc charset.ID, limit int) (int, error) {
	n, err := charset.EncodedLen(s, enc)
	if err != nil {
		return 0, err
	}
	if n > limit {
		return 0, fmt.Errorf("%w: %d bytes, limit %d", errs.ErrStringTooLong, n, limit)
	}

	return n, nil
}
