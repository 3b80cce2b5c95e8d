// Package charset holds the closed table of character encodings a string
// field may be written with.
//
// Callers select an encoding by its small integer ID rather than by passing an
// encoding object, so the ID can travel inside configuration and on the wire
// unchanged. Length prefixes always count encoded bytes, never characters.
package charset

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/lwes/lwes-go/errs"
)

// ID indexes the supported encoding table.
type ID int16

const (
	ISO8859_1 ID = 0 // ISO8859_1 is Latin-1, one byte per character.
	UTF8      ID = 1 // UTF8 is UTF-8.

	// Default is the encoding used when a caller does not choose one.
	Default = UTF8
)

// Unmappable characters are written as this byte in single-byte encodings.
const replacementByte = '?'

var names = [...]string{
	ISO8859_1: "ISO-8859-1",
	UTF8:      "UTF-8",
}

func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int16(id))
	}

	return names[id]
}

// Valid reports whether id is in the supported table.
func (id ID) Valid() bool {
	return id >= 0 && int(id) < len(names)
}

// Lookup resolves an encoding name, ignoring case. "latin1" and "utf8" are accepted as aliases.
func Lookup(name string) (ID, bool) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "ISO-8859-1", "ISO8859-1", "ISO_8859_1", "LATIN1":
		return ISO8859_1, true
	case "UTF-8", "UTF8":
		return UTF8, true
	default:
		return 0, false
	}
}

// Encoding returns the x/text encoding backing id.
func Encoding(id ID) (encoding.Encoding, error) {
	switch id {
	case ISO8859_1:
		return charmap.ISO8859_1, nil
	case UTF8:
		return unicode.UTF8, nil
	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownEncoding, int16(id))
	}
}

// EncodedLen returns the number of bytes s occupies once encoded with id.
func EncodedLen(s string, id ID) (int, error) {
	switch id {
	case ISO8859_1:
		return utf8.RuneCountInString(s), nil
	case UTF8:
		if utf8.ValidString(s) {
			return len(s), nil
		}
		fixed, err := repairUTF8(s)
		if err != nil {
			return 0, err
		}

		return len(fixed), nil
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrUnknownEncoding, int16(id))
	}
}

// Encode writes s encoded with id into dst and returns the number of bytes written.
//
// dst must hold at least EncodedLen(s, id) bytes; nothing is written otherwise.
func Encode(dst []byte, s string, id ID) (int, error) {
	switch id {
	case ISO8859_1:
		n := utf8.RuneCountInString(s)
		if len(dst) < n {
			return 0, shortBuffer(len(dst), n)
		}
		i := 0
		for _, r := range s {
			b, ok := charmap.ISO8859_1.EncodeRune(r)
			if !ok {
				b = replacementByte
			}
			dst[i] = b
			i++
		}

		return i, nil
	case UTF8:
		if !utf8.ValidString(s) {
			fixed, err := repairUTF8(s)
			if err != nil {
				return 0, err
			}
			s = fixed
		}
		if len(dst) < len(s) {
			return 0, shortBuffer(len(dst), len(s))
		}

		return copy(dst, s), nil
	default:
		return 0, fmt.Errorf("%w: %d", errs.ErrUnknownEncoding, int16(id))
	}
}

// Bytes returns s encoded with id in a newly allocated slice.
func Bytes(s string, id ID) ([]byte, error) {
	n, err := EncodedLen(s, id)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if _, err := Encode(out, s, id); err != nil {
		return nil, err
	}

	return out, nil
}

// repairUTF8 replaces ill-formed sequences with U+FFFD.
func repairUTF8(s string) (string, error) {
	fixed, err := unicode.UTF8.NewEncoder().String(s)
	if err != nil {
		return "", fmt.Errorf("utf-8 encode: %w", err)
	}

	return fixed, nil
}

func shortBuffer(have, need int) error {
	return fmt.Errorf("%w: have %d bytes, need %d", errs.ErrShortBuffer, have, need)
}
