// Package format defines the type tokens and length limits of the lwes wire format.
package format

type FieldType uint8

const (
	TypeUint16  FieldType = 0x01 // TypeUint16 is a 2-byte unsigned integer.
	TypeInt16   FieldType = 0x02 // TypeInt16 is a 2-byte signed integer.
	TypeUint32  FieldType = 0x03 // TypeUint32 is a 4-byte unsigned integer.
	TypeInt32   FieldType = 0x04 // TypeInt32 is a 4-byte signed integer.
	TypeString  FieldType = 0x05 // TypeString is a UINT16 length-prefixed string.
	TypeIPAddr  FieldType = 0x06 // TypeIPAddr is a 4-byte IPv4 address, octets reversed.
	TypeInt64   FieldType = 0x07 // TypeInt64 is an 8-byte signed integer.
	TypeUint64  FieldType = 0x08 // TypeUint64 is an 8-byte unsigned integer.
	TypeBoolean FieldType = 0x09 // TypeBoolean is a single 0x00/0x01 byte.
	TypeByte    FieldType = 0x0A // TypeByte is a single raw byte.

	TypeUint16Array  FieldType = 0x81
	TypeInt16Array   FieldType = 0x82
	TypeUint32Array  FieldType = 0x83
	TypeInt32Array   FieldType = 0x84
	TypeStringArray  FieldType = 0x85
	TypeIPAddrArray  FieldType = 0x86
	TypeInt64Array   FieldType = 0x87
	TypeUint64Array  FieldType = 0x88
	TypeBooleanArray FieldType = 0x89
	TypeByteArray    FieldType = 0x8A

	arrayFlag FieldType = 0x80
)

const (
	// MaxStringLength is the largest encoded byte length a UINT16-prefixed string may have.
	// 65535 itself is rejected.
	MaxStringLength = 65534

	// MaxWordLength is the largest encoded byte length of a UBYTE-prefixed
	// event or attribute name. 255 itself is accepted.
	MaxWordLength = 255

	// MaxArrayLength is the largest element count a UINT16 count prefix can carry.
	MaxArrayLength = 65535

	// UBYTE domain.
	MinUByte = 0
	MaxUByte = 255
)

func (t FieldType) String() string {
	switch t {
	case TypeUint16:
		return "uint16"
	case TypeInt16:
		return "int16"
	case TypeUint32:
		return "uint32"
	case TypeInt32:
		return "int32"
	case TypeString:
		return "string"
	case TypeIPAddr:
		return "ip_addr"
	case TypeInt64:
		return "int64"
	case TypeUint64:
		return "uint64"
	case TypeBoolean:
		return "boolean"
	case TypeByte:
		return "byte"
	}

	if t.IsArray() && t.ElementType().Valid() {
		return t.ElementType().String() + "[]"
	}

	return "Unknown"
}

// Valid reports whether t is a known scalar or array token.
func (t FieldType) Valid() bool {
	base := t &^ arrayFlag
	return base >= TypeUint16 && base <= TypeByte
}

// IsArray reports whether t is an array token.
func (t FieldType) IsArray() bool {
	return t&arrayFlag != 0
}

// ArrayOf returns the array token whose elements are of type t.
// Array tokens are returned unchanged.
func (t FieldType) ArrayOf() FieldType {
	return t | arrayFlag
}

// ElementType returns the element token of an array token, or t itself for scalars.
func (t FieldType) ElementType() FieldType {
	return t &^ arrayFlag
}

// FixedSize returns the encoded width in bytes of a scalar token,
// or -1 for strings, arrays and unknown tokens.
func (t FieldType) FixedSize() int {
	switch t {
	case TypeBoolean, TypeByte:
		return 1
	case TypeUint16, TypeInt16:
		return 2
	case TypeUint32, TypeInt32, TypeIPAddr:
		return 4
	case TypeUint64, TypeInt64:
		return 8
	default:
		return -1
	}
}

// Lookup resolves a token name as returned by String.
func Lookup(name string) (FieldType, bool) {
	t, ok := byName[name]
	return t, ok
}

var byName = func() map[string]FieldType {
	m := make(map[string]FieldType, 20)
	for t := TypeUint16; t <= TypeByte; t++ {
		m[t.String()] = t
		m[t.ArrayOf().String()] = t.ArrayOf()
	}

	return m
}()
