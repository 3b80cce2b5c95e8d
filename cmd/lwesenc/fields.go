package main

import (
	"errors"
	"fmt"
	"math/big"
	"net/netip"
	"strconv"
	"strings"

	"github.com/lwes/lwes-go/charset"
	"github.com/lwes/lwes-go/format"
	"github.com/lwes/lwes-go/serializer"
)

// Extra field kinds accepted on the command line besides the format tokens.
const (
	kindUByte = "ubyte"
	kindWord  = "word"
)

// field is one parsed command-line value, sized before anything is written.
type field struct {
	kind   string
	size   int
	narrow bool // uint64 given wider than 64 bits
	put    func(buf []byte, offset int) (int, error)
}

// parseField parses "kind=value", e.g. "uint32=7", "int16[]=1,2,3" or "ip_addr=10.0.0.1".
func parseField(arg string, enc charset.ID) (field, error) {
	kind, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return field{}, fmt.Errorf("field %q: expected kind=value", arg)
	}

	switch kind {
	case kindUByte:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}

		return field{kind: kind, size: 1, put: func(buf []byte, off int) (int, error) {
			return serializer.PutUByte(v, buf, off)
		}}, nil
	case kindWord:
		size, err := serializer.EventWordSize(raw, enc)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}

		return field{kind: kind, size: size, put: func(buf []byte, off int) (int, error) {
			return serializer.EncodeEventWord(raw, buf, off, enc)
		}}, nil
	}

	typ, ok := format.Lookup(kind)
	if !ok {
		return field{}, fmt.Errorf("field %q: unknown kind %q", arg, kind)
	}
	if typ.IsArray() {
		return parseArray(arg, typ, raw, enc)
	}

	return parseScalar(arg, typ, raw, enc)
}

func parseScalar(arg string, typ format.FieldType, raw string, enc charset.ID) (field, error) {
	f := field{kind: typ.String(), size: typ.FixedSize()}

	switch typ {
	case format.TypeBoolean:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutBoolean(v, buf, off) })
	case format.TypeByte:
		v, err := strconv.ParseUint(raw, 0, 8)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutByte(byte(v), buf, off) })
	case format.TypeInt16:
		v, err := strconv.ParseInt(raw, 0, 16)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutInt16(int16(v), buf, off) })
	case format.TypeUint16:
		v, err := strconv.ParseUint(raw, 0, 16)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutUint16(uint16(v), buf, off) })
	case format.TypeInt32:
		v, err := strconv.ParseInt(raw, 0, 32)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutInt32(int32(v), buf, off) })
	case format.TypeUint32:
		v, err := strconv.ParseUint(raw, 0, 32)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutUint32(uint32(v), buf, off) })
	case format.TypeInt64:
		v, err := strconv.ParseInt(raw, 0, 64)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutInt64(v, buf, off) })
	case format.TypeUint64:
		v, err := strconv.ParseUint(raw, 0, 64)
		if err == nil {
			f.put = fixed(func(buf []byte, off int) int { return serializer.PutUint64(v, buf, off) })
			break
		}
		if !errors.Is(err, strconv.ErrRange) {
			return field{}, fieldErr(arg, err)
		}
		wide, ok := new(big.Int).SetString(raw, 0)
		if !ok {
			return field{}, fieldErr(arg, err)
		}
		f.narrow = true
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutUint64Narrowed(wide, buf, off) })
	case format.TypeIPAddr:
		addr, err := netip.ParseAddr(raw)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = func(buf []byte, off int) (int, error) { return serializer.PutIPAddr(addr, buf, off) }
	case format.TypeString:
		size, err := serializer.StringSize(raw, enc)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.size = size
		f.put = func(buf []byte, off int) (int, error) { return serializer.EncodeString(raw, buf, off, enc) }
	default:
		return field{}, fmt.Errorf("field %q: unsupported kind %s", arg, typ)
	}

	return f, nil
}

func parseArray(arg string, typ format.FieldType, raw string, enc charset.ID) (field, error) {
	var items []string
	if raw != "" {
		items = strings.Split(raw, ",")
	}
	if len(items) > format.MaxArrayLength {
		return field{}, fmt.Errorf("field %q: %d elements exceeds %d", arg, len(items), format.MaxArrayLength)
	}

	f := field{kind: typ.String()}
	if typ == format.TypeStringArray {
		size, err := serializer.StringArraySize(items, enc)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.size = size
		f.put = func(buf []byte, off int) (int, error) {
			return serializer.EncodeStringArray(items, buf, off, enc)
		}

		return f, nil
	}

	size, err := serializer.ArraySize(typ, len(items))
	if err != nil {
		return field{}, fieldErr(arg, err)
	}
	f.size = size

	switch typ.ElementType() {
	case format.TypeBoolean:
		vs, err := parseEach(items, strconv.ParseBool)
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutBooleanArray(vs, buf, off) })
	case format.TypeByte:
		vs, err := parseEach(items, func(s string) (byte, error) {
			v, err := strconv.ParseUint(s, 0, 8)
			return byte(v), err
		})
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutByteArray(vs, buf, off) })
	case format.TypeInt16:
		vs, err := parseEach(items, func(s string) (int16, error) {
			v, err := strconv.ParseInt(s, 0, 16)
			return int16(v), err
		})
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutInt16Array(vs, buf, off) })
	case format.TypeUint16:
		vs, err := parseEach(items, func(s string) (uint16, error) {
			v, err := strconv.ParseUint(s, 0, 16)
			return uint16(v), err
		})
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutUint16Array(vs, buf, off) })
	case format.TypeInt32:
		vs, err := parseEach(items, func(s string) (int32, error) {
			v, err := strconv.ParseInt(s, 0, 32)
			return int32(v), err
		})
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutInt32Array(vs, buf, off) })
	case format.TypeUint32:
		vs, err := parseEach(items, func(s string) (uint32, error) {
			v, err := strconv.ParseUint(s, 0, 32)
			return uint32(v), err
		})
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutUint32Array(vs, buf, off) })
	case format.TypeInt64:
		vs, err := parseEach(items, func(s string) (int64, error) { return strconv.ParseInt(s, 0, 64) })
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutInt64Array(vs, buf, off) })
	case format.TypeUint64:
		vs, err := parseEach(items, func(s string) (uint64, error) { return strconv.ParseUint(s, 0, 64) })
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutUint64Array(vs, buf, off) })
	case format.TypeIPAddr:
		vs, err := parseEach(items, func(s string) ([4]byte, error) {
			addr, err := netip.ParseAddr(s)
			if err != nil {
				return [4]byte{}, err
			}
			addr = addr.Unmap()
			if !addr.Is4() {
				return [4]byte{}, fmt.Errorf("%s is not IPv4", s)
			}

			return addr.As4(), nil
		})
		if err != nil {
			return field{}, fieldErr(arg, err)
		}
		f.put = fixed(func(buf []byte, off int) int { return serializer.PutIPv4Array(vs, buf, off) })
	default:
		return field{}, fmt.Errorf("field %q: unsupported kind %s", arg, typ)
	}

	return f, nil
}

func parseEach[T any](items []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(items))
	for _, s := range items {
		v, err := parse(strings.TrimSpace(s))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}

	return out, nil
}

func fixed(put func(buf []byte, off int) int) func([]byte, int) (int, error) {
	return func(buf []byte, off int) (int, error) {
		return put(buf, off), nil
	}
}

func fieldErr(arg string, err error) error {
	return fmt.Errorf("field %q: %w", arg, err)
}
