package serializer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lwes/lwes-go/charset"
	"github.com/lwes/lwes-go/errs"
)

func TestPutString_Empty(t *testing.T) {
	buf := []byte{0xAA, 0xAA, 0xAA}
	require.Equal(t, 2, PutString("", buf, 0, charset.UTF8))
	require.Equal(t, []byte{0x00, 0x00, 0xAA}, buf)
}

func TestPutString(t *testing.T) {
	tests := []struct {
		name string
		s    string
		enc  charset.ID
		want []byte
	}{
		{"ascii", "abc", charset.UTF8, []byte{0x00, 0x03, 'a', 'b', 'c'}},
		{"utf8 multibyte counts bytes", "é", charset.UTF8, []byte{0x00, 0x02, 0xC3, 0xA9}},
		{"latin1", "é", charset.ISO8859_1, []byte{0x00, 0x01, 0xE9}},
		{"latin1 unmappable", "日", charset.ISO8859_1, []byte{0x00, 0x01, '?'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := make([]byte, len(tt.want)+2)
			n := PutString(tt.s, buf, 1, tt.enc)
			require.Equal(t, len(tt.want), n)
			require.Equal(t, tt.want, buf[1:1+n])
			require.Zero(t, buf[0])
			require.Zero(t, buf[len(buf)-1])
		})
	}
}

func TestPutString_LengthBoundary(t *testing.T) {
	t.Run("65534 bytes fits", func(t *testing.T) {
		s := strings.Repeat("a", 65534)
		buf := make([]byte, 65536)
		n := PutString(s, buf, 0, charset.UTF8)
		require.Equal(t, 65536, n)
		require.Equal(t, []byte{0xFF, 0xFE}, buf[:2])
		require.Equal(t, s, string(buf[2:]))
	})

	t.Run("65535 bytes is rejected", func(t *testing.T) {
		s := strings.Repeat("a", 65535)
		buf := bytes.Repeat([]byte{0xAA}, 65540)
		require.Equal(t, 0, PutString(s, buf, 0, charset.UTF8))
		require.Equal(t, bytes.Repeat([]byte{0xAA}, 65540), buf, "nothing is written")
	})

	t.Run("encoded bytes decide, not characters", func(t *testing.T) {
		// 32768 two-byte characters: 65536 bytes in UTF-8, 32768 in Latin-1.
		s := strings.Repeat("é", 32768)
		buf := make([]byte, 32770)
		require.Equal(t, 0, PutString(s, buf, 0, charset.UTF8))
		require.Equal(t, 32770, PutString(s, buf, 0, charset.ISO8859_1))
	})
}

func TestEncodeString_Errors(t *testing.T) {
	buf := make([]byte, 8)

	_, err := EncodeString(strings.Repeat("x", 70000), buf, 0, charset.UTF8)
	require.ErrorIs(t, err, errs.ErrStringTooLong)

	_, err = EncodeString("x", buf, 0, charset.ID(3))
	require.ErrorIs(t, err, errs.ErrUnknownEncoding)
	require.Equal(t, 0, PutString("x", buf, 0, charset.ID(3)))
	require.Equal(t, make([]byte, 8), buf)
}

func TestPutString_ShortBufferPanicsWithoutWriting(t *testing.T) {
	buf := make([]byte, 4)
	require.Panics(t, func() { PutString("hello", buf, 0, charset.UTF8) })
	require.Equal(t, make([]byte, 4), buf)
}

func TestPutEventWord(t *testing.T) {
	buf := make([]byte, 8)
	n := PutEventWord("Ev", buf, 0, charset.UTF8)
	require.Equal(t, 3, n)
	require.Equal(t, []byte{0x02, 'E', 'v'}, buf[:n])

	n = PutEventWord("", buf, 3, charset.UTF8)
	require.Equal(t, 1, n)
	require.Equal(t, byte(0x00), buf[3])
}

func TestPutEventWord_LengthBoundary(t *testing.T) {
	t.Run("255 bytes fits", func(t *testing.T) {
		s := strings.Repeat("w", 255)
		buf := make([]byte, 256)
		require.Equal(t, 256, PutEventWord(s, buf, 0, charset.UTF8))
		require.Equal(t, byte(0xFF), buf[0])
		require.Equal(t, s, string(buf[1:]))
	})

	t.Run("256 bytes is rejected", func(t *testing.T) {
		s := strings.Repeat("w", 256)
		buf := make([]byte, 300)
		require.Equal(t, 0, PutEventWord(s, buf, 0, charset.UTF8))
		require.Equal(t, make([]byte, 300), buf)

		_, err := EncodeEventWord(s, buf, 0, charset.UTF8)
		require.ErrorIs(t, err, errs.ErrStringTooLong)
	})
}

func TestPutAttributeWord(t *testing.T) {
	a := make([]byte, 16)
	b := make([]byte, 16)
	require.Equal(t, PutEventWord("enc", a, 0, charset.UTF8), PutAttributeWord("enc", b, 0, charset.UTF8))
	require.Equal(t, a, b)
}
