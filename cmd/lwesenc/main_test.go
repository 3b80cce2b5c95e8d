package main

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/lwes/lwes-go/charset"
	"github.com/lwes/lwes-go/errs"
)

func newTestCLI(t *testing.T) (*CLI, *bytes.Buffer) {
	t.Helper()

	cli := NewCLI()
	cli.logger = zerolog.New(zerolog.NewTestWriter(t))
	out := &bytes.Buffer{}
	cli.root.SetOut(out)
	cli.root.SetErr(out)

	return cli, out
}

func TestEncode_Hex(t *testing.T) {
	cli, out := newTestCLI(t)
	cli.root.SetArgs([]string{"encode", "uint32=16909060", "int16[]=1,2,3", "ip_addr=10.0.0.1", "string="})

	require.NoError(t, cli.root.Execute())
	require.Equal(t, "01020304"+"0003000100020003"+"0100000a"+"0000\n", out.String())
}

func TestEncode_Raw(t *testing.T) {
	cli, out := newTestCLI(t)
	cli.root.SetArgs([]string{"encode", "--raw", "word=Ev", "boolean=true", "ubyte=255"})

	require.NoError(t, cli.root.Execute())
	require.Equal(t, []byte{0x02, 'E', 'v', 0x01, 0xFF}, out.Bytes())
}

func TestEncode_Latin1(t *testing.T) {
	cli, out := newTestCLI(t)
	cli.root.SetArgs([]string{"encode", "-e", "ISO-8859-1", "string=é"})

	require.NoError(t, cli.root.Execute())
	require.Equal(t, "0001e9\n", out.String())
}

func TestEncode_UnknownEncoding(t *testing.T) {
	cli, _ := newTestCLI(t)
	cli.root.SetArgs([]string{"encode", "-e", "EBCDIC", "string=x"})

	err := cli.root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown encoding")
}

func TestKinds(t *testing.T) {
	cli, out := newTestCLI(t)
	cli.root.SetArgs([]string{"kinds"})

	require.NoError(t, cli.root.Execute())
	kinds := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, kinds, 22)
	require.Contains(t, kinds, "ip_addr[]")
	require.Contains(t, kinds, "ubyte")
}

func TestCLIEncode(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"uint16 zero", []string{"uint16=0"}, "0000"},
		{"int64 negative", []string{"int64=-1"}, "ffffffffffffffff"},
		{"uint64 max", []string{"uint64=18446744073709551615"}, "ffffffffffffffff"},
		{"uint64 narrowed", []string{"uint64=18446744073709551621"}, "0000000000000005"},
		{"hex byte", []string{"byte=0x7f"}, "7f"},
		{"bool array", []string{"boolean[]=true,false"}, "00020100"},
		{"byte array", []string{"byte[]=1,2"}, "00020102"},
		{"uint16 array", []string{"uint16[]=65535"}, "0001ffff"},
		{"int32 array", []string{"int32[]=-1"}, "0001ffffffff"},
		{"uint32 array", []string{"uint32[]=1"}, "000100000001"},
		{"int64 array", []string{"int64[]=2"}, "00010000000000000002"},
		{"uint64 array", []string{"uint64[]=3"}, "00010000000000000003"},
		{"empty array", []string{"int32[]="}, "0000"},
		{"string array", []string{"string[]=a,bc"}, "0002" + "000161" + "00026263"},
		{"ip array", []string{"ip_addr[]=1.2.3.4"}, "000104030201"},
		{"mapped ip", []string{"ip_addr=::ffff:10.0.0.1"}, "0100000a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newTestCLI(t)
			out, err := cli.encode(tt.args, charset.UTF8)
			require.NoError(t, err)
			require.Equal(t, tt.want, hex.EncodeToString(out))
		})
	}
}

func TestCLIEncode_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{"missing equals", []string{"uint16"}, "expected kind=value"},
		{"unknown kind", []string{"float=1.5"}, "unknown kind"},
		{"int16 overflow", []string{"int16=40000"}, "out of range"},
		{"bad bool", []string{"boolean=maybe"}, "invalid syntax"},
		{"ipv6", []string{"ip_addr=::1"}, "not IPv4"},
		{"ipv6 in array", []string{"ip_addr[]=::1"}, "not IPv4"},
		{"word too long", []string{"word=" + strings.Repeat("w", 256)}, "too long"},
		{"bad array element", []string{"uint32[]=1,x"}, "invalid syntax"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, _ := newTestCLI(t)
			_, err := cli.encode(tt.args, charset.UTF8)
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestCLIEncode_UByteOutOfRange(t *testing.T) {
	cli, _ := newTestCLI(t)
	_, err := cli.encode([]string{"ubyte=256"}, charset.UTF8)
	require.ErrorIs(t, err, errs.ErrUByteOutOfRange)
}
