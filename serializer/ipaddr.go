package serializer

import (
	"fmt"
	"net"
	"net/netip"

	"github.com/lwes/lwes-go/errs"
)

// PutIPv4 writes the four octets of an IPv4 address in reverse order:
// 10.0.0.1 is stored as 01 00 00 0A. Readers of the format depend on this order.
func PutIPv4(octets [4]byte, buf []byte, offset int) int {
	_ = buf[offset+3]
	buf[offset+3] = octets[0]
	buf[offset+2] = octets[1]
	buf[offset+1] = octets[2]
	buf[offset] = octets[3]

	return 4
}

// PutIPAddr writes addr with PutIPv4. IPv4-mapped IPv6 addresses are accepted;
// any other address fails with errs.ErrNotIPv4.
func PutIPAddr(addr netip.Addr, buf []byte, offset int) (int, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return 0, fmt.Errorf("%w: %v", errs.ErrNotIPv4, addr)
	}

	return PutIPv4(addr.As4(), buf, offset), nil
}

// PutNetIP is PutIPAddr for net.IP values.
func PutNetIP(ip net.IP, buf []byte, offset int) (int, error) {
	v4 := ip.To4()
	if v4 == nil {
		return 0, fmt.Errorf("%w: %v", errs.ErrNotIPv4, ip)
	}

	return PutIPv4([4]byte(v4), buf, offset), nil
}
