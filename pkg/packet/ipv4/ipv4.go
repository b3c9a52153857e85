package ipv4

import (
	"errors"
	"fmt"
	"net"
)

const AddressSize int = 4

var ErrInvalidAddress = errors.New("invalid ipv4 address")

// IPAddress holds an IPv4 address in network byte order.
type IPAddress [4]byte

func NewIPAddress(addr []byte) IPAddress {
	return IPAddress{addr[0], addr[1], addr[2], addr[3]}
}

func (ipaddr IPAddress) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", ipaddr[0], ipaddr[1], ipaddr[2], ipaddr[3])
}

func (ipaddr IPAddress) Bytes() []byte {
	return ipaddr[:]
}

func Address(addr []byte) (*IPAddress, error) {
	if len(addr) != AddressSize {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, addr)
	}
	ipaddr := NewIPAddress(addr)
	return &ipaddr, nil
}

// FromIP converts a net.IP, which may be in its 16 byte form, to an IPAddress.
func FromIP(ip net.IP) (*IPAddress, error) {
	v4 := ip.To4()
	if v4 == nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAddress, ip)
	}
	return Address(v4)
}
