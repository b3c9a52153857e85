package interfaces

import (
	"github.com/jsimonetti/rtnetlink"
	"github.com/terassyi/inarpd/pkg/packet/ipv4"
	"golang.org/x/sys/unix"
)

func netlinkIPv4Address(index int) (ipv4.IPAddress, error) {
	conn, err := rtnetlink.Dial(nil)
	if err != nil {
		return ipv4.IPAddress{}, err
	}
	defer conn.Close()
	msgs, err := conn.Address.List()
	if err != nil {
		return ipv4.IPAddress{}, err
	}
	return firstIPv4Address(msgs, index)
}

// firstIPv4Address picks the first IPv4 address of the link in kernel order,
// which puts primary addresses before secondaries.
func firstIPv4Address(msgs []rtnetlink.AddressMessage, index int) (ipv4.IPAddress, error) {
	for _, msg := range msgs {
		if msg.Index != uint32(index) || msg.Family != unix.AF_INET || msg.Attributes == nil {
			continue
		}
		ip := msg.Attributes.Local
		if ip == nil {
			ip = msg.Attributes.Address
		}
		addr, err := ipv4.FromIP(ip)
		if err != nil {
			continue
		}
		return *addr, nil
	}
	return ipv4.IPAddress{}, ErrNoIPv4Address
}
