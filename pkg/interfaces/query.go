package interfaces

import (
	"errors"
	"fmt"

	"github.com/terassyi/inarpd/ioctl"
	"github.com/terassyi/inarpd/pkg/packet/ethernet"
	"github.com/terassyi/inarpd/pkg/packet/ipv4"
	"golang.org/x/sys/unix"
)

var ErrNoIPv4Address = errors.New("no IPv4 address assigned to the interface")

// Querier reads the current configuration of a network interface. Nothing is
// cached, every call goes to the kernel.
type Querier interface {
	HardwareAddress(name string) (ethernet.HardwareAddress, error)
	IPv4Address(name string) (ipv4.IPAddress, error)
	Index(name string) (int, error)
}

type querier struct {
	// netlink looks up an IPv4 address by link index when the ioctl finds none.
	netlink func(index int) (ipv4.IPAddress, error)
}

func NewQuerier() Querier {
	return &querier{netlink: netlinkIPv4Address}
}

func (q *querier) HardwareAddress(name string) (ethernet.HardwareAddress, error) {
	b, err := ioctl.Siocgifhwaddr(name)
	if err != nil {
		return ethernet.HardwareAddress{}, fmt.Errorf("query %s hardware address: %w", name, err)
	}
	addr, err := ethernet.Address(b)
	if err != nil {
		return ethernet.HardwareAddress{}, err
	}
	return *addr, nil
}

func (q *querier) Index(name string) (int, error) {
	index, err := ioctl.Siocgifindex(name)
	if err != nil {
		return 0, fmt.Errorf("query %s index: %w", name, err)
	}
	return int(index), nil
}

// IPv4Address returns the address SIOCGIFADDR reports for name. SIOCGIFADDR
// only sees addresses labelled with the interface name, so when it answers
// EADDRNOTAVAIL the address list is read over rtnetlink instead.
func (q *querier) IPv4Address(name string) (ipv4.IPAddress, error) {
	b, err := ioctl.Siocgifaddr(name)
	if err == nil {
		addr, err := ipv4.Address(b)
		if err != nil {
			return ipv4.IPAddress{}, err
		}
		return *addr, nil
	}
	if !errors.Is(err, unix.EADDRNOTAVAIL) || q.netlink == nil {
		return ipv4.IPAddress{}, fmt.Errorf("query %s ipv4 address: %w", name, err)
	}
	index, err := q.Index(name)
	if err != nil {
		return ipv4.IPAddress{}, err
	}
	addr, err := q.netlink(index)
	if err != nil {
		return ipv4.IPAddress{}, fmt.Errorf("query %s ipv4 address: %w", name, err)
	}
	return addr, nil
}
