package interfaces

import (
	"encoding/binary"
	"errors"
	"fmt"
	"unsafe"

	"github.com/terassyi/inarpd/pkg/packet/ethernet"
	"golang.org/x/sys/unix"
)

type afPacket struct {
	fd       int
	name     string
	index    int
	recvfrom func(fd int, p []byte, flags int) (int, unix.Sockaddr, error)
}

func newAfPacket(name string, index int) (*afPacket, error) {
	fd, err := openPFPacket(name, index)
	if err != nil {
		return nil, err
	}
	return &afPacket{
		fd:       fd,
		name:     name,
		index:    index,
		recvfrom: unix.Recvfrom,
	}, nil
}

func (af *afPacket) Name() string {
	return af.name
}

// Recv blocks until one frame arrives. Reads interrupted by a signal are retried.
func (af *afPacket) Recv(buf []byte) (int, error) {
	for {
		n, _, err := af.recvfrom(af.fd, buf, 0)
		if errors.Is(err, unix.EINTR) {
			continue
		}
		return n, err
	}
}

// Send transmits buf as a complete Ethernet frame addressed to dst.
func (af *afPacket) Send(dst ethernet.HardwareAddress, buf []byte) (int, error) {
	addr := &unix.SockaddrLinklayer{
		Protocol: hton16(uint16(ethernet.ETHER_TYPE_ARP)),
		Ifindex:  af.index,
		Hatype:   unix.ARPHRD_ETHER,
		Pkttype:  unix.PACKET_OTHERHOST,
		Halen:    uint8(ethernet.HardwareAddressSize),
	}
	copy(addr.Addr[:], dst[:])
	if err := unix.Sendto(af.fd, buf, 0, addr); err != nil {
		return 0, err
	}
	return len(buf), nil
}

func (af *afPacket) Close() error {
	return unix.Close(af.fd)
}

func openPFPacket(name string, index int) (int, error) {
	if err := ValidateName(name); err != nil {
		return -1, err
	}
	protocol := hton16(uint16(ethernet.ETHER_TYPE_ARP))
	fd, err := unix.Socket(unix.AF_PACKET, unix.SOCK_RAW|unix.SOCK_CLOEXEC, int(protocol))
	if err != nil {
		return -1, fmt.Errorf("socket open error: %w", err)
	}
	// frames queued before the filter is attached still go through Decode
	if err := attachFilter(fd); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("attach filter error: %w", err)
	}
	addr := &unix.SockaddrLinklayer{
		Protocol: protocol,
		Ifindex:  index,
	}
	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)
		return -1, fmt.Errorf("bind %s error: %w", name, err)
	}
	return fd, nil
}

func hton16(i uint16) uint16 {
	var ret uint16
	binary.BigEndian.PutUint16((*[2]byte)(unsafe.Pointer(&ret))[:], i)
	return ret
}
