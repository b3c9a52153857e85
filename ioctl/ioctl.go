package ioctl

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

var ErrUnknownFamily = errors.New("unknown address family")

type sockaddr struct {
	family uint16
	addr   [14]byte
}

type sockaddrInet4 struct {
	family uint16
	port   [2]byte
	addr   [4]byte
	zero   [8]byte
}

func ioctl(req uint, ifreq unsafe.Pointer) error {
	soc, err := unix.Socket(unix.AF_INET, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, 0)
	if err != nil {
		return err
	}
	defer unix.Close(soc)
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(soc), uintptr(req), uintptr(ifreq)); errno != 0 {
		return errno
	}
	return nil
}

func Siocgifindex(name string) (int32, error) {
	ifreq := struct {
		name  [unix.IFNAMSIZ]byte
		index int32
		_pad  [20]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if err := ioctl(unix.SIOCGIFINDEX, unsafe.Pointer(&ifreq)); err != nil {
		return 0, err
	}
	return ifreq.index, nil
}

func Siocgifflags(name string) (uint16, error) {
	ifreq := struct {
		name  [unix.IFNAMSIZ]byte
		flags uint16
		_pad  [22]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if err := ioctl(unix.SIOCGIFFLAGS, unsafe.Pointer(&ifreq)); err != nil {
		return 0, err
	}
	return ifreq.flags, nil
}

// Siocgifhwaddr returns the six byte link-layer address of the interface.
func Siocgifhwaddr(name string) ([]byte, error) {
	ifreq := struct {
		name [unix.IFNAMSIZ]byte
		addr sockaddr
		_pad [8]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if err := ioctl(unix.SIOCGIFHWADDR, unsafe.Pointer(&ifreq)); err != nil {
		return nil, err
	}
	return ifreq.addr.addr[:6], nil
}

// Siocgifaddr returns the IPv4 address labelled with name. The kernel answers
// EADDRNOTAVAIL when the interface has no such address.
func Siocgifaddr(name string) ([]byte, error) {
	ifreq := struct {
		name [unix.IFNAMSIZ]byte
		addr sockaddrInet4
		_pad [8]byte
	}{}
	copy(ifreq.name[:unix.IFNAMSIZ-1], name)
	if err := ioctl(unix.SIOCGIFADDR, unsafe.Pointer(&ifreq)); err != nil {
		return nil, err
	}
	if ifreq.addr.family != unix.AF_INET {
		return nil, fmt.Errorf("%w %d", ErrUnknownFamily, ifreq.addr.family)
	}
	return ifreq.addr.addr[:], nil
}
