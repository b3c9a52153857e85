package interfaces

import (
	"errors"
	"fmt"

	"github.com/terassyi/inarpd/pkg/packet/ethernet"
	"golang.org/x/sys/unix"
)

var ErrInvalidName = errors.New("interface name is invalid")

// Iface is a link-layer endpoint bound to one interface.
type Iface interface {
	Name() string
	Recv([]byte) (int, error)
	Send(dst ethernet.HardwareAddress, buf []byte) (int, error)
	Close() error
}

// ValidateName rejects names the kernel cannot hold in an ifreq.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if len(name) >= unix.IFNAMSIZ {
		return fmt.Errorf("%w: '%s' is too long", ErrInvalidName, name)
	}
	return nil
}

// New opens an AF_PACKET socket receiving InARP requests on the interface.
func New(name string, index int) (Iface, error) {
	return newAfPacket(name, index)
}
