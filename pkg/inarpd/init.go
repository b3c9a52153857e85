package inarpd

import (
	"github.com/terassyi/inarpd/ioctl"
	"github.com/terassyi/inarpd/logger"
	"github.com/terassyi/inarpd/pkg/interfaces"
	"github.com/terassyi/inarpd/pkg/proto/arp"
	"golang.org/x/sys/unix"
)

// Init resolves the interface and opens the link-layer socket. The returned
// Iface must be closed by the caller once the responder stops.
func Init(name string, debug bool) (*arp.Responder, interfaces.Iface, error) {
	return initWith(name, interfaces.NewQuerier(), debug)
}

func initWith(name string, querier interfaces.Querier, debug bool) (*arp.Responder, interfaces.Iface, error) {
	if err := interfaces.ValidateName(name); err != nil {
		return nil, nil, err
	}
	l := logger.New(debug, "inarp").WithField("interface", name)

	mac, err := querier.HardwareAddress(name)
	if err != nil {
		return nil, nil, err
	}
	l.Infof("%s MAC address: %s", name, mac)

	index, err := querier.Index(name)
	if err != nil {
		return nil, nil, err
	}
	l.Debugf("%s index: %d", name, index)

	if flags, err := ioctl.Siocgifflags(name); err == nil && flags&unix.IFF_UP == 0 {
		l.Warnf("%s is not up", name)
	}

	iface, err := interfaces.New(name, index)
	if err != nil {
		return nil, nil, err
	}
	return arp.New(iface, querier, mac, debug), iface, nil
}
