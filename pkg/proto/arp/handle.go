package arp

import (
	"fmt"

	"github.com/terassyi/inarpd/logger"
	"github.com/terassyi/inarpd/pkg/interfaces"
	"github.com/terassyi/inarpd/pkg/packet/ethernet"
)

// Responder answers InARP requests arriving on one interface with the
// interface's current IPv4 address.
type Responder struct {
	iface      interfaces.Iface
	querier    interfaces.Querier
	MacAddress ethernet.HardwareAddress
	logger     *logger.Logger
}

func New(iface interfaces.Iface, querier interfaces.Querier, mac ethernet.HardwareAddress, debug bool) *Responder {
	return &Responder{
		iface:      iface,
		querier:    querier,
		MacAddress: mac,
		logger:     logger.New(debug, "inarp").WithField("interface", iface.Name()),
	}
}

// Handle serves requests one at a time until receiving fails.
func (r *Responder) Handle() error {
	buf := make([]byte, FrameSize)
	for {
		n, err := r.iface.Recv(buf)
		if err != nil {
			return fmt.Errorf("error receiving ARP packet: %w", err)
		}
		r.handle(buf[:n])
	}
}

// handle processes one frame. Nothing it runs into is fatal.
func (r *Responder) handle(buf []byte) {
	req, reason := Decode(buf, r.MacAddress)
	if req == nil {
		r.logger.Debugf("drop frame: %s", reason)
		return
	}
	r.logger.Infof("src mac = %s", req.SenderHardwareAddress)
	r.logger.Infof("src ip = %s", req.SenderProtocolAddress)

	ip, err := r.querier.IPv4Address(r.iface.Name())
	if err != nil {
		r.logger.Warnf("drop request from %s: %v", req.SenderProtocolAddress, err)
		return
	}
	reply := Reply(r.MacAddress, ip, req.SenderHardwareAddress, req.SenderProtocolAddress)
	if _, err := r.iface.Send(req.SenderHardwareAddress, reply); err != nil {
		r.logger.Errorf("failure sending InARP reply to %s: %v", req.SenderHardwareAddress, err)
		return
	}
	r.logger.Infof("reply %s to %s", ip, req.SenderProtocolAddress)
}
