package arp

import (
	"github.com/terassyi/inarpd/pkg/packet/arp"
	"github.com/terassyi/inarpd/pkg/packet/ethernet"
	"github.com/terassyi/inarpd/pkg/packet/ipv4"
)

// FrameSize is an Ethernet header without FCS followed by an Ethernet/IPv4 ARP packet.
const FrameSize int = ethernet.HeaderSize + arp.PacketSize

// Request holds what the responder needs from an accepted InARP request.
type Request struct {
	SenderHardwareAddress ethernet.HardwareAddress
	SenderProtocolAddress ipv4.IPAddress
}

// RejectReason tells why Decode dropped a frame.
type RejectReason int

const (
	Accepted RejectReason = iota
	ShortFrame
	NotInverseRequest
	NotForUs
)

func (r RejectReason) String() string {
	switch r {
	case Accepted:
		return "accepted"
	case ShortFrame:
		return "short frame"
	case NotInverseRequest:
		return "not an InARP request"
	case NotForUs:
		return "destination is not us"
	default:
		return "unknown"
	}
}

// Decode classifies buf. Checks run in order, length, then operation, then
// the Ethernet destination, and the first failure rejects. A nil Request is
// returned for every rejected frame.
func Decode(buf []byte, local ethernet.HardwareAddress) (*Request, RejectReason) {
	if len(buf) < FrameSize {
		return nil, ShortFrame
	}
	frame, err := ethernet.New(buf)
	if err != nil {
		return nil, ShortFrame
	}
	packet, err := arp.New(frame.Payload())
	if err != nil {
		return nil, ShortFrame
	}
	if packet.Header.OpCode != arp.INARP_REQUEST {
		return nil, NotInverseRequest
	}
	if frame.Header.Dst != local {
		return nil, NotForUs
	}
	return &Request{
		SenderHardwareAddress: packet.SourceHardwareAddress,
		SenderProtocolAddress: packet.SourceProtocolAddress,
	}, Accepted
}

// Reply builds the complete InARP reply frame sent from local to peer.
func Reply(localMac ethernet.HardwareAddress, localIp ipv4.IPAddress, peerMac ethernet.HardwareAddress, peerIp ipv4.IPAddress) []byte {
	packet := arp.InverseReply(localMac, localIp, peerMac, peerIp)
	return ethernet.Build(localMac, peerMac, ethernet.ETHER_TYPE_ARP, packet.Serialize()).Serialize()
}
