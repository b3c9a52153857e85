package arp

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/terassyi/inarpd/pkg/packet/ethernet"
	"github.com/terassyi/inarpd/pkg/packet/ipv4"
)

var ErrShortPacket = errors.New("arp packet is too short")

type Header struct {
	HardwareType HardwareType
	ProtocolType ProtocolType
	HardwareSize uint8
	ProtocolSize uint8
	OpCode       OperationCode
}

// Packet is an ARP packet for Ethernet hardware and IPv4 protocol addresses.
type Packet struct {
	Header                Header
	SourceHardwareAddress ethernet.HardwareAddress
	SourceProtocolAddress ipv4.IPAddress
	TargetHardwareAddress ethernet.HardwareAddress
	TargetProtocolAddress ipv4.IPAddress
}

type HardwareType uint16
type ProtocolType uint16
type OperationCode uint16

func (op OperationCode) String() string {
	switch op {
	case ARP_REQUEST:
		return "(REQUEST)"
	case ARP_REPLY:
		return "(REPLY)"
	case RARP_REQUEST:
		return "(RARP REQUEST)"
	case RARP_REPLY:
		return "(RARP REPLY)"
	case INARP_REQUEST:
		return "(InARP REQUEST)"
	case INARP_REPLY:
		return "(InARP REPLY)"
	default:
		return fmt.Sprintf("(UNKNOWN %d)", uint16(op))
	}
}

/*
    0                   1                   2                   3
    0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1 2 3 4 5 6 7 8 9 0 1
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |         Hardware Type         |         Protocol Type         |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |    HW Size    |  Proto Size   |           Operation           |
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |      Sender Hardware Address (6) | Sender Protocol Address (4)|
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
   |      Target Hardware Address (6) | Target Protocol Address (4)|
   +-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+-+
*/

// New decodes data as an Ethernet/IPv4 ARP packet. The size fields are read
// but not enforced; the address block is always taken at the 6/4 offsets.
func New(data []byte) (*Packet, error) {
	if len(data) < PacketSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrShortPacket, len(data))
	}
	p := &Packet{
		Header: Header{
			HardwareType: HardwareType(binary.BigEndian.Uint16(data[0:2])),
			ProtocolType: ProtocolType(binary.BigEndian.Uint16(data[2:4])),
			HardwareSize: data[4],
			ProtocolSize: data[5],
			OpCode:       OperationCode(binary.BigEndian.Uint16(data[6:8])),
		},
	}
	copy(p.SourceHardwareAddress[:], data[8:14])
	copy(p.SourceProtocolAddress[:], data[14:18])
	copy(p.TargetHardwareAddress[:], data[18:24])
	copy(p.TargetProtocolAddress[:], data[24:28])
	return p, nil
}

func (arp *Packet) Serialize() []byte {
	b := make([]byte, PacketSize)
	binary.BigEndian.PutUint16(b[0:2], uint16(arp.Header.HardwareType))
	binary.BigEndian.PutUint16(b[2:4], uint16(arp.Header.ProtocolType))
	b[4] = arp.Header.HardwareSize
	b[5] = arp.Header.ProtocolSize
	binary.BigEndian.PutUint16(b[6:8], uint16(arp.Header.OpCode))
	copy(b[8:14], arp.SourceHardwareAddress[:])
	copy(b[14:18], arp.SourceProtocolAddress[:])
	copy(b[18:24], arp.TargetHardwareAddress[:])
	copy(b[24:28], arp.TargetProtocolAddress[:])
	return b
}

func newPacket(op OperationCode, srcHardwareAddress ethernet.HardwareAddress, srcProtocolAddress ipv4.IPAddress, targetHardwareAddress ethernet.HardwareAddress, targetProtocolAddress ipv4.IPAddress) *Packet {
	return &Packet{
		Header: Header{
			HardwareType: HARDWARE_ETHERNET,
			ProtocolType: PROTOCOL_IPv4,
			HardwareSize: uint8(ethernet.HardwareAddressSize),
			ProtocolSize: uint8(ipv4.AddressSize),
			OpCode:       op,
		},
		SourceHardwareAddress: srcHardwareAddress,
		SourceProtocolAddress: srcProtocolAddress,
		TargetHardwareAddress: targetHardwareAddress,
		TargetProtocolAddress: targetProtocolAddress,
	}
}

// InverseRequest asks the station at targetHardwareAddress for its protocol address.
func InverseRequest(srcHardwareAddress ethernet.HardwareAddress, srcProtocolAddress ipv4.IPAddress, targetHardwareAddress ethernet.HardwareAddress) *Packet {
	return newPacket(INARP_REQUEST, srcHardwareAddress, srcProtocolAddress, targetHardwareAddress, ipv4.IPAddress{})
}

// InverseReply answers an InARP request. The responder is the sender, the
// requester's addresses are echoed as the target.
func InverseReply(srcHardwareAddress ethernet.HardwareAddress, srcProtocolAddress ipv4.IPAddress, targetHardwareAddress ethernet.HardwareAddress, targetProtocolAddress ipv4.IPAddress) *Packet {
	return newPacket(INARP_REPLY, srcHardwareAddress, srcProtocolAddress, targetHardwareAddress, targetProtocolAddress)
}
