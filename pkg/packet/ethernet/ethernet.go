package ethernet

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	HardwareAddressSize int = 6
	HeaderSize          int = 14
)

type HardwareAddress [6]byte

type EtherType uint16

const (
	ETHER_TYPE_IP   EtherType = 0x0800
	ETHER_TYPE_ARP  EtherType = 0x0806
	ETHER_TYPE_IPV6 EtherType = 0x86dd
)

var BroadcastAddress = HardwareAddress{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}

var (
	ErrShortFrame          = errors.New("ethernet frame is too short")
	ErrInvalidHardwareAddr = errors.New("invalid hardware address")
)

type EthernetHeader struct {
	Dst  HardwareAddress
	Src  HardwareAddress
	Type EtherType
}

type EthernetFrame struct {
	Header EthernetHeader
	Data   []byte
}

// String formats the address the way ifconfig does, upper case and colon separated.
func (hwaddr HardwareAddress) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", hwaddr[0], hwaddr[1], hwaddr[2], hwaddr[3], hwaddr[4], hwaddr[5])
}

func (hwaddr HardwareAddress) Bytes() []byte {
	return hwaddr[:]
}

func Address(data []byte) (*HardwareAddress, error) {
	if len(data) < HardwareAddressSize {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHardwareAddr, data)
	}
	addr := &HardwareAddress{}
	copy(addr[:], data[:HardwareAddressSize])
	return addr, nil
}

func (typ EtherType) String() string {
	switch typ {
	case ETHER_TYPE_ARP:
		return "ARP"
	case ETHER_TYPE_IP:
		return "IP"
	case ETHER_TYPE_IPV6:
		return "IPV6"
	default:
		return "UNKNOWN"
	}
}

/*
    0                   1
    0 1 2 3 4 5 6 7 8 9 0 1 2 3
   +-----------+-----------+---+
   |    dst    |    src    |typ|
   +-----------+-----------+---+
*/

// New decodes the 14 byte header and keeps the rest of data as payload.
func New(data []byte) (*EthernetFrame, error) {
	if len(data) < HeaderSize {
		return nil, ErrShortFrame
	}
	frame := &EthernetFrame{}
	copy(frame.Header.Dst[:], data[0:6])
	copy(frame.Header.Src[:], data[6:12])
	frame.Header.Type = EtherType(binary.BigEndian.Uint16(data[12:14]))
	frame.Data = data[HeaderSize:]
	return frame, nil
}

func (eth *EthernetFrame) Payload() []byte {
	return eth.Data
}

func (eth *EthernetFrame) Type() EtherType {
	return eth.Header.Type
}

// Serialize writes the header followed by the payload. No padding is added,
// the caller decides the frame length.
func (eth *EthernetFrame) Serialize() []byte {
	frame := make([]byte, HeaderSize+len(eth.Data))
	copy(frame[0:6], eth.Header.Dst[:])
	copy(frame[6:12], eth.Header.Src[:])
	binary.BigEndian.PutUint16(frame[12:14], uint16(eth.Header.Type))
	copy(frame[HeaderSize:], eth.Data)
	return frame
}

func Build(src, dst HardwareAddress, typ EtherType, data []byte) *EthernetFrame {
	header := EthernetHeader{
		Src:  src,
		Dst:  dst,
		Type: typ,
	}
	return &EthernetFrame{
		Header: header,
		Data:   data,
	}
}
