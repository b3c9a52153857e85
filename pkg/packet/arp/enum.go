package arp

const ARPHeaderSize int = 8

// PacketSize is the length of an ARP packet carrying Ethernet and IPv4 addresses.
const PacketSize int = ARPHeaderSize + 2*(6+4)

const HARDWARE_ETHERNET HardwareType = 1

const PROTOCOL_IPv4 ProtocolType = 0x0800

// RFC 826, RFC 903 and RFC 2390 operation codes.
const (
	ARP_REQUEST   OperationCode = 0x0001
	ARP_REPLY     OperationCode = 0x0002
	RARP_REQUEST  OperationCode = 0x0003
	RARP_REPLY    OperationCode = 0x0004
	INARP_REQUEST OperationCode = 0x0008
	INARP_REPLY   OperationCode = 0x0009
)
