package ethernet

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	data := []byte{
		0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
		0x11, 0x22, 0x33, 0x44, 0x55, 0x66,
		0x08, 0x06,
		0x01, 0x02,
	}
	frame, err := New(data)
	if err != nil {
		t.Fatal(err)
	}
	if frame.Header.Dst != (HardwareAddress{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}) {
		t.Fatalf("actual dst %s", frame.Header.Dst)
	}
	if frame.Header.Src != (HardwareAddress{0x11, 0x22, 0x33, 0x44, 0x55, 0x66}) {
		t.Fatalf("actual src %s", frame.Header.Src)
	}
	if frame.Type() != ETHER_TYPE_ARP {
		t.Fatalf("actual type %s", frame.Type())
	}
	if len(frame.Payload()) != 2 {
		t.Fatalf("actual payload length %d", len(frame.Payload()))
	}
}

func TestNewShort(t *testing.T) {
	if _, err := New(make([]byte, HeaderSize-1)); !errors.Is(err, ErrShortFrame) {
		t.Fatalf("actual %v", err)
	}
}

func TestSerialize(t *testing.T) {
	src := HardwareAddress{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	b := Build(src, BroadcastAddress, ETHER_TYPE_IP, []byte{0xde, 0xad}).Serialize()
	if len(b) != HeaderSize+2 {
		t.Fatalf("actual length %d", len(b))
	}
	if b[12] != 0x08 || b[13] != 0x00 {
		t.Fatalf("actual type bytes %x", b[12:14])
	}
	frame, err := New(b)
	if err != nil {
		t.Fatal(err)
	}
	if frame.Header.Src != src || frame.Header.Dst != BroadcastAddress {
		t.Fatalf("actual header %+v", frame.Header)
	}
}

func TestAddress(t *testing.T) {
	addr, err := Address([]byte{0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x00, 0x00})
	if err != nil {
		t.Fatal(err)
	}
	if addr.String() != "0A:0B:0C:0D:0E:0F" {
		t.Fatalf("actual %s", addr)
	}
	if _, err := Address([]byte{0x01}); !errors.Is(err, ErrInvalidHardwareAddr) {
		t.Fatalf("actual %v", err)
	}
}
