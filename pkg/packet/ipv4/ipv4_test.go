package ipv4

import (
	"errors"
	"net"
	"testing"
)

func TestFromIP(t *testing.T) {
	addr, err := FromIP(net.ParseIP("10.0.0.5"))
	if err != nil {
		t.Fatal(err)
	}
	if *addr != (IPAddress{10, 0, 0, 5}) {
		t.Fatalf("actual %s", addr)
	}
	if addr.String() != "10.0.0.5" {
		t.Fatalf("actual %s", addr.String())
	}
	if _, err := FromIP(net.ParseIP("fe80::1")); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("actual %v", err)
	}
}

func TestAddress(t *testing.T) {
	if _, err := Address([]byte{10, 0, 0}); !errors.Is(err, ErrInvalidAddress) {
		t.Fatalf("actual %v", err)
	}
}
