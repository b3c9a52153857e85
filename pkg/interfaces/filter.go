package interfaces

import (
	"github.com/terassyi/inarpd/pkg/packet/arp"
	"github.com/terassyi/inarpd/pkg/packet/ethernet"
	"golang.org/x/net/bpf"
	"golang.org/x/sys/unix"
)

const (
	etherTypeOffset    = 12
	arpOperationOffset = uint32(ethernet.HeaderSize) + 6
	snapLength         = 0xffff
)

// inarpFilter passes ARP frames carrying an InARP request and drops the rest.
// Frames still go through full validation in userspace.
var inarpFilter = []bpf.Instruction{
	bpf.LoadAbsolute{Off: etherTypeOffset, Size: 2},
	bpf.JumpIf{Cond: bpf.JumpNotEqual, Val: uint32(ethernet.ETHER_TYPE_ARP), SkipTrue: 3},
	bpf.LoadAbsolute{Off: arpOperationOffset, Size: 2},
	bpf.JumpIf{Cond: bpf.JumpNotEqual, Val: uint32(arp.INARP_REQUEST), SkipTrue: 1},
	bpf.RetConstant{Val: snapLength},
	bpf.RetConstant{Val: 0},
}

func attachFilter(fd int) error {
	raw, err := bpf.Assemble(inarpFilter)
	if err != nil {
		return err
	}
	filter := make([]unix.SockFilter, len(raw))
	for i, ins := range raw {
		filter[i] = unix.SockFilter{
			Code: ins.Op,
			Jt:   ins.Jt,
			Jf:   ins.Jf,
			K:    ins.K,
		}
	}
	prog := &unix.SockFprog{
		Len:    uint16(len(filter)),
		Filter: &filter[0],
	}
	return unix.SetsockoptSockFprog(fd, unix.SOL_SOCKET, unix.SO_ATTACH_FILTER, prog)
}
