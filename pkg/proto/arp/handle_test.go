package arp

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terassyi/inarpd/pkg/packet/arp"
	"github.com/terassyi/inarpd/pkg/packet/ethernet"
	"github.com/terassyi/inarpd/pkg/packet/ipv4"
)

var errDown = errors.New("interface down")

type sent struct {
	dst   ethernet.HardwareAddress
	frame []byte
}

type fakeIface struct {
	frames  [][]byte
	sent    []sent
	sendErr error
}

func (f *fakeIface) Name() string { return "eth0" }
func (f *fakeIface) Close() error { return nil }

func (f *fakeIface) Recv(buf []byte) (int, error) {
	if len(f.frames) == 0 {
		return 0, errDown
	}
	n := copy(buf, f.frames[0])
	f.frames = f.frames[1:]
	return n, nil
}

func (f *fakeIface) Send(dst ethernet.HardwareAddress, buf []byte) (int, error) {
	if f.sendErr != nil {
		return 0, f.sendErr
	}
	f.sent = append(f.sent, sent{dst: dst, frame: append([]byte(nil), buf...)})
	return len(buf), nil
}

type fakeQuerier struct {
	ips     []ipv4.IPAddress
	err     error
	queries int
}

func (q *fakeQuerier) HardwareAddress(string) (ethernet.HardwareAddress, error) {
	return localMac, nil
}

func (q *fakeQuerier) Index(string) (int, error) { return 2, nil }

func (q *fakeQuerier) IPv4Address(string) (ipv4.IPAddress, error) {
	q.queries++
	if q.err != nil {
		return ipv4.IPAddress{}, q.err
	}
	ip := q.ips[0]
	if len(q.ips) > 1 {
		q.ips = q.ips[1:]
	}
	return ip, nil
}

func TestHandleReplies(t *testing.T) {
	iface := &fakeIface{frames: [][]byte{inverseRequest(localMac, arp.INARP_REQUEST)}}
	querier := &fakeQuerier{ips: []ipv4.IPAddress{localIp}}
	r := New(iface, querier, localMac, false)

	err := r.Handle()
	require.ErrorIs(t, err, errDown)
	require.Len(t, iface.sent, 1)
	assert.Equal(t, peerMac, iface.sent[0].dst)
	assert.Equal(t, Reply(localMac, localIp, peerMac, peerIp), iface.sent[0].frame)
}

func TestHandleIgnoresRejected(t *testing.T) {
	iface := &fakeIface{frames: [][]byte{
		inverseRequest(localMac, arp.ARP_REQUEST),
		inverseRequest(localMac, arp.INARP_REPLY),
		inverseRequest(ethernet.BroadcastAddress, arp.INARP_REQUEST),
		inverseRequest(localMac, arp.INARP_REQUEST)[:20],
	}}
	querier := &fakeQuerier{ips: []ipv4.IPAddress{localIp}}
	r := New(iface, querier, localMac, true)

	require.ErrorIs(t, r.Handle(), errDown)
	assert.Empty(t, iface.sent)
	assert.Zero(t, querier.queries)
}

func TestHandleUnconfiguredAddress(t *testing.T) {
	iface := &fakeIface{frames: [][]byte{
		inverseRequest(localMac, arp.INARP_REQUEST),
		inverseRequest(localMac, arp.INARP_REQUEST),
	}}
	querier := &fakeQuerier{err: errors.New("no IPv4 address assigned to the interface")}
	r := New(iface, querier, localMac, false)

	require.ErrorIs(t, r.Handle(), errDown)
	assert.Empty(t, iface.sent)
	assert.Equal(t, 2, querier.queries)
}

func TestHandleRequeriesAddress(t *testing.T) {
	renewed := ipv4.IPAddress{10, 0, 0, 9}
	iface := &fakeIface{frames: [][]byte{
		inverseRequest(localMac, arp.INARP_REQUEST),
		inverseRequest(localMac, arp.INARP_REQUEST),
	}}
	querier := &fakeQuerier{ips: []ipv4.IPAddress{localIp, renewed}}
	r := New(iface, querier, localMac, false)

	require.ErrorIs(t, r.Handle(), errDown)
	require.Len(t, iface.sent, 2)
	assert.Equal(t, Reply(localMac, localIp, peerMac, peerIp), iface.sent[0].frame)
	assert.Equal(t, Reply(localMac, renewed, peerMac, peerIp), iface.sent[1].frame)
}

func TestHandleSendFailure(t *testing.T) {
	iface := &fakeIface{
		frames: [][]byte{
			inverseRequest(localMac, arp.INARP_REQUEST),
			inverseRequest(localMac, arp.INARP_REQUEST),
		},
		sendErr: errors.New("network is down"),
	}
	querier := &fakeQuerier{ips: []ipv4.IPAddress{localIp}}
	r := New(iface, querier, localMac, false)

	require.ErrorIs(t, r.Handle(), errDown)
	assert.Equal(t, 2, querier.queries)
}
