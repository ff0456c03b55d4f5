package dispatch

import (
	"testing"

	"github.com/endorses/pawcap/pkg/decode"
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tcpFrame() *decode.Frame {
	return &decode.Frame{
		Class: decode.ClassTCP,
		Link:  &layers.Ethernet{},
		IPv4:  &layers.IPv4{},
		TCP:   &layers.TCP{},
	}
}

func udpFrame() *decode.Frame {
	return &decode.Frame{
		Class: decode.ClassUDP,
		Link:  &layers.Ethernet{},
		IPv4:  &layers.IPv4{},
		UDP:   &layers.UDP{},
	}
}

func icmpFrame(class decode.Classification) *decode.Frame {
	return &decode.Frame{
		Class:  class,
		Link:   &layers.Ethernet{},
		IPv4:   &layers.IPv4{},
		ICMPv4: &layers.ICMPv4{},
	}
}

func arpFrame(class decode.Classification) *decode.Frame {
	return &decode.Frame{
		Class: class,
		Link:  &layers.Ethernet{},
		ARP:   &layers.ARP{},
	}
}

func plainIPv4Frame() *decode.Frame {
	return &decode.Frame{
		Class: decode.ClassIPv4,
		Link:  &layers.Ethernet{},
		IPv4:  &layers.IPv4{},
	}
}

func taggedFrame(class decode.Classification) *decode.Frame {
	return &decode.Frame{Class: class, Link: &layers.Ethernet{}}
}

// recorder builds a registry where every registered handler records the key
// it was bound to.
type recorder struct {
	reg   *Registry
	calls []decode.Classification
}

func newRecorder(t *testing.T, keys ...decode.Classification) *recorder {
	t.Helper()
	rec := &recorder{reg: NewRegistry()}
	for _, key := range keys {
		key := key
		require.NoError(t, rec.reg.Register(key, func(_ Session, _ *decode.Frame, _ gopacket.CaptureInfo) {
			rec.calls = append(rec.calls, key)
		}))
	}
	return rec
}

func TestDispatchMostSpecificFirst(t *testing.T) {
	tests := []struct {
		name       string
		keys       []decode.Classification
		frame      *decode.Frame
		wantRan    bool
		wantCalled []decode.Classification
	}{
		{
			name:       "TCP frame hits tcp handler",
			keys:       []decode.Classification{decode.ClassTCP, decode.ClassIPv4, decode.ClassDefault},
			frame:      tcpFrame(),
			wantRan:    true,
			wantCalled: []decode.Classification{decode.ClassTCP},
		},
		{
			name:       "TCP frame without tcp handler falls to generic ipv4",
			keys:       []decode.Classification{decode.ClassUDP, decode.ClassIPv4, decode.ClassDefault},
			frame:      tcpFrame(),
			wantRan:    true,
			wantCalled: []decode.Classification{decode.ClassIPv4},
		},
		{
			name:       "Frame with no transport layer reaches generic ipv4",
			keys:       []decode.Classification{decode.ClassTCP, decode.ClassIPv4},
			frame:      plainIPv4Frame(),
			wantRan:    true,
			wantCalled: []decode.Classification{decode.ClassIPv4},
		},
		{
			name:       "ICMP subtype beats generic icmp",
			keys:       []decode.Classification{decode.ClassICMP, decode.ClassICMPEcho, decode.ClassDefault},
			frame:      icmpFrame(decode.ClassICMPEcho),
			wantRan:    true,
			wantCalled: []decode.Classification{decode.ClassICMPEcho},
		},
		{
			name:       "ICMP subtype without dedicated handler uses generic icmp",
			keys:       []decode.Classification{decode.ClassICMP, decode.ClassDefault},
			frame:      icmpFrame(decode.ClassICMPTimeExceeded),
			wantRan:    true,
			wantCalled: []decode.Classification{decode.ClassICMP},
		},
		{
			name:       "ARP subtype beats generic arp",
			keys:       []decode.Classification{decode.ClassARP, decode.ClassARPRequest},
			frame:      arpFrame(decode.ClassARPRequest),
			wantRan:    true,
			wantCalled: []decode.Classification{decode.ClassARPRequest},
		},
		{
			name:       "ARP frame never reaches ipv4 handler",
			keys:       []decode.Classification{decode.ClassIPv4, decode.ClassDefault},
			frame:      arpFrame(decode.ClassARPReply),
			wantRan:    false,
			wantCalled: []decode.Classification{decode.ClassDefault},
		},
		{
			name:       "IPv6 frame hits its dedicated key",
			keys:       []decode.Classification{decode.ClassIPv6, decode.ClassDefault},
			frame:      taggedFrame(decode.ClassIPv6),
			wantRan:    true,
			wantCalled: []decode.Classification{decode.ClassIPv6},
		},
		{
			name:       "Unmatched frame falls to default",
			keys:       []decode.Classification{decode.ClassTCP, decode.ClassDefault},
			frame:      udpFrame(),
			wantRan:    false,
			wantCalled: []decode.Classification{decode.ClassDefault},
		},
		{
			name:       "Unclassified frame with no default is a no-op",
			keys:       []decode.Classification{decode.ClassTCP},
			frame:      taggedFrame(decode.ClassOther),
			wantRan:    false,
			wantCalled: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder(t, tt.keys...)

			ran := Dispatch(rec.reg, nil, tt.frame, gopacket.CaptureInfo{})

			assert.Equal(t, tt.wantRan, ran)
			assert.Equal(t, tt.wantCalled, rec.calls, "Exactly the expected handler should run")
			assert.LessOrEqual(t, len(rec.calls), 1, "Never more than one handler per frame")
		})
	}
}

func TestDispatchOnlyTCPRegistered(t *testing.T) {
	// One tcp handler, three frames: only the TCP frame invokes it, the
	// others are no-ops without a default handler.
	rec := newRecorder(t, decode.ClassTCP)

	assert.True(t, Dispatch(rec.reg, nil, tcpFrame(), gopacket.CaptureInfo{}))
	assert.False(t, Dispatch(rec.reg, nil, udpFrame(), gopacket.CaptureInfo{}))
	assert.False(t, Dispatch(rec.reg, nil, arpFrame(decode.ClassARPRequest), gopacket.CaptureInfo{}))

	assert.Equal(t, []decode.Classification{decode.ClassTCP}, rec.calls)
}

func TestDispatchNilFrame(t *testing.T) {
	rec := newRecorder(t, decode.ClassDefault)

	ran := Dispatch(rec.reg, nil, nil, gopacket.CaptureInfo{})

	assert.False(t, ran)
	assert.Equal(t, []decode.Classification{decode.ClassDefault}, rec.calls)
}
