// Package pcaptypes abstracts the capture engine behind a narrow interface
// so sessions drive live devices, replay files, and externally supplied
// handles the same way.
package pcaptypes

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// Stats are the engine's monotonically non-decreasing frame counters.
type Stats struct {
	// Received counts frames seen by the engine.
	Received int
	// Dropped counts frames dropped by the engine's internal buffer.
	Dropped int
	// IfDropped counts frames dropped by the network interface.
	IfDropped int
}

// PacketSource is the capture-engine surface a session drives. io.EOF from
// ReadPacketData signals permanent end of source; ErrReadTimeout signals an
// expired read timeout with no frame.
type PacketSource interface {
	ReadPacketData() (data []byte, ci gopacket.CaptureInfo, err error)
	LinkType() layers.LinkType
	Close()
}

// FilterInstaller is implemented by sources that accept BPF filters.
type FilterInstaller interface {
	SetBPFFilter(filter string) error
}

// StatsProvider is implemented by sources that track engine-side counters.
// Sources without one leave counting to the session.
type StatsProvider interface {
	Stats() (Stats, error)
}

// ErrReadTimeout is returned by ReadPacketData when the configured read
// timeout expires before a frame arrives.
var ErrReadTimeout error = pcap.NextErrorTimeoutExpired
