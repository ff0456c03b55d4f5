package pcaptypes

import (
	"net"
	"time"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcap"
)

// Options configures a live capture handle.
type Options struct {
	// SnapLen is the maximum bytes captured per frame.
	SnapLen int
	// Promiscuous enables promiscuous mode on the device.
	Promiscuous bool
	// Timeout bounds how long a read waits for frames; zero or negative
	// blocks forever.
	Timeout time.Duration
	// BufferSize is the kernel buffer size in bytes.
	BufferSize int
}

type liveSource struct {
	device string
	handle *pcap.Handle
}

// OpenLive opens a live capture handle on device. The handle is configured
// before activation so snap length, promiscuous mode, timeout, and kernel
// buffer size all take effect.
func OpenLive(device string, opts Options) (PacketSource, error) {
	inactive, err := pcap.NewInactiveHandle(device)
	if err != nil {
		return nil, err
	}
	defer inactive.CleanUp()

	if err := inactive.SetSnapLen(opts.SnapLen); err != nil {
		return nil, err
	}
	if err := inactive.SetPromisc(opts.Promiscuous); err != nil {
		return nil, err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = pcap.BlockForever
	}
	if err := inactive.SetTimeout(timeout); err != nil {
		return nil, err
	}
	if opts.BufferSize > 0 {
		if err := inactive.SetBufferSize(opts.BufferSize); err != nil {
			return nil, err
		}
	}

	handle, err := inactive.Activate()
	if err != nil {
		return nil, err
	}
	return &liveSource{device: device, handle: handle}, nil
}

func (s *liveSource) ReadPacketData() ([]byte, gopacket.CaptureInfo, error) {
	return s.handle.ReadPacketData()
}

func (s *liveSource) LinkType() layers.LinkType {
	return s.handle.LinkType()
}

func (s *liveSource) SetBPFFilter(filter string) error {
	return s.handle.SetBPFFilter(filter)
}

func (s *liveSource) Stats() (Stats, error) {
	st, err := s.handle.Stats()
	if err != nil {
		return Stats{}, err
	}
	return Stats{
		Received:  st.PacketsReceived,
		Dropped:   st.PacketsDropped,
		IfDropped: st.PacketsIfDropped,
	}, nil
}

func (s *liveSource) Close() {
	s.handle.Close()
}

// ResolveNetwork returns the IPv4 network address and netmask configured on
// device. It is unavailable for replay files and externally supplied
// handles.
func ResolveNetwork(device string) (net.IP, net.IPMask, error) {
	devices, err := pcap.FindAllDevs()
	if err != nil {
		return nil, nil, err
	}
	for _, dev := range devices {
		if dev.Name != device {
			continue
		}
		for _, addr := range dev.Addresses {
			ip4 := addr.IP.To4()
			if ip4 == nil || addr.Netmask == nil {
				continue
			}
			return ip4.Mask(addr.Netmask), addr.Netmask, nil
		}
	}
	return nil, nil, &net.AddrError{Err: "no IPv4 network on device", Addr: device}
}
