// Package capture owns the capture session lifecycle and the batched
// iteration loop that feeds decoded frames to registered handlers. Sessions
// are single-threaded: one goroutine drives ProcessBatch, handlers run
// inline on it, and a capture handle belongs to exactly one session.
package capture

import (
	"log/slog"
	"net"
	"time"

	"github.com/endorses/pawcap/internal/pkg/logger"
	"github.com/endorses/pawcap/pkg/capture/pcaptypes"
	"github.com/endorses/pawcap/pkg/dispatch"
	"github.com/endorses/pawcap/pkg/netutil"
	"github.com/google/gopacket/layers"
	"github.com/google/uuid"
)

// Session owns a capture source and dispatches its frames. Create one with
// NewSession; a closed session fails every operation with ErrSessionClosed.
type Session struct {
	id       string
	cfg      Config
	source   pcaptypes.PacketSource
	owned    bool
	registry *dispatch.Registry
	log      *slog.Logger

	network net.IP
	netmask net.IPMask

	received int
	closed   bool
}

// NewSession validates cfg, acquires the capture source, installs the
// filter expression, and resolves device network information for live
// captures.
func NewSession(cfg Config) (*Session, error) {
	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	s := &Session{
		id:       uuid.NewString(),
		cfg:      cfg,
		registry: cfg.Callbacks.Registry(),
	}
	s.log = logger.With("session_id", s.id)

	switch {
	case cfg.Handle != nil:
		s.source = cfg.Handle
	case cfg.File != "":
		src, err := pcaptypes.OpenReplay(cfg.File)
		if err != nil {
			return nil, &CaptureError{Op: "open replay", Err: err}
		}
		s.source = src
		s.owned = true
	default:
		device := cfg.Device
		if device == "" {
			var err error
			device, err = DefaultDevice()
			if err != nil {
				return nil, &CaptureError{Op: "lookup default device", Err: err}
			}
		}
		src, err := pcaptypes.OpenLive(device, pcaptypes.Options{
			SnapLen:     cfg.BytesToCapture,
			Promiscuous: cfg.Promiscuous,
			Timeout:     time.Duration(cfg.TimeoutMs) * time.Millisecond,
			BufferSize:  cfg.BufferSize,
		})
		if err != nil {
			return nil, &CaptureError{Op: "open device " + device, Err: err}
		}
		s.source = src
		s.owned = true
		if ip, mask, err := pcaptypes.ResolveNetwork(device); err == nil {
			s.network = ip
			s.netmask = mask
		}
	}

	if cfg.Filter != "" {
		if err := s.installFilter(cfg.Filter); err != nil {
			if s.owned {
				s.source.Close()
			}
			return nil, err
		}
	}

	s.log.Info("Session opened",
		"snaplen", cfg.BytesToCapture,
		"packets_per_loop", cfg.PacketsPerLoop,
		"timeout_ms", cfg.TimeoutMs,
		"promiscuous", cfg.Promiscuous,
		"raw_mode", cfg.Raw != nil)
	return s, nil
}

func (s *Session) installFilter(filter string) error {
	fi, ok := s.source.(pcaptypes.FilterInstaller)
	if !ok {
		return &FilterError{Filter: filter, Err: errSourceNoFilter}
	}
	if err := fi.SetBPFFilter(filter); err != nil {
		return &FilterError{Filter: filter, Err: err}
	}
	return nil
}

// ID returns the session's identifier, used in log output.
func (s *Session) ID() string {
	return s.id
}

// LinkType returns the link-layer type of frames this session reads.
func (s *Session) LinkType() layers.LinkType {
	return s.source.LinkType()
}

// Network returns the device's network address, or nil when the source is a
// replay file or an externally supplied handle.
func (s *Session) Network() net.IP {
	return s.network
}

// Netmask returns the device's netmask, or nil when unavailable.
func (s *Session) Netmask() net.IPMask {
	return s.netmask
}

// CIDR returns the device network in prefix notation, or "" when
// unavailable.
func (s *Session) CIDR() string {
	return netutil.FormatCIDR(s.network, s.netmask)
}

// IsLocal reports whether ip falls inside the device's network. It is
// always false when network introspection is unavailable.
func (s *Session) IsLocal(ip net.IP) bool {
	return netutil.Contains(ip, s.network, s.netmask)
}

// Stats returns the engine's frame counters, refreshed on demand. Sources
// without engine-side counters (replay files, external handles without a
// StatsProvider) report the session's own received count with zero drops.
func (s *Session) Stats() (pcaptypes.Stats, error) {
	if s.closed {
		return pcaptypes.Stats{}, ErrSessionClosed
	}
	if sp, ok := s.source.(pcaptypes.StatsProvider); ok {
		st, err := sp.Stats()
		if err != nil {
			return pcaptypes.Stats{}, &CaptureError{Op: "stats", Err: err}
		}
		return st, nil
	}
	return pcaptypes.Stats{Received: s.received}, nil
}

// Close releases the capture source. Closing twice is not an error. An
// externally supplied handle is left open for its owner.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.owned {
		s.source.Close()
	}
	s.log.Info("Session closed", "frames_received", s.received)
	return nil
}
