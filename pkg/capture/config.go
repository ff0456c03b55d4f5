package capture

import (
	"github.com/endorses/pawcap/internal/pkg/constants"
	"github.com/endorses/pawcap/pkg/capture/pcaptypes"
	"github.com/endorses/pawcap/pkg/dispatch"
	"github.com/google/gopacket"
)

// Config describes one capture session. Exactly one capture source is
// active: a device (Device, or the default device when all three source
// fields are empty), a replay file (File), or an externally supplied handle
// (Handle).
type Config struct {
	// Device is the network interface to capture from.
	Device string

	// File is a recorded capture file replayed in place of a live device.
	File string

	// Handle is an externally supplied capture source. The session borrows
	// it: Close leaves it open, and device network introspection is
	// unavailable.
	Handle pcaptypes.PacketSource

	// Filter is a BPF filter expression installed at open time. Bad syntax
	// or engine rejection fails session construction with *FilterError.
	Filter string

	// PacketsPerLoop caps the frames consumed by one ProcessBatch call.
	// Values below one are silently replaced by the default of 32.
	PacketsPerLoop int

	// BytesToCapture is the snap length. Zero means the default of 1024;
	// values below SnapLenFloor are raised to the floor.
	BytesToCapture int

	// SnapLenFloor is the minimum accepted snap length. Zero means the
	// default floor of 256.
	SnapLenFloor int

	// TimeoutMs bounds how long a batch waits for frames, in milliseconds.
	// Zero blocks until the batch fills or the source is exhausted.
	// Negative values are rejected.
	TimeoutMs int

	// Promiscuous enables promiscuous mode on live devices.
	Promiscuous bool

	// BufferSize is the kernel buffer size for live captures in bytes.
	// Zero means the 16MB default.
	BufferSize int

	// Callbacks holds one handler slot per classification key.
	Callbacks dispatch.Callbacks

	// Raw, when set, puts the session in raw mode: every frame's bytes and
	// metadata go to this callback and decoding and registry dispatch are
	// bypassed entirely. Use ProcessBatchRaw to drive a raw-mode session.
	Raw dispatch.RawHandler

	// OnDecodeError observes per-frame decode failures. Nil means the
	// failure is logged and the loop moves on.
	OnDecodeError func(err error, data []byte, ci gopacket.CaptureInfo)
}

// normalize validates cfg and applies defaults and floors in place.
func (cfg *Config) normalize() error {
	sources := 0
	if cfg.Device != "" {
		sources++
	}
	if cfg.File != "" {
		sources++
	}
	if cfg.Handle != nil {
		sources++
	}
	if sources > 1 {
		return &ConfigError{Field: "source", Message: "device, file, and handle are mutually exclusive"}
	}

	if cfg.TimeoutMs < 0 {
		return &ConfigError{Field: "timeout_in_ms", Message: "must be non-negative"}
	}

	if cfg.PacketsPerLoop < 1 {
		cfg.PacketsPerLoop = constants.DefaultPacketsPerLoop
	}
	if cfg.SnapLenFloor <= 0 {
		cfg.SnapLenFloor = constants.DefaultSnapLenFloor
	}
	if cfg.BytesToCapture <= 0 {
		cfg.BytesToCapture = constants.DefaultBytesToCapture
	}
	if cfg.BytesToCapture < cfg.SnapLenFloor {
		cfg.BytesToCapture = cfg.SnapLenFloor
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = constants.DefaultPcapBufferSize
	}
	return nil
}
