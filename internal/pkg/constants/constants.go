// Package constants provides shared defaults used across pawcap components.
package constants

// Capture defaults and floors
const (
	// DefaultPacketsPerLoop is the batch size used when the configured value
	// is smaller than one
	DefaultPacketsPerLoop = 32

	// DefaultBytesToCapture is the default snap length in bytes
	DefaultBytesToCapture = 1024

	// DefaultSnapLenFloor is the minimum snap length enforced on sessions
	// unless a different floor is configured
	DefaultSnapLenFloor = 256

	// DefaultTimeoutMs is the default read timeout; zero blocks until the
	// batch fills or the source is exhausted
	DefaultTimeoutMs = 0
)

// DefaultPcapBufferSize is the default kernel buffer size for live capture.
// 16MB is suitable for high-traffic interfaces like bridges.
// The default libpcap value (~2MB) causes kernel drops on busy interfaces.
const DefaultPcapBufferSize = 16 * 1024 * 1024 // 16MB

// SignalChannelBuffer is the buffer size for OS signal channels. Signals
// are infrequent and must never block the sender.
const SignalChannelBuffer = 1
