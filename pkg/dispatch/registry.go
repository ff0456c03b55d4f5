// Package dispatch routes decoded frames to the single most specific
// registered handler. The registry is populated once at session construction
// and immutable while the session runs; exactly one handler fires per frame.
package dispatch

import (
	"fmt"
	"net"

	"github.com/endorses/pawcap/pkg/decode"
	"github.com/google/gopacket"
)

// Session is the session surface a handler may touch during a callback.
// Introspection methods return zero values when the capture source is a
// replay file or an externally supplied handle.
type Session interface {
	Network() net.IP
	Netmask() net.IPMask
	CIDR() string
	IsLocal(ip net.IP) bool
}

// Handler consumes one classified frame along with its capture metadata.
// Handlers run synchronously on the batch loop's goroutine; a slow handler
// delays the rest of the batch.
type Handler func(s Session, f *decode.Frame, ci gopacket.CaptureInfo)

// RawHandler consumes raw frame bytes and capture metadata. A configured
// raw handler bypasses decoding and registry dispatch entirely.
type RawHandler func(s Session, data []byte, ci gopacket.CaptureInfo)

// Registry maps classification keys to handlers, at most one per key.
type Registry struct {
	handlers map[decode.Classification]Handler
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{handlers: make(map[decode.Classification]Handler)}
}

// Register binds h to key. Registering a key twice is last-write-wins.
// Keys outside the classification taxonomy are rejected.
func (r *Registry) Register(key decode.Classification, h Handler) error {
	if !key.ValidKey() {
		return fmt.Errorf("dispatch: %q is not a classification key", key)
	}
	if h == nil {
		return fmt.Errorf("dispatch: nil handler for key %q", key)
	}
	r.handlers[key] = h
	return nil
}

// Resolve returns the handler bound to key, if any.
func (r *Registry) Resolve(key decode.Classification) (Handler, bool) {
	h, ok := r.handlers[key]
	return h, ok
}

// Len returns the number of registered handlers.
func (r *Registry) Len() int {
	return len(r.handlers)
}
