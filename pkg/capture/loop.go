package capture

import (
	"errors"
	"io"

	"github.com/endorses/pawcap/pkg/capture/pcaptypes"
	"github.com/endorses/pawcap/pkg/decode"
	"github.com/endorses/pawcap/pkg/dispatch"
	"github.com/google/gopacket"
)

var (
	errSourceNoFilter = errors.New("source does not support filters")
	errRawMode        = errors.New("session is in raw mode, use ProcessBatchRaw")
	errNotRawMode     = errors.New("no raw callback configured, use ProcessBatch")
)

// ProcessBatch pulls up to PacketsPerLoop frames from the source, runs each
// through decode and dispatch in arrival order, and returns how many frames
// were consumed. Zero with a nil error means the source produced nothing:
// permanent end of source, or an expired read timeout on an idle live
// device.
//
// A per-frame decode failure is reported through OnDecodeError (or logged)
// and the frame still counts as processed; an engine-level read fault aborts
// the call with *CaptureError.
func (s *Session) ProcessBatch() (int, error) {
	if s.closed {
		return 0, ErrSessionClosed
	}
	if s.cfg.Raw != nil {
		return 0, &ConfigError{Field: "raw_callback", Message: errRawMode.Error()}
	}

	linkType := s.source.LinkType()
	count := 0
	for count < s.cfg.PacketsPerLoop {
		data, ci, err := s.readFrame()
		if err != nil {
			if errors.Is(err, errSourceDone) {
				return count, nil
			}
			return count, err
		}
		count++

		frame, derr := decode.Decode(data, linkType)
		if derr != nil {
			s.reportDecodeError(derr, data, ci)
			continue
		}
		dispatch.Dispatch(s.registry, s, frame, ci)
	}
	return count, nil
}

// ProcessBatchRaw runs one batch in raw mode: every frame's bytes and
// metadata go to the configured raw callback unconditionally, bypassing
// decode and dispatch. No processed count is reported because no
// classification work happens.
func (s *Session) ProcessBatchRaw() error {
	if s.closed {
		return ErrSessionClosed
	}
	if s.cfg.Raw == nil {
		return &ConfigError{Field: "raw_callback", Message: errNotRawMode.Error()}
	}

	for i := 0; i < s.cfg.PacketsPerLoop; i++ {
		data, ci, err := s.readFrame()
		if err != nil {
			if errors.Is(err, errSourceDone) {
				return nil
			}
			return err
		}
		s.cfg.Raw(s, data, ci)
	}
	return nil
}

// errSourceDone marks the conditions that end a batch without error.
var errSourceDone = errors.New("source produced no frame")

func (s *Session) readFrame() ([]byte, gopacket.CaptureInfo, error) {
	data, ci, err := s.source.ReadPacketData()
	switch {
	case err == nil:
		s.received++
		return data, ci, nil
	case errors.Is(err, io.EOF), errors.Is(err, pcaptypes.ErrReadTimeout):
		return nil, gopacket.CaptureInfo{}, errSourceDone
	default:
		return nil, gopacket.CaptureInfo{}, &CaptureError{Op: "read", Err: err}
	}
}

func (s *Session) reportDecodeError(err error, data []byte, ci gopacket.CaptureInfo) {
	if s.cfg.OnDecodeError != nil {
		s.cfg.OnDecodeError(err, data, ci)
		return
	}
	s.log.Warn("Frame decode failed",
		"error", err,
		"capture_length", ci.CaptureLength,
		"wire_length", ci.Length)
}
