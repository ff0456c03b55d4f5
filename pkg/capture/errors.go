package capture

import (
	"errors"
	"fmt"
)

// ErrSessionClosed is returned by any operation invoked after Close.
var ErrSessionClosed = errors.New("capture: session is closed")

// ConfigError reports an invalid or contradictory session configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("capture config %s: %s", e.Field, e.Message)
}

// FilterError reports a filter expression the engine rejected at open time.
// It is fatal to session construction.
type FilterError struct {
	Filter string
	Err    error
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("capture filter %q: %v", e.Filter, e.Err)
}

func (e *FilterError) Unwrap() error { return e.Err }

// CaptureError reports an engine-level fault. It aborts the batch call that
// observed it; retrying is the caller's decision.
type CaptureError struct {
	Op  string
	Err error
}

func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %s: %v", e.Op, e.Err)
}

func (e *CaptureError) Unwrap() error { return e.Err }
