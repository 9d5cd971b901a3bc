// pkg/camera/errors.go
package camera

import "errors"

// ErrUnavailable means no capture device could be detected at all.
var ErrUnavailable = errors.New("camera capability unavailable")

// OpError records which lifecycle operation failed, so callers can react to
// the operation kind instead of parsing message text.
type OpError struct {
	Op  string // "detect", "construct", "configure", "start", "capture", "stop"
	Err error
}

func (e *OpError) Error() string {
	return "camera " + e.Op + ": " + e.Err.Error()
}

func (e *OpError) Unwrap() error {
	return e.Err
}
